package handler

import (
	"errors"
	"net/http"

	"github.com/edutalks/portfolio-api/internal/model"
	"github.com/edutalks/portfolio-api/internal/service"
)

// NewsletterHandler serves the newsletter subscription endpoints.
type NewsletterHandler struct {
	newsletter *service.Newsletter
}

// NewNewsletterHandler creates a NewsletterHandler.
func NewNewsletterHandler(newsletter *service.Newsletter) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe adds an address to the subscriber set.
// POST /api/newsletter
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.newsletter.Subscribe(req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, "Please provide a valid email address")
		case errors.Is(err, service.ErrAlreadySubscribed):
			writeError(w, http.StatusBadRequest, "This email is already subscribed to our newsletter")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to subscribe. Please try again later.")
		}
		return
	}

	writeJSON(w, http.StatusOK, model.Response{Success: true, Message: "Successfully subscribed to newsletter!"})
}

// Count returns the number of subscribers.
// GET /api/newsletter/count
func (h *NewsletterHandler) Count(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
	}{true, h.newsletter.Count()})
}
