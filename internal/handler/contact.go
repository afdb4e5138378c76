package handler

import (
	"log/slog"
	"net/http"

	"github.com/edutalks/portfolio-api/internal/model"
	"github.com/edutalks/portfolio-api/internal/service"
)

// ContactHandler relays contact-form submissions to the operator's inbox.
type ContactHandler struct {
	mailer service.Mailer
	logger *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(mailer service.Mailer, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{mailer: mailer, logger: logger}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Submit validates the form and sends one email. A provider failure surfaces
// as a 500 with a generic message; the detail stays in the server log.
// POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "Name, email, and message are required")
		return
	}

	msg := service.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := h.mailer.SendContact(r.Context(), msg); err != nil {
		h.logger.Error("contact email failed", "error", err, "from", req.Email)
		writeError(w, http.StatusInternalServerError,
			"Failed to send message. Please try again later.")
		return
	}

	writeJSON(w, http.StatusOK, model.Response{Success: true, Message: "Message sent successfully!"})
}
