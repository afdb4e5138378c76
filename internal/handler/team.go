package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/edutalks/portfolio-api/internal/model"
	"github.com/edutalks/portfolio-api/internal/store"
)

// TeamHandler serves the team-member endpoints. Listing is public; mutations
// sit behind the auth middleware.
type TeamHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewTeamHandler creates a TeamHandler.
func NewTeamHandler(st *store.Store, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{store: st, logger: logger}
}

type teamListResponse struct {
	Success bool               `json:"success"`
	Data    []model.TeamMember `json:"data"`
}

type teamMemberResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    model.TeamMember `json:"data"`
}

type teamMemberRequest struct {
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
}

// List returns all team members, newest first.
// GET /api/team
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.store.ListTeamMembers(r.Context())
	if err != nil {
		h.logger.Error("list team members failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch team members")
		return
	}
	writeJSON(w, http.StatusOK, teamListResponse{Success: true, Data: members})
}

// Create adds a team member.
// POST /api/team
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req teamMemberRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Role == "" {
		writeError(w, http.StatusBadRequest, "Name and role are required")
		return
	}

	member := &model.TeamMember{
		Name:        req.Name,
		Role:        req.Role,
		Image:       req.Image,
		Description: req.Description,
	}
	if err := h.store.CreateTeamMember(r.Context(), member); err != nil {
		h.logger.Error("create team member failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to add team member")
		return
	}

	writeJSON(w, http.StatusCreated, teamMemberResponse{
		Success: true,
		Message: "Team member added successfully",
		Data:    *member,
	})
}

// Update applies a full-row update; omitted image and description are
// overwritten with NULL.
// PUT /api/team/{memberID}
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "memberID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid team member id")
		return
	}

	var req teamMemberRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Role == "" {
		writeError(w, http.StatusBadRequest, "Name and role are required")
		return
	}

	member := &model.TeamMember{
		ID:          id,
		Name:        req.Name,
		Role:        req.Role,
		Image:       req.Image,
		Description: req.Description,
	}
	if err := h.store.UpdateTeamMember(r.Context(), member); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Team member not found")
			return
		}
		h.logger.Error("update team member failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to update team member")
		return
	}

	writeJSON(w, http.StatusOK, teamMemberResponse{
		Success: true,
		Message: "Team member updated successfully",
		Data:    *member,
	})
}

// Delete removes a team member.
// DELETE /api/team/{memberID}
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "memberID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid team member id")
		return
	}

	if err := h.store.DeleteTeamMember(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Team member not found")
			return
		}
		h.logger.Error("delete team member failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete team member")
		return
	}

	writeJSON(w, http.StatusOK, model.Response{Success: true, Message: "Team member removed successfully"})
}
