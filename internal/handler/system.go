package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/edutalks/portfolio-api/internal/store"
)

// EnvStatus reports which configuration values are present, without exposing
// the values themselves. The JSON field names are part of the health
// endpoint's contract.
type EnvStatus struct {
	HasDBHost    bool `json:"hasDbHost"`
	HasDBUser    bool `json:"hasDbUser"`
	HasDBPass    bool `json:"hasDbPass"`
	HasDBName    bool `json:"hasDbName"`
	HasJWTSecret bool `json:"hasJwtSecret"`
}

// SystemHandler serves the health endpoint.
type SystemHandler struct {
	store  *store.Store
	env    EnvStatus
	logger *slog.Logger
}

// NewSystemHandler creates a SystemHandler.
func NewSystemHandler(st *store.Store, env EnvStatus, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{store: st, env: env, logger: logger}
}

type healthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp string    `json:"timestamp"`
	Env       EnvStatus `json:"env"`
}

// Health pings the database and reports configuration presence.
// GET /api/health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Error("health check failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, struct {
			Status   string `json:"status"`
			Database string `json:"database"`
			Error    string `json:"error"`
		}{"unhealthy", "disconnected", err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Env:       h.env,
	})
}
