package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/edutalks/portfolio-api/internal/model"
	"github.com/edutalks/portfolio-api/internal/store"
)

// JobHandler serves the job-posting endpoints. Public routes only ever see
// active postings; the admin routes behind the auth middleware see all rows.
type JobHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewJobHandler creates a JobHandler.
func NewJobHandler(st *store.Store, logger *slog.Logger) *JobHandler {
	return &JobHandler{store: st, logger: logger}
}

type jobsResponse struct {
	Success bool        `json:"success"`
	Jobs    []model.Job `json:"jobs"`
}

type jobResponse struct {
	Success bool      `json:"success"`
	Job     model.Job `json:"job"`
}

type createJobRequest struct {
	Title       string `json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type updateJobRequest struct {
	Title       string `json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// ListPublic returns all active postings, newest first.
// GET /api/jobs
func (h *JobHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.store.ListActiveJobs(r.Context())
	if err != nil {
		h.logger.Error("list jobs failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}
	writeJSON(w, http.StatusOK, jobsResponse{Success: true, Jobs: jobs})
}

// ListAll returns every posting including inactive ones.
// GET /api/jobs/admin/all
func (h *JobHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.store.ListJobs(r.Context())
	if err != nil {
		h.logger.Error("list all jobs failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}
	writeJSON(w, http.StatusOK, jobsResponse{Success: true, Jobs: jobs})
}

// Get returns a single active posting.
// GET /api/jobs/{jobID}
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "jobID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	job, err := h.store.GetActiveJob(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Job not found")
			return
		}
		h.logger.Error("get job failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to fetch job")
		return
	}
	writeJSON(w, http.StatusOK, jobResponse{Success: true, Job: *job})
}

// Create inserts a new posting.
// POST /api/jobs
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	missing := missingFields(map[string]string{
		"title":       req.Title,
		"department":  req.Department,
		"location":    req.Location,
		"description": req.Description,
	})
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest,
			"Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	if req.Type == "" {
		req.Type = model.JobTypeFullTime
	}
	if !model.ValidJobType(req.Type) {
		writeError(w, http.StatusBadRequest,
			"Invalid job type: must be Full-time, Part-time, or Contract")
		return
	}

	job := &model.Job{
		Title:       req.Title,
		Department:  req.Department,
		Location:    req.Location,
		Type:        req.Type,
		Description: req.Description,
		IsActive:    true,
	}
	if err := h.store.CreateJob(r.Context(), job); err != nil {
		h.logger.Error("create job failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create job")
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		JobID   int64  `json:"jobId"`
	}{true, "Job created successfully", job.ID})
}

// Update applies a full-row update. An omitted is_active defaults to true.
// PUT /api/jobs/{jobID}
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "jobID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	var req updateJobRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	missing := missingFields(map[string]string{
		"title":       req.Title,
		"department":  req.Department,
		"location":    req.Location,
		"description": req.Description,
	})
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest,
			"Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	if req.Type == "" {
		req.Type = model.JobTypeFullTime
	}
	if !model.ValidJobType(req.Type) {
		writeError(w, http.StatusBadRequest,
			"Invalid job type: must be Full-time, Part-time, or Contract")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	job := &model.Job{
		ID:          id,
		Title:       req.Title,
		Department:  req.Department,
		Location:    req.Location,
		Type:        req.Type,
		Description: req.Description,
		IsActive:    isActive,
	}
	if err := h.store.UpdateJob(r.Context(), job); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Job not found")
			return
		}
		h.logger.Error("update job failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to update job")
		return
	}

	writeJSON(w, http.StatusOK, model.Response{Success: true, Message: "Job updated successfully"})
}

// Delete removes a posting permanently.
// DELETE /api/jobs/{jobID}
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "jobID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	if err := h.store.DeleteJob(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Job not found")
			return
		}
		h.logger.Error("delete job failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete job")
		return
	}

	writeJSON(w, http.StatusOK, model.Response{Success: true, Message: "Job deleted successfully"})
}
