package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/edutalks/portfolio-api/internal/model"
)

// ListActiveJobs returns all publicly visible postings, newest first.
func (s *Store) ListActiveJobs(ctx context.Context) ([]model.Job, error) {
	jobs := []model.Job{}
	q := s.db.Rebind(`SELECT * FROM jobs WHERE is_active = ?
		ORDER BY created_at DESC, id DESC`)
	if err := s.db.SelectContext(ctx, &jobs, q, true); err != nil {
		return nil, fmt.Errorf("list active jobs: %w", err)
	}
	return jobs, nil
}

// ListJobs returns every posting regardless of visibility, newest first.
func (s *Store) ListJobs(ctx context.Context) ([]model.Job, error) {
	jobs := []model.Job{}
	if err := s.db.SelectContext(ctx, &jobs,
		"SELECT * FROM jobs ORDER BY created_at DESC, id DESC"); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// GetActiveJob returns a publicly visible posting by id. An inactive posting
// is reported as ErrNotFound, same as a missing row.
func (s *Store) GetActiveJob(ctx context.Context, id int64) (*model.Job, error) {
	var job model.Job
	q := s.db.Rebind("SELECT * FROM jobs WHERE id = ? AND is_active = ?")
	if err := s.db.GetContext(ctx, &job, q, id, true); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get active job: %w", err)
	}
	return &job, nil
}

// GetJob returns a posting by id without a visibility filter.
func (s *Store) GetJob(ctx context.Context, id int64) (*model.Job, error) {
	var job model.Job
	q := s.db.Rebind("SELECT * FROM jobs WHERE id = ?")
	if err := s.db.GetContext(ctx, &job, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &job, nil
}

// CreateJob inserts a new posting. The ID, CreatedAt, and UpdatedAt fields
// are populated after insert.
func (s *Store) CreateJob(ctx context.Context, job *model.Job) error {
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	const q = `INSERT INTO jobs
		(title, department, location, type, description, created_at, updated_at, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := s.insert(ctx, q,
		job.Title, job.Department, job.Location, job.Type, job.Description,
		job.CreatedAt, job.UpdatedAt, job.IsActive)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	job.ID = id
	return nil
}

// UpdateJob applies a full-row update to the posting with job.ID and bumps
// updated_at. Returns ErrNotFound if no row matched.
func (s *Store) UpdateJob(ctx context.Context, job *model.Job) error {
	job.UpdatedAt = time.Now().UTC()

	const q = `UPDATE jobs
		SET title = ?, department = ?, location = ?, type = ?, description = ?,
			is_active = ?, updated_at = ?
		WHERE id = ?`

	err := s.exec(ctx, q,
		job.Title, job.Department, job.Location, job.Type, job.Description,
		job.IsActive, job.UpdatedAt, job.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// DeleteJob removes a posting permanently. Returns ErrNotFound if no row
// matched.
func (s *Store) DeleteJob(ctx context.Context, id int64) error {
	err := s.exec(ctx, "DELETE FROM jobs WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

// CountJobs returns the total number of rows in the jobs table.
func (s *Store) CountJobs(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM jobs"); err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return count, nil
}
