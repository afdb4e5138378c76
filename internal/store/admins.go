package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/edutalks/portfolio-api/internal/model"
)

// CreateAdmin inserts a new admin account. The ID and CreatedAt fields are
// populated after insert.
func (s *Store) CreateAdmin(ctx context.Context, admin *model.Admin) error {
	admin.CreatedAt = time.Now().UTC()

	const q = `INSERT INTO admins (email, password, name, created_at)
		VALUES (?, ?, ?, ?)`

	id, err := s.insert(ctx, q, admin.Email, admin.PasswordHash, admin.Name, admin.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	admin.ID = id
	return nil
}

// GetAdminByEmail returns an admin by email address.
func (s *Store) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	q := s.db.Rebind("SELECT * FROM admins WHERE email = ?")
	if err := s.db.GetContext(ctx, &admin, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get admin by email: %w", err)
	}
	return &admin, nil
}

// ListAdmins returns all admin accounts.
func (s *Store) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	admins := []model.Admin{}
	if err := s.db.SelectContext(ctx, &admins, "SELECT * FROM admins ORDER BY email"); err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

// HasAnyAdmin reports whether at least one admin account exists. This is used
// at serve startup to warn the operator about a missing credential.
func (s *Store) HasAnyAdmin(ctx context.Context) (bool, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM admins"); err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	return count > 0, nil
}

// SeedAdmin inserts the given admin unless an account with the same email
// already exists. It reports whether a row was created, so running it twice
// is a no-op on the second pass; the UNIQUE email constraint backstops the
// existence check against concurrent seeding.
func (s *Store) SeedAdmin(ctx context.Context, email, passwordHash, name string) (bool, error) {
	_, err := s.GetAdminByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	admin := &model.Admin{Email: email, PasswordHash: passwordHash, Name: name}
	if err := s.CreateAdmin(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}
