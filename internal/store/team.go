package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/edutalks/portfolio-api/internal/model"
)

// ListTeamMembers returns all team members, newest first.
func (s *Store) ListTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	members := []model.TeamMember{}
	if err := s.db.SelectContext(ctx, &members,
		"SELECT * FROM team_members ORDER BY created_at DESC, id DESC"); err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	return members, nil
}

// GetTeamMember returns a team member by id.
func (s *Store) GetTeamMember(ctx context.Context, id int64) (*model.TeamMember, error) {
	var member model.TeamMember
	q := s.db.Rebind("SELECT * FROM team_members WHERE id = ?")
	if err := s.db.GetContext(ctx, &member, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get team member: %w", err)
	}
	return &member, nil
}

// CreateTeamMember inserts a new team member. The ID and CreatedAt fields
// are populated after insert.
func (s *Store) CreateTeamMember(ctx context.Context, member *model.TeamMember) error {
	member.CreatedAt = time.Now().UTC()

	const q = `INSERT INTO team_members (name, role, image, description, created_at)
		VALUES (?, ?, ?, ?, ?)`

	id, err := s.insert(ctx, q,
		member.Name, member.Role, member.Image, member.Description, member.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert team member: %w", err)
	}
	member.ID = id
	return nil
}

// UpdateTeamMember applies a full-row update, overwriting image and
// description with NULL when they are nil. Returns ErrNotFound if no row
// matched.
func (s *Store) UpdateTeamMember(ctx context.Context, member *model.TeamMember) error {
	const q = `UPDATE team_members SET name = ?, role = ?, image = ?, description = ?
		WHERE id = ?`

	err := s.exec(ctx, q,
		member.Name, member.Role, member.Image, member.Description, member.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update team member: %w", err)
	}
	return nil
}

// DeleteTeamMember removes a team member. Returns ErrNotFound if no row
// matched.
func (s *Store) DeleteTeamMember(ctx context.Context, id int64) error {
	err := s.exec(ctx, "DELETE FROM team_members WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete team member: %w", err)
	}
	return nil
}

// CountTeamMembers returns the total number of rows in the team_members table.
func (s *Store) CountTeamMembers(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM team_members"); err != nil {
		return 0, fmt.Errorf("count team members: %w", err)
	}
	return count, nil
}
