package model

import "time"

// Admin is an administrative identity allowed to manage job postings and
// team members. There is a single shared admin role; every admin row has the
// same privileges. Passwords are stored as bcrypt hashes.
type Admin struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"` // bcrypt hash, never expose
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
