package model

import "time"

// TeamMember is a publicly listed member of the team. Image and Description
// are optional and stored as NULL when absent.
type TeamMember struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Role        string    `json:"role" db:"role"`
	Image       *string   `json:"image" db:"image"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
