package model

import "time"

// Employment types accepted for a job posting. The MySQL schema enforces the
// set with a column ENUM; handlers validate before insert so the other
// drivers behave identically.
const (
	JobTypeFullTime = "Full-time"
	JobTypePartTime = "Part-time"
	JobTypeContract = "Contract"
)

// ValidJobType reports whether t is one of the accepted employment types.
func ValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract:
		return true
	}
	return false
}

// Job is a public job posting. Inactive postings stay in the table (soft
// delete) but are hidden from the public endpoints.
type Job struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Department  string    `json:"department" db:"department"`
	Location    string    `json:"location" db:"location"`
	Type        string    `json:"type" db:"type"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
	IsActive    bool      `json:"is_active" db:"is_active"`
}
