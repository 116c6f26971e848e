package models

import (
	"time"
)

// Entry is a single logged unit of work. ProjectID and DurationHours are
// pointers to allow NULL columns; ProjectName is populated on reads via the
// join with projects and is never written.
type Entry struct {
	ID            int64     `json:"id" db:"id"`
	Timestamp     time.Time `json:"ts" db:"ts"`
	Title         string    `json:"title" db:"title"`
	ProjectID     *int64    `json:"project_id,omitempty" db:"project_id"`
	ProjectName   string    `json:"project,omitempty" db:"-"`
	WorkType      string    `json:"work_type,omitempty" db:"work_type"`
	Tags          []string  `json:"tags" db:"tags"`
	LinkedPaths   []string  `json:"paths" db:"paths"`
	DurationHours *float64  `json:"duration_hours,omitempty" db:"duration_hours"`
	Notes         string    `json:"notes_md" db:"notes_md"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// AttachmentDir returns the entry's attachment directory name, derived from
// its immutable id.
func (e *Entry) AttachmentDir() string {
	return AttachmentDirName(e.ID)
}
