package services

import (
	"context"
	"time"

	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
)

// CreateEntryRequest represents a request to capture a new entry
type CreateEntryRequest struct {
	Timestamp     time.Time `json:"ts"`
	Title         string    `json:"title"`
	ProjectID     *int64    `json:"project_id,omitempty"`
	WorkType      string    `json:"work_type,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	LinkedPaths   []string  `json:"paths,omitempty"`
	DurationHours *float64  `json:"duration_hours,omitempty"`
	Notes         string    `json:"notes_md,omitempty"`
}

// UpdateEntryRequest represents a request to edit an entry.
// Nil fields are left unchanged.
type UpdateEntryRequest struct {
	Timestamp     *time.Time `json:"ts,omitempty"`
	Title         *string    `json:"title,omitempty"`
	ProjectID     *int64     `json:"project_id,omitempty"`
	ClearProject  bool       `json:"clear_project,omitempty"`
	WorkType      *string    `json:"work_type,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	LinkedPaths   []string   `json:"paths,omitempty"`
	DurationHours *float64   `json:"duration_hours,omitempty"`
	Notes         *string    `json:"notes_md,omitempty"`
}

// EntryService defines business logic operations for entries
type EntryService interface {
	// CreateEntry validates and stores a new entry
	CreateEntry(ctx context.Context, req *CreateEntryRequest) (*models.Entry, error)

	// GetEntry retrieves an entry by ID
	GetEntry(ctx context.Context, id int64) (*models.Entry, error)

	// QueryEntries retrieves entries matching the filter, newest first
	QueryEntries(ctx context.Context, filter *models.EntryFilter) ([]models.Entry, error)

	// UpdateEntry updates an entry's mutable fields
	UpdateEntry(ctx context.Context, id int64, req *UpdateEntryRequest) (*models.Entry, error)

	// DeleteEntry removes an entry and its attachment directory
	DeleteEntry(ctx context.Context, id int64) error

	// RecentPaths returns the most recently used distinct workspace paths
	RecentPaths(ctx context.Context, limit int) ([]string, error)
}
