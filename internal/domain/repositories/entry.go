package repositories

import (
	"context"

	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
)

// EntryRepository defines data access operations for entries
type EntryRepository interface {
	// Create creates a new entry. Returns ErrNotFound (wrapped) if the
	// referenced project does not exist.
	Create(ctx context.Context, entry *models.Entry) error

	// GetByID retrieves an entry by ID, with its project name resolved
	GetByID(ctx context.Context, id int64) (*models.Entry, error)

	// Query retrieves entries matching the filter, ordered by timestamp
	// descending
	Query(ctx context.Context, filter *models.EntryFilter) ([]models.Entry, error)

	// Update updates an entry's mutable fields
	Update(ctx context.Context, entry *models.Entry) error

	// Delete removes an entry; its attachment rows cascade
	Delete(ctx context.Context, id int64) error

	// RecentPaths returns the most recently used distinct workspace paths
	RecentPaths(ctx context.Context, limit int) ([]string, error)
}
