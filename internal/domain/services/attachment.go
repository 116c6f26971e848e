package services

import (
	"context"
	"io"

	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
)

// AttachmentService stores uploaded files under per-entry directories and
// records them against the entry.
type AttachmentService interface {
	// Save writes an uploaded file into the entry's attachment directory,
	// creating it if absent, and records the stored path.
	Save(ctx context.Context, entryID int64, filename string, r io.Reader) (*models.Attachment, error)

	// List retrieves an entry's attachments
	List(ctx context.Context, entryID int64) ([]models.Attachment, error)

	// RemoveDir deletes the entry's attachment directory and everything
	// in it. Missing directories are not an error.
	RemoveDir(entryID int64) error
}
