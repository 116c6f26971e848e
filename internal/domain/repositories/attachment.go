package repositories

import (
	"context"

	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
)

// AttachmentRepository defines data access operations for attachment records
type AttachmentRepository interface {
	// Create records a stored attachment file
	Create(ctx context.Context, attachment *models.Attachment) error

	// ListByEntry retrieves an entry's attachments in insertion order
	ListByEntry(ctx context.Context, entryID int64) ([]models.Attachment, error)
}
