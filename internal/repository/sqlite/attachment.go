package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/evolveer/workandprojectnotebook/internal/domain"
	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
	"github.com/evolveer/workandprojectnotebook/internal/domain/repositories"
)

// SQLiteAttachmentRepository implements the AttachmentRepository interface
type SQLiteAttachmentRepository struct {
	db *sql.DB
}

// NewAttachmentRepository creates a new attachment repository
func NewAttachmentRepository(config *RepositoryConfig) repositories.AttachmentRepository {
	return &SQLiteAttachmentRepository{db: config.DB}
}

// Create records a stored attachment file
func (r *SQLiteAttachmentRepository) Create(ctx context.Context, attachment *models.Attachment) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO attachments (entry_id, filename, rel_path, created_at)
		VALUES (?, ?, ?, ?)
	`,
		attachment.EntryID,
		attachment.Filename,
		attachment.RelPath,
		encodeTime(attachment.CreatedAt),
	)

	if err != nil {
		if IsForeignKeyError(err) {
			return fmt.Errorf("entry %d: %w", attachment.EntryID, domain.ErrNotFound)
		}
		return fmt.Errorf("create attachment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("create attachment: %w", err)
	}
	attachment.ID = id

	return nil
}

// ListByEntry retrieves an entry's attachments in insertion order
func (r *SQLiteAttachmentRepository) ListByEntry(ctx context.Context, entryID int64) ([]models.Attachment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, entry_id, filename, rel_path, created_at
		FROM attachments
		WHERE entry_id = ?
		ORDER BY id
	`, entryID)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	defer rows.Close()

	var attachments []models.Attachment
	for rows.Next() {
		var (
			attachment models.Attachment
			createdAt  string
		)
		err := rows.Scan(
			&attachment.ID,
			&attachment.EntryID,
			&attachment.Filename,
			&attachment.RelPath,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan attachment: %w", err)
		}
		if attachment.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		attachments = append(attachments, attachment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attachments: %w", err)
	}

	if attachments == nil {
		attachments = []models.Attachment{}
	}

	return attachments, nil
}
