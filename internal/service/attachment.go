package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/evolveer/workandprojectnotebook/internal/domain"
	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
	"github.com/evolveer/workandprojectnotebook/internal/domain/repositories"
	"github.com/evolveer/workandprojectnotebook/internal/domain/services"
)

// attachmentService stores uploaded files under <root>/entry_<id>/ and
// records each stored file against the entry.
type attachmentService struct {
	root           string
	attachmentRepo repositories.AttachmentRepository
	logger         *slog.Logger
}

// NewAttachmentService creates a new attachment service rooted at dir
func NewAttachmentService(
	root string,
	attachmentRepo repositories.AttachmentRepository,
	logger *slog.Logger,
) services.AttachmentService {
	return &attachmentService{
		root:           root,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

// Save writes an uploaded file into the entry's attachment directory,
// creating it if absent, and records the stored path.
func (s *attachmentService) Save(ctx context.Context, entryID int64, filename string, r io.Reader) (*models.Attachment, error) {
	name := sanitizeFilename(filename)
	if name == "" {
		return nil, fmt.Errorf("%w: attachment filename is required", domain.ErrValidation)
	}

	dir := filepath.Join(s.root, models.AttachmentDirName(entryID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create attachment directory: %v", domain.ErrIO, err)
	}

	dest := filepath.Join(dir, name)
	f, err := os.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("%w: write attachment: %v", domain.ErrIO, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dest)
		return nil, fmt.Errorf("%w: write attachment: %v", domain.ErrIO, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dest)
		return nil, fmt.Errorf("%w: write attachment: %v", domain.ErrIO, err)
	}

	attachment := &models.Attachment{
		EntryID:   entryID,
		Filename:  name,
		RelPath:   filepath.ToSlash(filepath.Join(models.AttachmentDirName(entryID), name)),
		CreatedAt: time.Now(),
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		// Orphaned file without a record is worse than no file
		os.Remove(dest)
		return nil, err
	}

	s.logger.Info("attachment saved",
		"entry_id", entryID,
		"filename", name,
		"path", attachment.RelPath,
	)

	return attachment, nil
}

// List retrieves an entry's attachments
func (s *attachmentService) List(ctx context.Context, entryID int64) ([]models.Attachment, error) {
	return s.attachmentRepo.ListByEntry(ctx, entryID)
}

// RemoveDir deletes the entry's attachment directory and everything in it.
// Missing directories are not an error.
func (s *attachmentService) RemoveDir(entryID int64) error {
	dir := filepath.Join(s.root, models.AttachmentDirName(entryID))
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("%w: remove %s: %v", domain.ErrIO, dir, err)
	}
	return nil
}

// sanitizeFilename strips any path components from a user-supplied name so
// uploads cannot escape the entry directory.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(filepath.Clean("/" + name))
	if name == "/" || name == "." {
		return ""
	}
	return name
}
