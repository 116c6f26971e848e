package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/evolveer/workandprojectnotebook/internal/config"
	"github.com/evolveer/workandprojectnotebook/internal/domain"
	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
	"github.com/evolveer/workandprojectnotebook/internal/domain/repositories"
	"github.com/evolveer/workandprojectnotebook/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// entryService implements the EntryService interface
type entryService struct {
	entryRepo   repositories.EntryRepository
	projectRepo repositories.ProjectRepository
	attachments services.AttachmentService
	logger      *slog.Logger
}

// NewEntryService creates a new entry service
func NewEntryService(
	entryRepo repositories.EntryRepository,
	projectRepo repositories.ProjectRepository,
	attachments services.AttachmentService,
	logger *slog.Logger,
) services.EntryService {
	return &entryService{
		entryRepo:   entryRepo,
		projectRepo: projectRepo,
		attachments: attachments,
		logger:      logger,
	}
}

// CreateEntry validates and stores a new entry
func (s *entryService) CreateEntry(ctx context.Context, req *services.CreateEntryRequest) (*models.Entry, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Referenced project must exist
	if req.ProjectID != nil {
		if _, err := s.projectRepo.GetByID(ctx, *req.ProjectID); err != nil {
			return nil, err
		}
	}

	entry := &models.Entry{
		Timestamp:     req.Timestamp,
		Title:         strings.TrimSpace(req.Title),
		ProjectID:     req.ProjectID,
		WorkType:      strings.TrimSpace(req.WorkType),
		Tags:          NormalizeTags(req.Tags),
		LinkedPaths:   normalizePaths(req.LinkedPaths),
		DurationHours: req.DurationHours,
		Notes:         req.Notes,
		CreatedAt:     time.Now(),
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("entry created",
		"id", entry.ID,
		"title", entry.Title,
		"project_id", entry.ProjectID,
	)

	return entry, nil
}

// GetEntry retrieves an entry by ID
func (s *entryService) GetEntry(ctx context.Context, id int64) (*models.Entry, error) {
	return s.entryRepo.GetByID(ctx, id)
}

// QueryEntries retrieves entries matching the filter, newest first
func (s *entryService) QueryEntries(ctx context.Context, filter *models.EntryFilter) ([]models.Entry, error) {
	if filter == nil {
		filter = &models.EntryFilter{}
	}
	if filter.Start != nil && filter.End != nil && filter.End.Before(*filter.Start) {
		return nil, fmt.Errorf("%w: end date precedes start date", domain.ErrValidation)
	}
	return s.entryRepo.Query(ctx, filter)
}

// UpdateEntry updates an entry's mutable fields
func (s *entryService) UpdateEntry(ctx context.Context, id int64, req *services.UpdateEntryRequest) (*models.Entry, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Timestamp != nil {
		entry.Timestamp = *req.Timestamp
	}
	if req.Title != nil {
		entry.Title = strings.TrimSpace(*req.Title)
	}
	switch {
	case req.ClearProject:
		entry.ProjectID = nil
		entry.ProjectName = ""
	case req.ProjectID != nil:
		if _, err := s.projectRepo.GetByID(ctx, *req.ProjectID); err != nil {
			return nil, err
		}
		entry.ProjectID = req.ProjectID
	}
	if req.WorkType != nil {
		entry.WorkType = strings.TrimSpace(*req.WorkType)
	}
	if req.Tags != nil {
		entry.Tags = NormalizeTags(req.Tags)
	}
	if req.LinkedPaths != nil {
		entry.LinkedPaths = normalizePaths(req.LinkedPaths)
	}
	if req.DurationHours != nil {
		entry.DurationHours = req.DurationHours
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("entry updated", "id", entry.ID)

	// Re-read to resolve the project name after a reference change
	return s.entryRepo.GetByID(ctx, id)
}

// DeleteEntry removes an entry and its attachment directory
func (s *entryService) DeleteEntry(ctx context.Context, id int64) error {
	if _, err := s.entryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.entryRepo.Delete(ctx, id); err != nil {
		return err
	}

	// The row is gone either way; a leftover directory is reported, not
	// rolled back.
	if err := s.attachments.RemoveDir(id); err != nil {
		s.logger.Warn("failed to remove attachment directory",
			"entry_id", id,
			"error", err,
		)
		return fmt.Errorf("%w: entry deleted but attachment directory removal failed: %v", domain.ErrIO, err)
	}

	s.logger.Info("entry deleted", "id", id)

	return nil
}

// RecentPaths returns the most recently used distinct workspace paths
func (s *entryService) RecentPaths(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = config.DefaultRecentPaths
	}
	return s.entryRepo.RecentPaths(ctx, limit)
}

// validateCreateRequest validates a capture request
func (s *entryService) validateCreateRequest(req *services.CreateEntryRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Timestamp, validation.Required),
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxEntryTitleLength),
			validation.By(validateTrimmedNotEmpty),
		),
		validation.Field(&req.DurationHours, validation.Min(0.0)),
	)
}

// validateUpdateRequest validates an entry edit request
func (s *entryService) validateUpdateRequest(req *services.UpdateEntryRequest) error {
	if req.ClearProject && req.ProjectID != nil {
		return fmt.Errorf("clear_project and project_id are mutually exclusive")
	}
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.NilOrNotEmpty,
			validation.Length(1, config.MaxEntryTitleLength),
		),
		validation.Field(&req.DurationHours, validation.Min(0.0)),
	)
}

// NormalizeTags trims tags, drops empties, and dedupes within the entry's
// tag set while preserving order. Uniqueness across entries is not enforced.
func NormalizeTags(tags []string) []string {
	var (
		out  []string
		seen = map[string]bool{}
	)
	for _, raw := range tags {
		// Accept comma-joined input from a single form field
		for _, tag := range strings.Split(raw, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			key := strings.ToLower(tag)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, tag)
		}
	}
	return out
}

func normalizePaths(paths []string) []string {
	var out []string
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
