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

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo repositories.ProjectRepository
	logger      *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateProject creates a new project
func (s *projectService) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project := &models.Project{
		Name:      strings.TrimSpace(req.Name),
		BasePath:  normalizePath(req.BasePath),
		CreatedAt: time.Now(),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"name", project.Name,
	)

	return project, nil
}

// GetProject retrieves a project by ID
func (s *projectService) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// ListProjects retrieves all projects ordered by name
func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.List(ctx)
}

// UpdateProject updates a project's name and base path
func (s *projectService) UpdateProject(ctx context.Context, id int64, req *services.UpdateProjectRequest) (*models.Project, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = strings.TrimSpace(*req.Name)
	}
	if req.BasePath != nil {
		project.BasePath = normalizePath(req.BasePath)
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project updated",
		"id", project.ID,
		"name", project.Name,
	)

	return project, nil
}

// DeleteProject removes a project. Fails while entries reference it.
func (s *projectService) DeleteProject(ctx context.Context, id int64) error {
	// Verify project exists first (provides better error message)
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("project deleted", "id", id)

	return nil
}

// validateCreateRequest validates a create project request
func (s *projectService) validateCreateRequest(req *services.CreateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxProjectNameLength),
			validation.By(validateTrimmedNotEmpty),
		),
	)
}

// validateUpdateRequest validates an update project request
func (s *projectService) validateUpdateRequest(req *services.UpdateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.NilOrNotEmpty,
			validation.Length(1, config.MaxProjectNameLength),
		),
	)
}

// validateTrimmedNotEmpty rejects values that are only whitespace
func validateTrimmedNotEmpty(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be blank")
	}
	return nil
}

// normalizePath trims a user-supplied path; blank collapses to nil
func normalizePath(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
