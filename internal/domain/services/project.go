package services

import (
	"context"

	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
)

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Name     string  `json:"name"`
	BasePath *string `json:"base_path,omitempty"`
}

// UpdateProjectRequest represents a request to update a project.
// Nil fields are left unchanged.
type UpdateProjectRequest struct {
	Name     *string `json:"name,omitempty"`
	BasePath *string `json:"base_path,omitempty"`
}

// ProjectService defines business logic operations for projects
type ProjectService interface {
	// CreateProject creates a new project
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)

	// GetProject retrieves a project by ID
	GetProject(ctx context.Context, id int64) (*models.Project, error)

	// ListProjects retrieves all projects ordered by name
	ListProjects(ctx context.Context) ([]models.Project, error)

	// UpdateProject updates a project's name and base path
	UpdateProject(ctx context.Context, id int64, req *UpdateProjectRequest) (*models.Project, error)

	// DeleteProject removes a project. Fails while entries reference it.
	DeleteProject(ctx context.Context, id int64) error
}
