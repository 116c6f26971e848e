package repositories

import (
	"context"

	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
)

// ProjectRepository defines data access operations for projects
type ProjectRepository interface {
	// Create creates a new project. Returns a ConflictError if the name
	// is already taken.
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves a project by ID
	GetByID(ctx context.Context, id int64) (*models.Project, error)

	// GetByName retrieves a project by its unique name
	GetByName(ctx context.Context, name string) (*models.Project, error)

	// List retrieves all projects ordered by name
	List(ctx context.Context) ([]models.Project, error)

	// Update updates a project's name and base path
	Update(ctx context.Context, project *models.Project) error

	// Delete removes a project. Fails with a ConflictError while entries
	// still reference it.
	Delete(ctx context.Context, id int64) error
}
