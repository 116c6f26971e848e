package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/evolveer/workandprojectnotebook/internal/domain"
	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
	"github.com/evolveer/workandprojectnotebook/internal/domain/repositories"
)

// SQLiteProjectRepository implements the ProjectRepository interface
type SQLiteProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(config *RepositoryConfig) repositories.ProjectRepository {
	return &SQLiteProjectRepository{db: config.DB}
}

// Create creates a new project
func (r *SQLiteProjectRepository) Create(ctx context.Context, project *models.Project) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (name, base_path, created_at)
		VALUES (?, ?, ?)
	`, project.Name, project.BasePath, encodeTime(project.CreatedAt))

	if err != nil {
		if IsDuplicateError(err) {
			existing, queryErr := r.GetByName(ctx, project.Name)
			if queryErr != nil {
				// Fallback to generic conflict error if we can't find
				// the existing project
				return fmt.Errorf("project '%s' already exists: %w", project.Name, domain.ErrConflict)
			}
			return &domain.ConflictError{
				Message:      fmt.Sprintf("project '%s' already exists", project.Name),
				ResourceType: "project",
				ResourceID:   strconv.FormatInt(existing.ID, 10),
			}
		}
		return fmt.Errorf("create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	project.ID = id

	return nil
}

// GetByID retrieves a project by ID
func (r *SQLiteProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, base_path, created_at
		FROM projects
		WHERE id = ?
	`, id)

	project, err := scanProject(row)
	if err != nil {
		if IsNoRowsError(err) {
			return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return project, nil
}

// GetByName retrieves a project by its unique name
func (r *SQLiteProjectRepository) GetByName(ctx context.Context, name string) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, base_path, created_at
		FROM projects
		WHERE name = ?
	`, name)

	project, err := scanProject(row)
	if err != nil {
		if IsNoRowsError(err) {
			return nil, fmt.Errorf("project '%s': %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return project, nil
}

// List retrieves all projects ordered by name
func (r *SQLiteProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, base_path, created_at
		FROM projects
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	// Return empty slice instead of nil if no projects
	if projects == nil {
		projects = []models.Project{}
	}

	return projects, nil
}

// Update updates a project's name and base path
func (r *SQLiteProjectRepository) Update(ctx context.Context, project *models.Project) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE projects
		SET name = ?, base_path = ?
		WHERE id = ?
	`, project.Name, project.BasePath, project.ID)

	if err != nil {
		if IsDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("project '%s' already exists", project.Name),
				ResourceType: "project",
			}
		}
		return fmt.Errorf("update project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("project %d: %w", project.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a project. The entries table declares ON DELETE RESTRICT,
// so deletion fails while entries still reference the project.
func (r *SQLiteProjectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		if IsForeignKeyError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("project %d still has entries; delete or reassign them first", id),
				ResourceType: "project",
				ResourceID:   strconv.FormatInt(id, 10),
			}
		}
		return fmt.Errorf("delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for the scan helpers
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var (
		project   models.Project
		createdAt string
	)
	if err := row.Scan(&project.ID, &project.Name, &project.BasePath, &createdAt); err != nil {
		return nil, err
	}

	ts, err := decodeTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	project.CreatedAt = ts

	return &project, nil
}
