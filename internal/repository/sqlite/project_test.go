package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/evolveer/workandprojectnotebook/internal/domain"
	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
)

func newTestRepos(t *testing.T) (*RepositoryConfig, context.Context) {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "worklog.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &RepositoryConfig{DB: db}, ctx
}

func TestProjectCreateAndList(t *testing.T) {
	cfg, ctx := newTestRepos(t)
	repo := NewProjectRepository(cfg)

	base := "/home/me/acme"
	project := &models.Project{
		Name:      "Acme",
		BasePath:  &base,
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(ctx, project); err != nil {
		t.Fatalf("create project: %v", err)
	}
	if project.ID == 0 {
		t.Fatal("expected generated project ID")
	}

	projects, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}

	count := 0
	for _, p := range projects {
		if p.Name == "Acme" {
			count++
			if p.BasePath == nil || *p.BasePath != base {
				t.Errorf("base path = %v, want %q", p.BasePath, base)
			}
			if !p.CreatedAt.Equal(project.CreatedAt) {
				t.Errorf("created_at = %v, want %v", p.CreatedAt, project.CreatedAt)
			}
		}
	}
	if count != 1 {
		t.Errorf("project listed %d times, want exactly once", count)
	}
}

func TestProjectDuplicateName(t *testing.T) {
	cfg, ctx := newTestRepos(t)
	repo := NewProjectRepository(cfg)

	first := &models.Project{Name: "Acme", CreatedAt: time.Now()}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create project: %v", err)
	}

	dup := &models.Project{Name: "Acme", CreatedAt: time.Now()}
	err := repo.Create(ctx, dup)
	if err == nil {
		t.Fatal("expected conflict error for duplicate name")
	}
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}

	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) {
		if conflictErr.ResourceType != "project" {
			t.Errorf("resource type = %q, want project", conflictErr.ResourceType)
		}
	}
}

func TestProjectGetByIDNotFound(t *testing.T) {
	cfg, ctx := newTestRepos(t)
	repo := NewProjectRepository(cfg)

	_, err := repo.GetByID(ctx, 9999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestProjectUpdate(t *testing.T) {
	cfg, ctx := newTestRepos(t)
	repo := NewProjectRepository(cfg)

	project := &models.Project{Name: "Acme", CreatedAt: time.Now()}
	if err := repo.Create(ctx, project); err != nil {
		t.Fatalf("create project: %v", err)
	}

	newBase := "/tmp/acme"
	project.Name = "Acme Corp"
	project.BasePath = &newBase
	if err := repo.Update(ctx, project); err != nil {
		t.Fatalf("update project: %v", err)
	}

	got, err := repo.GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if got.Name != "Acme Corp" {
		t.Errorf("name = %q, want %q", got.Name, "Acme Corp")
	}
	if got.BasePath == nil || *got.BasePath != newBase {
		t.Errorf("base path = %v, want %q", got.BasePath, newBase)
	}
}

func TestProjectDeleteRestrictedWhileReferenced(t *testing.T) {
	cfg, ctx := newTestRepos(t)
	projectRepo := NewProjectRepository(cfg)
	entryRepo := NewEntryRepository(cfg)

	project := &models.Project{Name: "Acme", CreatedAt: time.Now()}
	if err := projectRepo.Create(ctx, project); err != nil {
		t.Fatalf("create project: %v", err)
	}

	entry := &models.Entry{
		Timestamp: time.Now(),
		Title:     "work",
		ProjectID: &project.ID,
		CreatedAt: time.Now(),
	}
	if err := entryRepo.Create(ctx, entry); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	err := projectRepo.Delete(ctx, project.ID)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("delete referenced project: error = %v, want ErrConflict", err)
	}

	// After the entry is gone, deletion succeeds
	if err := entryRepo.Delete(ctx, entry.ID); err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	if err := projectRepo.Delete(ctx, project.ID); err != nil {
		t.Fatalf("delete unreferenced project: %v", err)
	}

	if _, err := projectRepo.GetByID(ctx, project.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("deleted project still readable, error = %v", err)
	}
}
