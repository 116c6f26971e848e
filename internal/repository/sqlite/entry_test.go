package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evolveer/workandprojectnotebook/internal/domain"
	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
	"github.com/evolveer/workandprojectnotebook/internal/domain/repositories"
)

func seedProject(t *testing.T, ctx context.Context, repo repositories.ProjectRepository, name string) *models.Project {
	t.Helper()
	project := &models.Project{Name: name, CreatedAt: time.Now()}
	if err := repo.Create(ctx, project); err != nil {
		t.Fatalf("seed project %q: %v", name, err)
	}
	return project
}

func TestEntryRoundTrip(t *testing.T) {
	cfg, ctx := newTestRepos(t)
	projectRepo := NewProjectRepository(cfg)
	entryRepo := NewEntryRepository(cfg)

	project := seedProject(t, ctx, projectRepo, "Acme")

	duration := 2.5
	entry := &models.Entry{
		Timestamp:     time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC),
		Title:         "fixed build",
		ProjectID:     &project.ID,
		WorkType:      "Coding",
		Tags:          []string{"infra", "ci"},
		LinkedPaths:   []string{"/src/acme", "/var/log/build.log"},
		DurationHours: &duration,
		Notes:         "fixed build\n\nsee `Makefile`",
		CreatedAt:     time.Date(2024, 1, 5, 9, 31, 0, 0, time.UTC),
	}
	if err := entryRepo.Create(ctx, entry); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	got, err := entryRepo.GetByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}

	if !got.Timestamp.Equal(entry.Timestamp) {
		t.Errorf("ts = %v, want %v", got.Timestamp, entry.Timestamp)
	}
	if got.Title != entry.Title {
		t.Errorf("title = %q, want %q", got.Title, entry.Title)
	}
	if got.ProjectID == nil || *got.ProjectID != project.ID {
		t.Errorf("project_id = %v, want %d", got.ProjectID, project.ID)
	}
	if got.ProjectName != "Acme" {
		t.Errorf("project name = %q, want Acme", got.ProjectName)
	}
	if got.WorkType != "Coding" {
		t.Errorf("work_type = %q, want Coding", got.WorkType)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "infra" || got.Tags[1] != "ci" {
		t.Errorf("tags = %v, want [infra ci]", got.Tags)
	}
	if len(got.LinkedPaths) != 2 || got.LinkedPaths[0] != "/src/acme" {
		t.Errorf("paths = %v", got.LinkedPaths)
	}
	if got.DurationHours == nil || *got.DurationHours != duration {
		t.Errorf("duration = %v, want %v", got.DurationHours, duration)
	}
	if got.Notes != entry.Notes {
		t.Errorf("notes = %q, want %q", got.Notes, entry.Notes)
	}
}

func TestEntryCreateUnknownProject(t *testing.T) {
	cfg, ctx := newTestRepos(t)
	entryRepo := NewEntryRepository(cfg)

	missing := int64(42)
	entry := &models.Entry{
		Timestamp: time.Now(),
		Title:     "orphan",
		ProjectID: &missing,
		CreatedAt: time.Now(),
	}

	err := entryRepo.Create(ctx, entry)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestEntryNullableFields(t *testing.T) {
	cfg, ctx := newTestRepos(t)
	entryRepo := NewEntryRepository(cfg)

	entry := &models.Entry{
		Timestamp: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		Title:     "uncategorized",
		CreatedAt: time.Now(),
	}
	if err := entryRepo.Create(ctx, entry); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	got, err := entryRepo.GetByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	if got.ProjectID != nil {
		t.Errorf("project_id = %v, want nil", got.ProjectID)
	}
	if got.ProjectName != "" {
		t.Errorf("project name = %q, want empty", got.ProjectName)
	}
	if got.DurationHours != nil {
		t.Errorf("duration = %v, want nil", got.DurationHours)
	}
	if len(got.Tags) != 0 {
		t.Errorf("tags = %v, want empty", got.Tags)
	}
}

func seedEntryAt(t *testing.T, ctx context.Context, repo repositories.EntryRepository, title string, ts time.Time, tags []string, projectID *int64) *models.Entry {
	t.Helper()
	entry := &models.Entry{
		Timestamp: ts,
		Title:     title,
		ProjectID: projectID,
		Tags:      tags,
		CreatedAt: time.Now(),
	}
	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("seed entry %q: %v", title, err)
	}
	return entry
}

func TestEntryQueryDateRangeInclusive(t *testing.T) {
	cfg, ctx := newTestRepos(t)
	entryRepo := NewEntryRepository(cfg)

	day := func(d int, hour int) time.Time {
		return time.Date(2024, 1, d, hour, 0, 0, 0, time.UTC)
	}

	seedEntryAt(t, ctx, entryRepo, "before", day(4, 23), nil, nil)
	seedEntryAt(t, ctx, entryRepo, "start boundary", day(5, 0), nil, nil)
	seedEntryAt(t, ctx, entryRepo, "inside", day(7, 12), nil, nil)
	seedEntryAt(t, ctx, entryRepo, "end boundary", day(9, 23), nil, nil)
	seedEntryAt(t, ctx, entryRepo, "after", day(10, 0), nil, nil)

	start := day(5, 0)
	end := day(9, 0)
	entries, err := entryRepo.Query(ctx, &models.EntryFilter{Start: &start, End: &end})
	if err != nil {
		t.Fatalf("query entries: %v", err)
	}

	want := map[string]bool{"start boundary": true, "inside": true, "end boundary": true}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for _, e := range entries {
		if !want[e.Title] {
			t.Errorf("unexpected entry %q in range", e.Title)
		}
	}

	// Newest first
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.After(entries[i-1].Timestamp) {
			t.Errorf("entries not ordered by timestamp descending")
		}
	}
}

func TestEntryQueryTagFilter(t *testing.T) {
	cfg, ctx := newTestRepos(t)
	entryRepo := NewEntryRepository(cfg)

	seedEntryAt(t, ctx, entryRepo, "tagged", time.Now(), []string{"Infra", "deploy"}, nil)
	seedEntryAt(t, ctx, entryRepo, "other", time.Now(), []string{"meeting"}, nil)

	tests := []struct {
		name string
		tag  string
		want int
	}{
		{"exact", "deploy", 1},
		{"case-insensitive", "infra", 1},
		{"substring", "eploy", 1},
		{"no match", "research", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := entryRepo.Query(ctx, &models.EntryFilter{Tag: tt.tag})
			if err != nil {
				t.Fatalf("query entries: %v", err)
			}
			if len(entries) != tt.want {
				t.Errorf("tag %q matched %d entries, want %d", tt.tag, len(entries), tt.want)
			}
		})
	}
}

func TestEntryQueryProjectFilter(t *testing.T) {
	cfg, ctx := newTestRepos(t)
	projectRepo := NewProjectRepository(cfg)
	entryRepo := NewEntryRepository(cfg)

	acme := seedProject(t, ctx, projectRepo, "Acme")
	other := seedProject(t, ctx, projectRepo, "Other")

	seedEntryAt(t, ctx, entryRepo, "acme work", time.Now(), nil, &acme.ID)
	seedEntryAt(t, ctx, entryRepo, "other work", time.Now(), nil, &other.ID)
	seedEntryAt(t, ctx, entryRepo, "no project", time.Now(), nil, nil)

	entries, err := entryRepo.Query(ctx, &models.EntryFilter{ProjectID: &acme.ID})
	if err != nil {
		t.Fatalf("query entries: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "acme work" {
		t.Errorf("project filter returned %+v, want only 'acme work'", entries)
	}
}

func TestEntryQueryTextFilter(t *testing.T) {
	cfg, ctx := newTestRepos(t)
	entryRepo := NewEntryRepository(cfg)

	entry := &models.Entry{
		Timestamp:   time.Now(),
		Title:       "deploy pipeline",
		Notes:       "rolled back the release",
		LinkedPaths: []string{"/srv/app"},
		CreatedAt:   time.Now(),
	}
	if err := entryRepo.Create(ctx, entry); err != nil {
		t.Fatalf("create entry: %v", err)
	}
	seedEntryAt(t, ctx, entryRepo, "unrelated", time.Now(), nil, nil)

	for _, q := range []string{"pipeline", "rolled back", "/srv"} {
		entries, err := entryRepo.Query(ctx, &models.EntryFilter{Text: q})
		if err != nil {
			t.Fatalf("query entries: %v", err)
		}
		if len(entries) != 1 || entries[0].Title != "deploy pipeline" {
			t.Errorf("text %q returned %d entries, want the one matching entry", q, len(entries))
		}
	}
}

func TestEntryDeleteRemovesFromQueries(t *testing.T) {
	cfg, ctx := newTestRepos(t)
	entryRepo := NewEntryRepository(cfg)

	entry := seedEntryAt(t, ctx, entryRepo, "temp", time.Now(), nil, nil)

	if err := entryRepo.Delete(ctx, entry.ID); err != nil {
		t.Fatalf("delete entry: %v", err)
	}

	entries, err := entryRepo.Query(ctx, nil)
	if err != nil {
		t.Fatalf("query entries: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("deleted entry still returned: %+v", entries)
	}

	if _, err := entryRepo.GetByID(ctx, entry.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("get deleted entry: error = %v, want ErrNotFound", err)
	}

	if err := entryRepo.Delete(ctx, entry.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("double delete: error = %v, want ErrNotFound", err)
	}
}

func TestEntryDeleteCascadesAttachments(t *testing.T) {
	cfg, ctx := newTestRepos(t)
	entryRepo := NewEntryRepository(cfg)
	attachmentRepo := NewAttachmentRepository(cfg)

	entry := seedEntryAt(t, ctx, entryRepo, "with files", time.Now(), nil, nil)

	attachment := &models.Attachment{
		EntryID:   entry.ID,
		Filename:  "result.png",
		RelPath:   "entry_1/result.png",
		CreatedAt: time.Now(),
	}
	if err := attachmentRepo.Create(ctx, attachment); err != nil {
		t.Fatalf("create attachment: %v", err)
	}

	if err := entryRepo.Delete(ctx, entry.ID); err != nil {
		t.Fatalf("delete entry: %v", err)
	}

	attachments, err := attachmentRepo.ListByEntry(ctx, entry.ID)
	if err != nil {
		t.Fatalf("list attachments: %v", err)
	}
	if len(attachments) != 0 {
		t.Errorf("attachments not cascaded: %+v", attachments)
	}
}

func TestEntryRecentPaths(t *testing.T) {
	cfg, ctx := newTestRepos(t)
	entryRepo := NewEntryRepository(cfg)

	first := &models.Entry{Timestamp: time.Now(), Title: "a", LinkedPaths: []string{"/one"}, CreatedAt: time.Now()}
	second := &models.Entry{Timestamp: time.Now(), Title: "b", LinkedPaths: []string{"/two", "/one"}, CreatedAt: time.Now()}
	for _, e := range []*models.Entry{first, second} {
		if err := entryRepo.Create(ctx, e); err != nil {
			t.Fatalf("create entry: %v", err)
		}
	}

	paths, err := entryRepo.RecentPaths(ctx, 10)
	if err != nil {
		t.Fatalf("recent paths: %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2 distinct: %v", len(paths), paths)
	}
	// Most recent entry's paths come first
	if paths[0] != "/two" {
		t.Errorf("paths = %v, want /two first", paths)
	}
}
