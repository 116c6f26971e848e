package cli

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/evolveer/workandprojectnotebook/internal/config"
	domainSvc "github.com/evolveer/workandprojectnotebook/internal/domain/services"
	"github.com/evolveer/workandprojectnotebook/internal/repository/sqlite"
	"github.com/evolveer/workandprojectnotebook/internal/service"
)

// app bundles the wired services behind each command
type app struct {
	cfg         *config.Config
	logger      *slog.Logger
	db          *sql.DB
	projects    domainSvc.ProjectService
	entries     domainSvc.EntryService
	attachments domainSvc.AttachmentService
	export      domainSvc.ExportService
	opener      domainSvc.PathOpener
}

func (a *app) Close() error {
	return a.db.Close()
}

// newApp loads configuration, opens the database and wires the service
// graph, the same for every command.
func newApp(ctx context.Context) (*app, error) {
	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	db, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}

	repoConfig := &sqlite.RepositoryConfig{DB: db, Logger: logger}
	projectRepo := sqlite.NewProjectRepository(repoConfig)
	entryRepo := sqlite.NewEntryRepository(repoConfig)
	attachmentRepo := sqlite.NewAttachmentRepository(repoConfig)

	attachmentService := service.NewAttachmentService(cfg.AttachmentsDir, attachmentRepo, logger)

	return &app{
		cfg:         cfg,
		logger:      logger,
		db:          db,
		projects:    service.NewProjectService(projectRepo, logger),
		entries:     service.NewEntryService(entryRepo, projectRepo, attachmentService, logger),
		attachments: attachmentService,
		export:      service.NewExportService(),
		opener:      service.NewPathOpener(logger),
	}, nil
}
