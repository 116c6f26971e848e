package cli

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/evolveer/workandprojectnotebook/internal/handler"
	"github.com/evolveer/workandprojectnotebook/internal/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the work-log HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info("server starting",
		"environment", a.cfg.Environment,
		"port", a.cfg.Port,
		"db_path", a.cfg.DBPath,
		"attachments_dir", a.cfg.AttachmentsDir,
	)

	projectHandler := handler.NewProjectHandler(a.projects, a.logger)
	entryHandler := handler.NewEntryHandler(a.entries, a.logger)
	attachmentHandler := handler.NewAttachmentHandler(a.entries, a.attachments, a.logger)
	exportHandler := handler.NewExportHandler(a.entries, a.export, a.logger)
	openHandler := handler.NewOpenHandler(a.opener, a.logger)

	mux := handler.Routes(projectHandler, entryHandler, attachmentHandler, exportHandler, openHandler)

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → RequestLog → Routes
	var h http.Handler = mux
	h = middleware.RequestLog(a.logger)(h)
	h = middleware.Recovery(a.logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(a.cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
