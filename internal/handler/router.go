package handler

import (
	"net/http"
)

// Routes mounts every handler on a fresh mux (Go 1.22+ method patterns)
func Routes(
	projects *ProjectHandler,
	entries *EntryHandler,
	attachments *AttachmentHandler,
	export *ExportHandler,
	open *OpenHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", HealthCheck)

	// Project routes
	mux.HandleFunc("GET /api/projects", projects.ListProjects)
	mux.HandleFunc("POST /api/projects", projects.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", projects.GetProject)
	mux.HandleFunc("PATCH /api/projects/{id}", projects.UpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", projects.DeleteProject)

	// Entry routes
	mux.HandleFunc("POST /api/entries", entries.CreateEntry)
	mux.HandleFunc("GET /api/entries", entries.ListEntries)
	mux.HandleFunc("GET /api/entries/export", export.Export) // Must come before {id} route
	mux.HandleFunc("GET /api/entries/{id}", entries.GetEntry)
	mux.HandleFunc("PATCH /api/entries/{id}", entries.UpdateEntry)
	mux.HandleFunc("DELETE /api/entries/{id}", entries.DeleteEntry)

	// Attachment routes
	mux.HandleFunc("POST /api/entries/{id}/attachments", attachments.Upload)
	mux.HandleFunc("GET /api/entries/{id}/attachments", attachments.List)

	// Host interaction
	mux.HandleFunc("POST /api/open", open.Open)
	mux.HandleFunc("GET /api/paths/recent", entries.RecentPaths)

	return mux
}
