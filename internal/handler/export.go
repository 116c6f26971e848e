package handler

import (
	"log/slog"
	"net/http"

	domainSvc "github.com/evolveer/workandprojectnotebook/internal/domain/services"
	"github.com/evolveer/workandprojectnotebook/internal/httputil"
)

// ExportHandler serializes the current filtered view
type ExportHandler struct {
	entryService  domainSvc.EntryService
	exportService domainSvc.ExportService
	logger        *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(entryService domainSvc.EntryService, exportService domainSvc.ExportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		entryService:  entryService,
		exportService: exportService,
		logger:        logger,
	}
}

// Export renders the filtered entries as CSV or Markdown
// GET /api/entries/export?format=csv|markdown plus the list filters
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := domainSvc.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = domainSvc.ExportCSV
	}

	var contentType, filename string
	switch format {
	case domainSvc.ExportCSV:
		contentType, filename = "text/csv", "worklog.csv"
	case domainSvc.ExportMarkdown:
		contentType, filename = "text/markdown", "worklog.md"
	default:
		httputil.RespondError(w, http.StatusBadRequest, "format must be csv or markdown")
		return
	}

	filter, err := parseEntryFilter(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.entryService.QueryEntries(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.exportService.Render(w, format, entries); err != nil {
		// Headers are out; all we can do is log
		h.logger.Error("export render failed", "format", format, "error", err)
	}
}
