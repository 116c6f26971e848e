package services

import (
	"io"

	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
)

// ExportFormat selects an export rendering
type ExportFormat string

const (
	// ExportCSV renders a header row plus one row per entry, every field
	// except the note body.
	ExportCSV ExportFormat = "csv"

	// ExportMarkdown renders full detail, one section per entry, grouped
	// under date headings, in the same order as the filtered view.
	ExportMarkdown ExportFormat = "markdown"
)

// ExportService serializes a filtered result set
type ExportService interface {
	// Render writes the entries to w in the given format
	Render(w io.Writer, format ExportFormat, entries []models.Entry) error
}
