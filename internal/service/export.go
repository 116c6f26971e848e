package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/evolveer/workandprojectnotebook/internal/domain"
	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
	"github.com/evolveer/workandprojectnotebook/internal/domain/services"
)

// exportService renders a filtered result set as CSV or Markdown
type exportService struct{}

// NewExportService creates a new export service
func NewExportService() services.ExportService {
	return exportService{}
}

// Render writes the entries to w in the given format
func (e exportService) Render(w io.Writer, format services.ExportFormat, entries []models.Entry) error {
	switch format {
	case services.ExportCSV:
		return renderCSV(w, entries)
	case services.ExportMarkdown:
		return renderMarkdown(w, entries)
	default:
		return fmt.Errorf("%w: unknown export format %q", domain.ErrValidation, format)
	}
}

// csvHeader lists every entry field except the note body
var csvHeader = []string{"id", "ts", "title", "project", "work_type", "tags", "paths", "duration_hours"}

func renderCSV(w io.Writer, entries []models.Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, entry := range entries {
		duration := ""
		if entry.DurationHours != nil {
			duration = strconv.FormatFloat(*entry.DurationHours, 'f', -1, 64)
		}
		record := []string{
			strconv.FormatInt(entry.ID, 10),
			entry.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
			entry.Title,
			entry.ProjectName,
			entry.WorkType,
			strings.Join(entry.Tags, ","),
			strings.Join(entry.LinkedPaths, ";"),
			duration,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func renderMarkdown(w io.Writer, entries []models.Entry) error {
	var b strings.Builder

	if len(entries) == 0 {
		b.WriteString("# Worklog\n\n_No entries in the selected range._\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("# Worklog Export\n")

	// Group under date headings while preserving the view's order: dates
	// appear in order of first occurrence, entries in view order within.
	currentDate := ""
	for _, entry := range entries {
		date := entry.Timestamp.Format("2006-01-02")
		if date != currentDate {
			currentDate = date
			fmt.Fprintf(&b, "\n## %s\n", date)
		}
		writeMarkdownEntry(&b, &entry)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdownEntry(b *strings.Builder, entry *models.Entry) {
	fmt.Fprintf(b, "\n### %s\n\n", entry.Title)
	fmt.Fprintf(b, "- **Time:** %s\n", entry.Timestamp.Format("2006-01-02 15:04"))
	if entry.ProjectName != "" {
		fmt.Fprintf(b, "- **Project:** %s\n", entry.ProjectName)
	}
	if entry.WorkType != "" {
		fmt.Fprintf(b, "- **Type:** %s\n", entry.WorkType)
	}
	if len(entry.Tags) > 0 {
		fmt.Fprintf(b, "- **Tags:** %s\n", strings.Join(entry.Tags, ", "))
	}
	for _, p := range entry.LinkedPaths {
		fmt.Fprintf(b, "- **Path:** %s\n", p)
	}
	if entry.DurationHours != nil {
		fmt.Fprintf(b, "- **Duration:** %s h\n", strconv.FormatFloat(*entry.DurationHours, 'f', -1, 64))
	}
	if entry.Notes != "" {
		fmt.Fprintf(b, "\n%s\n", entry.Notes)
	}
}
