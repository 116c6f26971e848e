package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
	domainSvc "github.com/evolveer/workandprojectnotebook/internal/domain/services"
)

var (
	exportFormat    string
	exportStart     string
	exportEnd       string
	exportTag       string
	exportProjectID int64
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered entries to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, md")
	exportCmd.Flags().StringVar(&exportStart, "start", "", "Start date (YYYY-MM-DD, inclusive)")
	exportCmd.Flags().StringVar(&exportEnd, "end", "", "End date (YYYY-MM-DD, inclusive)")
	exportCmd.Flags().StringVar(&exportTag, "tag", "", "Tag filter (case-insensitive substring)")
	exportCmd.Flags().Int64Var(&exportProjectID, "project", 0, "Project ID filter")
}

func runExport(cmd *cobra.Command, args []string) error {
	var format domainSvc.ExportFormat
	switch exportFormat {
	case "csv":
		format = domainSvc.ExportCSV
	case "md", "markdown":
		format = domainSvc.ExportMarkdown
	default:
		return fmt.Errorf("unknown format %q (want csv or md)", exportFormat)
	}

	filter := &models.EntryFilter{Tag: exportTag}
	if exportStart != "" {
		t, err := time.Parse("2006-01-02", exportStart)
		if err != nil {
			return fmt.Errorf("invalid start date %q: %w", exportStart, err)
		}
		filter.Start = &t
	}
	if exportEnd != "" {
		t, err := time.Parse("2006-01-02", exportEnd)
		if err != nil {
			return fmt.Errorf("invalid end date %q: %w", exportEnd, err)
		}
		filter.End = &t
	}
	if exportProjectID > 0 {
		filter.ProjectID = &exportProjectID
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := a.entries.QueryEntries(cmd.Context(), filter)
	if err != nil {
		return err
	}

	return a.export.Render(os.Stdout, format, entries)
}
