package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and attachments directory",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := os.MkdirAll(a.cfg.AttachmentsDir, 0o755); err != nil {
		return fmt.Errorf("create attachments directory: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "database: %s\nattachments: %s\n", a.cfg.DBPath, a.cfg.AttachmentsDir)
	return nil
}
