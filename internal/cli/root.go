package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "Personal work log with projects, tags and attachments",
	Long: `worklog records timestamped work entries tied to projects, with tags,
durations, markdown notes and file attachments, all stored in a local
single-file database.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file (silently ignore if it doesn't exist)
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(initCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
