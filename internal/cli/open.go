package cli

import (
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Open a path with the OS default opener",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	return a.opener.Open(args[0])
}
