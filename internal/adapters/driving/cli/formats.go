package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported file formats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if connectionService == nil {
			return errNotConfigured
		}

		out := cmd.OutOrStdout()
		for _, f := range connectionService.Formats() {
			fmt.Fprintf(out, "%-5s %-6s %s\n", f, f.Extension(), render(out, mutedStyle, f.Description()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
