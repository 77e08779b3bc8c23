package cli

import (
	"github.com/spf13/cobra"
)

var donutsCmd = &cobra.Command{
	Use:   "donuts <file>",
	Short: "List donuts in a JSON file",
	Long:  `Print the name, price and toppings of every entry in a top-level JSON array.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if connectionService == nil || reportService == nil {
			return errNotConfigured
		}
		return reportDonuts(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(donutsCmd)
}
