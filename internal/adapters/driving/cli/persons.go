package cli

import (
	"github.com/spf13/cobra"
)

var personsLastName string

var personsCmd = &cobra.Command{
	Use:   "persons <file>",
	Short: "List persons in an XML file by last name",
	Long: `Select every person element whose lastName child equals --last-name and
print its names and phone numbers.`,
	Args: cobra.ExactArgs(1),
	RunE: runPersons,
}

func init() {
	personsCmd.Flags().StringVar(&personsLastName, "last-name", "", "last name to match (default from report.last_name)")
	rootCmd.AddCommand(personsCmd)
}

func runPersons(cmd *cobra.Command, args []string) error {
	if connectionService == nil || reportService == nil || settingsService == nil {
		return errNotConfigured
	}

	lastName := personsLastName
	if !cmd.Flags().Changed("last-name") {
		settings, err := settingsService.Get()
		if err != nil {
			return err
		}
		lastName = settings.Report.LastName
	}

	return reportPersons(cmd.Context(), cmd.OutOrStdout(), args[0], lastName)
}
