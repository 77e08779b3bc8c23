package cli

import (
	"github.com/spf13/cobra"
)

var demoLastName string

var demoCmd = &cobra.Command{
	Use:   "demo [dir]",
	Short: "Run the sample report",
	Long: `Connect to person.sq3, person.xml and donut.json in dir and print what
each connector yields.

person.sq3 has no connector and is reported and skipped. person.xml lists the
persons whose lastName matches --last-name. donut.json lists every donut with
its price and toppings.

dir defaults to the data.dir config setting.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoLastName, "last-name", "", "filter persons by last name (default from report.last_name)")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	if connectionService == nil || reportService == nil || settingsService == nil {
		return errNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	dir := settings.Data.Dir
	if len(args) == 1 {
		dir = args[0]
	}
	lastName := settings.Report.LastName
	if cmd.Flags().Changed("last-name") {
		lastName = demoLastName
	}

	return runSampleReport(cmd.Context(), cmd.OutOrStdout(), dir, lastName)
}
