package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <file.xml> <xpath>",
	Short: "Run an XPath query against an XML file",
	Long: `Evaluate an XPath expression against an XML file and print each matching
element with its text. The expression must select nodes; number, string and
boolean expressions such as count(//person) are rejected.

Example:
  parsely query person.xml "//person[lastName='Liar']/firstName"`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if connectionService == nil || reportService == nil {
		return errNotConfigured
	}

	conn, ok, err := connectionService.Connect(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	elements, err := reportService.Query(conn, args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "found: %d elements\n", len(elements))
	for _, el := range elements {
		if el.Text == "" {
			fmt.Fprintf(out, "<%s>\n", el.Tag)
			continue
		}
		fmt.Fprintf(out, "<%s> %s\n", el.Tag, el.Text)
	}
	return nil
}
