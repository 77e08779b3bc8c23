package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/parsely/internal/core/domain"
)

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show the connector opened for a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "print the summary as JSON")
	rootCmd.AddCommand(inspectCmd)
}

// inspectOutput is the --json form of a file summary.
type inspectOutput struct {
	ID     string `json:"id"`
	Path   string `json:"path"`
	Format string `json:"format"`
	Root   string `json:"root"`
	Items  int    `json:"items"`
}

func runInspect(cmd *cobra.Command, args []string) error {
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

	summary, err := reportService.Summarise(conn)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if inspectJSON {
		data, err := json.MarshalIndent(inspectOutput{
			ID:     summary.ConnectorID,
			Path:   summary.Path,
			Format: summary.Format.String(),
			Root:   summary.Root,
			Items:  summary.Items,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "id: %s\n", summary.ConnectorID)
	fmt.Fprintf(out, "path: %s\n", summary.Path)
	fmt.Fprintf(out, "format: %s\n", summary.Format)
	fmt.Fprintf(out, "summary: %s\n", describe(summary))
	return nil
}

// describe renders a one-line summary of a document's shape.
func describe(s domain.FileSummary) string {
	if s.Format == domain.FormatXML {
		return fmt.Sprintf("root <%s> with %d children", s.Root, s.Items)
	}
	switch s.Root {
	case "array":
		return fmt.Sprintf("array with %d items", s.Items)
	case "object":
		return fmt.Sprintf("object with %d keys", s.Items)
	default:
		return s.Root
	}
}
