package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Colours follow the default palette of the original TUI theme.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF")) // Yellow

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")) // Medium gray
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// render applies style only when w is a terminal so piped output stays plain.
func render(w io.Writer, style lipgloss.Style, s string) string {
	if !isTerminal(w) {
		return s
	}
	return style.Render(s)
}

// printHeader prints a section header naming path. Headers are decoration
// and are omitted from non-terminal output.
func printHeader(w io.Writer, path string) {
	if !isTerminal(w) {
		return
	}
	fmt.Fprintln(w, headerStyle.Render("» "+path))
}

// noticeWriter forwards unsupported-format notices to the root command's
// output, styled when that output is a terminal.
type noticeWriter struct{}

func (noticeWriter) Write(p []byte) (int, error) {
	out := rootCmd.OutOrStdout()
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if _, err := fmt.Fprintln(out, render(out, noticeStyle, line)); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}
