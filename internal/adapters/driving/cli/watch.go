package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/parsely/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Rerun the sample report when files change",
	Long: `Run the sample report over dir, then run it again each time a .json or
.xml file in dir is written. Parse errors are printed and watching continues.

Stop with Ctrl+C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if connectionService == nil || reportService == nil || settingsService == nil || newWatcher == nil {
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

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	rerun := func() {
		if err := runSampleReport(ctx, out, dir, settings.Report.LastName); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		}
	}

	rerun()
	return watchAndRerun(ctx, dir, settings.Watch.Debounce, rerun)
}

func watchAndRerun(ctx context.Context, dir string, debounce time.Duration, rerun func()) error {
	return newWatcher(debounce).Watch(ctx, dir, func(paths []string) {
		logger.Info("changed: %s", strings.Join(paths, ", "))
		rerun()
	})
}
