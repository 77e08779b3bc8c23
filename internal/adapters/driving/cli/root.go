// Package cli provides the parsely command line interface.
package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/parsely/internal/adapters/driven/config/file"
	"github.com/custodia-labs/parsely/internal/adapters/driven/watch"
	"github.com/custodia-labs/parsely/internal/core/ports/driven"
	"github.com/custodia-labs/parsely/internal/core/ports/driving"
	"github.com/custodia-labs/parsely/internal/core/services"
	"github.com/custodia-labs/parsely/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services used by commands. Tests replace them directly.
var (
	connectionService driving.ConnectionService
	reportService     driving.ReportService
	settingsService   driving.SettingsService
	newWatcher        func(debounce time.Duration) driven.Watcher
)

var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "parsely",
	Short: "Parse JSON and XML files through format connectors",
	Long: `parsely picks a parser for a file from its extension and prints facts
derived from the parsed document.

Files ending in .json are read as JSON value trees and files ending in .xml
as XML element trees. Any other extension is reported and skipped.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.parsely)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if connectionService != nil {
		return nil
	}
	return configureServices(configDir)
}

// configureServices wires the production adapters into the command services.
func configureServices(dir string) error {
	configStore, err := file.NewConfigStore(dir)
	if err != nil {
		return err
	}
	logger.Debug("config: %s", configStore.Path())

	connectionService = services.NewConnectionService(services.NewConnectorFactory(), noticeWriter{})
	reportService = services.NewReportService()
	settingsService = services.NewSettingsService(configStore)
	newWatcher = func(debounce time.Duration) driven.Watcher {
		return watch.NewWatcher(debounce)
	}
	return nil
}
