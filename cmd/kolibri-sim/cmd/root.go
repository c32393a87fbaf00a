// Package cmd implements the kolibri-sim CLI commands.
//
// The root command dispatches to run (interactive terminal simulator),
// snapshot (headless render to an image file) and theme (validate and dump
// theme files).
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ElectronicKiwi/kolibri/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var (
	projectDir string
	verbose    bool
	logJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "kolibri-sim",
	Short: "Simulate kolibri widgets on a small RGB565 display",
	Long: `kolibri-sim renders the kolibri demo application into a simulated
SPI LCD framebuffer. Run it interactively in a terminal with mouse support,
or render snapshots to PNG/BMP files.

Settings are read from kolibri.yaml in the project directory when present.`,
	Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(verbose, logJSON)
		if projectDir == "" {
			dir, err := config.FindProjectRoot()
			if err != nil {
				return fmt.Errorf("cannot determine project directory: %w", err)
			}
			projectDir = dir
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(runCmd, snapshotCmd, themeCmd)
}

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&projectDir, "dir", "C", "", "project directory containing kolibri.yaml (default: nearest go.mod)")
	fs.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVar(&logJSON, "log-json", false, "log as JSON instead of text")
}

func setupLogging(debug, asJSON bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if asJSON {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}
