package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstep/internal/logging"
)

// logger is configured from --log-level before any command runs.
var logger = logging.NewNop()

var rootCmd = &cobra.Command{
	Use:   "dijkstep",
	Short: "dijkstep is a step-by-step Dijkstra teaching engine",
	Long: `dijkstep runs Dijkstra's shortest-path algorithm on a small weighted graph and
records every decision it makes, so the run can be replayed forwards and
backwards, auto-played, or served over HTTP.

Graphs come from a YAML/JSON definition file or from a --preset such as
path:5, cycle:6, star:5, complete:4, grid:3x3 or random:8:0.3.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("log-level")
		level, err := logging.ParseLevel(raw)
		if err != nil {
			return err
		}
		logger = logging.New(level)
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int("start", 0, "Start node (default: the definition's start, or 1)")
	rootCmd.PersistentFlags().String("preset", "", "Use a generated graph instead of a file (e.g. grid:3x3)")
	rootCmd.PersistentFlags().Bool("directed", false, "Treat edges as directed")
	rootCmd.PersistentFlags().Int64("seed", 1, "Seed for random presets and weights")
	rootCmd.PersistentFlags().String("weights", "", "Random integer weights for presets, as MIN:MAX (default: all 1)")
}
