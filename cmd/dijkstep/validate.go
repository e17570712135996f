package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstep/bfs"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check that a graph definition can be run",
	Long: `Checks that a definition can be run and lists the nodes the start node can
never reach; a run reports those as unreachable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, start, err := loadWorkspace(cmd, args)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		if _, err := ws.Analyze(start); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Graph is valid: %d nodes, %d edges, start %d\n",
			ws.NodeCount(), len(ws.Edges()), start)

		res, err := bfs.BFS(ws.Graph(), start, bfs.WithContext(cmd.Context()))
		if err != nil {
			return err
		}
		if missing := res.Unreached(ws.NodeCount()); len(missing) > 0 {
			fmt.Fprintf(out, "Unreachable from %d: %v\n", start, missing)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
