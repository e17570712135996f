package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstep/render"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run Dijkstra to completion and print the final step",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, start, err := loadWorkspace(cmd, args)
		if err != nil {
			return err
		}
		st, err := ws.Run(start)
		if err != nil {
			return err
		}

		p, err := newPrinter(cmd, ws.NodeCount())
		if err != nil {
			return err
		}
		last, _ := st.Current()
		if err := p.print(last); err != nil {
			return err
		}

		if target, _ := cmd.Flags().GetInt("target"); target > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Path to %d: %s\n", target, render.Path(last, target))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int("target", 0, "Also print the shortest path to this node")
}
