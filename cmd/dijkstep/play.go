package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstep/player"
	"github.com/katalvlaran/dijkstep/steps"
)

var playCmd = &cobra.Command{
	Use:   "play [file]",
	Short: "Auto-play the run at a fixed interval",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, _ := cmd.Flags().GetDuration("interval")

		ws, start, err := loadWorkspace(cmd, args)
		if err != nil {
			return err
		}
		st, err := ws.Analyze(start)
		if err != nil {
			return err
		}
		p, err := newPrinter(cmd, ws.NodeCount())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		first, _ := st.Current()
		if err := p.print(first); err != nil {
			return err
		}

		var printErr error
		played, err := player.Play(ctx, st, interval, func(s steps.Step) {
			if printErr == nil {
				printErr = p.print(s)
			}
		})
		if printErr != nil {
			return printErr
		}
		if errors.Is(err, context.Canceled) {
			fmt.Fprintf(cmd.OutOrStdout(), "\nStopped after %d of %d steps.\n", played+1, st.Len())
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Duration("interval", 500*time.Millisecond, "Delay between steps")
}
