package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/dijkstep/steps"
)

const replayPrompt = "[n]ext [p]revious [r]eset [q]uit > "

var stepCmd = &cobra.Command{
	Use:   "step [file]",
	Short: "Replay the run interactively from stdin",
	Long: `Replays the run one step at a time. Commands are read line by line from stdin:
n (or an empty line) moves forward, p moves back, r rewinds, q quits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		return replay(cmd.InOrStdin(), cmd.OutOrStdout(), st, p.print, interactive)
	},
}

func init() {
	rootCmd.AddCommand(stepCmd)
}

// replay drives st from line commands read from in until q or EOF.
// The prompt is written only when prompt is set.
func replay(in io.Reader, out io.Writer, st *steps.State, show func(steps.Step) error, prompt bool) error {
	cur, ok := st.Current()
	if !ok {
		return nil
	}
	if err := show(cur); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, replayPrompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		var (
			next steps.Step
			ok   bool
		)
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "", "n", "next":
			if next, ok = st.Next(); !ok {
				fmt.Fprintln(out, "Already at the final step.")
				continue
			}
		case "p", "prev", "previous":
			if next, ok = st.Previous(); !ok {
				fmt.Fprintln(out, "Already at the first step.")
				continue
			}
		case "r", "reset":
			st.Reset()
			next, _ = st.Current()
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Fprintln(out, "Unknown command. Use n, p, r or q.")
			continue
		}

		if err := show(next); err != nil {
			return err
		}
	}
}
