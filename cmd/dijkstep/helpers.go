package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstep/builder"
	"github.com/katalvlaran/dijkstep/config"
	"github.com/katalvlaran/dijkstep/render"
	"github.com/katalvlaran/dijkstep/steps"
	"github.com/katalvlaran/dijkstep/workspace"
)

var errNoGraph = errors.New("a definition file or --preset is required")

// loadDefinition resolves the graph of a command from its file argument or
// from --preset, applying --directed and --start overrides.
func loadDefinition(cmd *cobra.Command, args []string) (config.Definition, error) {
	flags := cmd.Flags()
	preset, _ := flags.GetString("preset")
	directed, _ := flags.GetBool("directed")
	start, _ := flags.GetInt("start")

	var def config.Definition
	switch {
	case preset != "":
		ws, err := buildPreset(cmd, preset, directed)
		if err != nil {
			return config.Definition{}, err
		}
		def = ws.Definition(1)

	case len(args) > 0:
		loaded, err := config.Load(args[0])
		if err != nil {
			return config.Definition{}, err
		}
		def = loaded
		if flags.Changed("directed") {
			def.Directed = directed
		}

	default:
		return config.Definition{}, errNoGraph
	}

	if flags.Changed("start") {
		def.Start = start
	}
	return def, nil
}

// buildPreset runs a builder preset with the --seed and --weights flags.
func buildPreset(cmd *cobra.Command, name string, directed bool) (*workspace.Workspace, error) {
	ctor, err := builder.Preset(name)
	if err != nil {
		return nil, err
	}

	seed, _ := cmd.Flags().GetInt64("seed")
	bopts := []builder.BuilderOption{builder.WithSeed(seed)}

	weights, _ := cmd.Flags().GetString("weights")
	if weights != "" {
		lo, hi, err := parseRange(weights)
		if err != nil {
			return nil, err
		}
		bopts = append(bopts, builder.WithWeightFn(builder.UniformIntWeightFn(lo, hi)))
	}

	return builder.Build(
		[]workspace.Option{workspace.WithDirected(directed), workspace.WithLogger(logger)},
		bopts,
		ctor,
	)
}

// parseRange parses "MIN:MAX" with MIN ≤ MAX.
func parseRange(s string) (int, int, error) {
	los, his, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --weights %q: want MIN:MAX", s)
	}
	lo, err := strconv.Atoi(los)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --weights %q: %w", s, err)
	}
	hi, err := strconv.Atoi(his)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --weights %q: %w", s, err)
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("invalid --weights %q: max < min", s)
	}
	return lo, hi, nil
}

// loadWorkspace is loadDefinition followed by validation into a workspace.
func loadWorkspace(cmd *cobra.Command, args []string) (*workspace.Workspace, int, error) {
	def, err := loadDefinition(cmd, args)
	if err != nil {
		return nil, 0, err
	}
	ws, err := workspace.FromDefinition(def, workspace.WithLogger(logger))
	if err != nil {
		return nil, 0, err
	}
	return ws, def.Start, nil
}

// printer writes rendered steps to a command's output.
type printer struct {
	out   io.Writer
	term  *render.Terminal
	nodes int
}

func newPrinter(cmd *cobra.Command, nodes int) (*printer, error) {
	term, err := render.NewTerminal()
	if err != nil {
		return nil, err
	}
	return &printer{out: cmd.OutOrStdout(), term: term, nodes: nodes}, nil
}

func (p *printer) print(s steps.Step) error {
	text, err := p.term.Render(s, p.nodes)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(p.out, text)
	return err
}
