// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// api.go - public entry-points for the builder package.
//
// One orchestrator: Build(wopts, bopts, cons...). It creates the workspace,
// resolves the config and runs constructors in order. Topology factories
// live in impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstep/workspace"
)

// Constructor appends one topology to w using the resolved builderConfig.
// Constructors validate parameters before touching w and return sentinel
// errors; they never panic.
type Constructor func(w *workspace.Workspace, cfg builderConfig) error

// Build creates a workspace with wopts, resolves bopts and applies every
// constructor in order. The first failure is wrapped as "Build: %w" and
// returned; the partially built workspace is discarded.
func Build(wopts []workspace.Option, bopts []BuilderOption, cons ...Constructor) (*workspace.Workspace, error) {
	w := workspace.New(wopts...)
	if err := Apply(w, bopts, cons...); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	return w, nil
}

// Apply runs cons against an existing workspace. New nodes get ids after the
// ones w already holds. On error, w keeps whatever was added before the
// failing constructor.
func Apply(w *workspace.Workspace, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(w, cfg); err != nil {
			return err
		}
	}
	return nil
}

// addNodes appends n nodes to w and returns the id of the first one.
func addNodes(w *workspace.Workspace, n int) int {
	first := w.NodeCount() + 1
	for i := 0; i < n; i++ {
		w.AddNode()
	}
	return first
}

// link adds one weighted edge, tagging failures with the method name.
func link(method string, w *workspace.Workspace, cfg builderConfig, from, to int) error {
	weight := cfg.weight()
	if err := w.AddEdge(from, to, weight); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}
	return nil
}
