// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Edge order: i→i+1 for i ascending; Cycle closes with last→first.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstep/workspace"
)

const (
	methodPath      = "Path"
	methodCycle     = "Cycle"
	minPathVertices = 2
	minCycleVertex  = 3
)

// Path returns a Constructor that appends a simple path over n new nodes.
func Path(n int) Constructor {
	return func(w *workspace.Workspace, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		first := addNodes(w, n)

		return chain(methodPath, w, cfg, first, n)
	}
}

// Cycle returns a Constructor that appends a simple cycle over n new nodes.
func Cycle(n int) Constructor {
	return func(w *workspace.Workspace, cfg builderConfig) error {
		if n < minCycleVertex {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertex, ErrTooFewVertices)
		}
		first := addNodes(w, n)

		if err := chain(methodCycle, w, cfg, first, n); err != nil {
			return err
		}
		return link(methodCycle, w, cfg, first+n-1, first)
	}
}

// chain links first, first+1, ..., first+n-1 in order.
func chain(method string, w *workspace.Workspace, cfg builderConfig, first, n int) error {
	for i := 0; i < n-1; i++ {
		if err := link(method, w, cfg, first+i, first+i+1); err != nil {
			return err
		}
	}
	return nil
}
