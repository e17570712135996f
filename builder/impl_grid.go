// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Nodes are numbered row-major: cell (r,c) is first + r*cols + c.
// Edge order: for each cell, Right then Down when present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstep/workspace"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(w *workspace.Workspace, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		first := addNodes(w, rows*cols)
		cell := func(r, c int) int { return first + r*cols + c }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(methodGrid, w, cfg, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(methodGrid, w, cfg, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
