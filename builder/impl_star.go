// SPDX-License-Identifier: MIT
// Package: dijkstep/builder

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstep/workspace"
)

const (
	methodStar      = "Star"
	minStarVertices = 2
)

// Star returns a Constructor that appends a center node and n-1 leaves.
// The center is the first new node; edges run center→leaf in id order.
func Star(n int) Constructor {
	return func(w *workspace.Workspace, cfg builderConfig) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		center := addNodes(w, n)

		for leaf := center + 1; leaf < center+n; leaf++ {
			if err := link(methodStar, w, cfg, center, leaf); err != nil {
				return err
			}
		}
		return nil
	}
}
