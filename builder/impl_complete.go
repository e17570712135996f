// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// impl_complete.go - Complete(n).
//
// Undirected: one edge per unordered pair {i,j}, i<j, emitted i asc, j asc.
// Directed: every ordered pair (i,j), i≠j, same order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstep/workspace"
)

const (
	methodComplete      = "Complete"
	minCompleteVertices = 1
)

// Complete returns a Constructor that appends K_n.
func Complete(n int) Constructor {
	return func(w *workspace.Workspace, cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		first := addNodes(w, n)

		return eachPair(w.Directed(), first, n, func(u, v int) error {
			return link(methodComplete, w, cfg, u, v)
		})
	}
}

// eachPair visits the admissible pairs over [first, first+n) in a stable
// order: ordered pairs without self-loops when directed, i<j otherwise.
func eachPair(directed bool, first, n int, fn func(u, v int) error) error {
	for i := 0; i < n; i++ {
		j := i + 1
		if directed {
			j = 0
		}
		for ; j < n; j++ {
			if i == j {
				continue
			}
			if err := fn(first+i, first+j); err != nil {
				return err
			}
		}
	}
	return nil
}
