// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Erdős–Rényi-like generator: each admissible pair (see eachPair) is kept
// independently with probability p. The trial order is fixed, so a fixed seed
// yields a fixed edge set. Weights are drawn from the same RNG right after
// the trial that kept the edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstep/workspace"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n new
// nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(w *workspace.Workspace, cfg builderConfig) error {
		// 1) Validate before adding anything.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required for true sampling; p ∈ {0,1} is deterministic.
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Add nodes, then run one Bernoulli trial per admissible pair.
		first := addNodes(w, n)

		return eachPair(w.Directed(), first, n, func(u, v int) error {
			if !keep(cfg, p) {
				return nil
			}
			return link(methodRandomSparse, w, cfg, u, v)
		})
	}
}

// keep performs one Bernoulli trial. Float64 is in [0,1), so p=1 always keeps
// and p=0 never does.
func keep(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
