// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach method context via %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was run without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the workspace rejected a node or an edge
// while a topology was being assembled, or that a nil constructor was passed.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownPreset indicates a preset name Preset cannot parse.
var ErrUnknownPreset = errors.New("builder: unknown preset")
