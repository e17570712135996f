// SPDX-License-Identifier: MIT
// Package: dijkstep/builder

// Package builder assembles demo topologies inside a workspace.
//
// Every topology is a Constructor: a closure that appends fresh nodes to a
// *workspace.Workspace through AddNode and wires them through AddEdge, so the
// usual workspace validation (self-loops, duplicates) still applies. Node ids
// are allocated after whatever the workspace already holds, which makes
// constructors composable:
//
//	ws, err := builder.Build(
//		nil,
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Path(4),
//		builder.RandomSparse(5, 0.4),
//	)
//
// Topologies:
//
//   - Path(n)            n ≥ 2, edges i→i+1
//   - Cycle(n)           n ≥ 3, Path plus n→1
//   - Star(n)            n ≥ 2, center is the first new node
//   - Complete(n)        n ≥ 1, every pair (ordered pairs when directed)
//   - Grid(rows, cols)   rows, cols ≥ 1, row-major ids, right then down edges
//   - RandomSparse(n, p) n ≥ 1, each admissible pair with probability p
//
// Determinism: for a fixed seed, options and constructor order, Build always
// produces the same workspace. Stochastic constructors require WithSeed or
// WithRand unless p ∈ {0, 1}.
//
// Preset parses the compact names accepted by the CLI ("path:5", "grid:3x3",
// "random:8:0.3") into a Constructor.
package builder
