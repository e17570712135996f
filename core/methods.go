// SPDX-License-Identifier: MIT
// File: methods.go
// Role: edge insertion and read-only queries over a Graph.
// Determinism:
//   - Neighbors() returns neighbors in first-insertion order.
// Concurrency:
//   - AddEdge takes the write lock; every query takes the read lock.

package core

// NodeCount returns the number of nodes n; valid ids are 1..n.
func (g *Graph) NodeCount() int {
	return g.n
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	return g.directed
}

// HasNode reports whether id lies in [1, NodeCount()].
func (g *Graph) HasNode(id int) bool {
	return id >= 1 && id <= g.n
}

// AddEdge inserts to↦weight into from's neighbor list. On undirected graphs
// the mirror from↦weight is inserted into to's list as well.
//
// No validation is performed: a side whose node id is out of range is
// silently dropped, and duplicates, self-loops and negative weights are
// stored as given. An existing (from,to) entry has its weight overwritten
// and keeps its original position.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.HasNode(from) {
		g.adj[from].set(to, weight)
	}
	if !g.directed && g.HasNode(to) {
		g.adj[to].set(from, weight)
	}
}

// Neighbors returns a copy of node's neighbor list in insertion order.
// The boolean is false when node is outside [1, NodeCount()].
//
// Complexity: O(deg(node)).
func (g *Graph) Neighbors(node int) ([]Neighbor, bool) {
	if !g.HasNode(node) {
		return nil, false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Neighbor, len(g.adj[node].list))
	copy(out, g.adj[node].list)

	return out, true
}

// Weight returns the weight of the from→to entry, if present.
func (g *Graph) Weight(from, to int) (float64, bool) {
	if !g.HasNode(from) {
		return 0, false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	a := g.adj[from]
	pos, ok := a.index[to]
	if !ok {
		return 0, false
	}

	return a.list[pos].Weight, true
}

// Degree returns the number of distinct neighbors of node (0 when absent).
func (g *Graph) Degree(node int) int {
	if !g.HasNode(node) {
		return 0
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[node].list)
}
