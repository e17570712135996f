// SPDX-License-Identifier: MIT
// Package core defines the fixed-size weighted Graph, its Edge and Neighbor
// records, and the GraphOption constructors.

package core

import "sync"

// Edge is one recorded AddEdge call. It is the unit replayed when a graph is
// rebuilt with a larger node count.
type Edge struct {
	// From is the source node id.
	From int `json:"from" yaml:"from" mapstructure:"from"`

	// To is the destination node id.
	To int `json:"to" yaml:"to" mapstructure:"to"`

	// Weight is the cost of traversing the edge.
	Weight float64 `json:"weight" yaml:"weight" mapstructure:"weight"`
}

// Neighbor is a single entry of a node's adjacency list.
type Neighbor struct {
	ID     int     // neighbor node id
	Weight float64 // weight of the edge leading to ID
}

// GraphOption configures a Graph before its adjacency is allocated.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// adjacency holds one node's neighbors in insertion order.
// index maps neighbor id → position in list.
type adjacency struct {
	list  []Neighbor
	index map[int]int
}

// set inserts or overwrites to↦weight, keeping first-insertion order.
func (a *adjacency) set(to int, weight float64) {
	if pos, ok := a.index[to]; ok {
		a.list[pos].Weight = weight
		return
	}
	a.index[to] = len(a.list)
	a.list = append(a.list, Neighbor{ID: to, Weight: weight})
}

// Graph is a weighted graph over the node ids 1..n.
//
// Invariant: adj has an entry (possibly empty) for every id in [1, n],
// and for no other id.
type Graph struct {
	mu sync.RWMutex // guards adj

	n        int  // node count, immutable after NewGraph
	directed bool // mirror edges when false

	// adj[id] for id in 1..n; index 0 is unused.
	adj []adjacency
}

// NewGraph allocates a graph with nodeCount nodes identified 1..nodeCount.
// Negative counts are treated as zero. By default the graph is undirected.
//
// Complexity: O(n).
func NewGraph(nodeCount int, opts ...GraphOption) *Graph {
	if nodeCount < 0 {
		nodeCount = 0
	}
	g := &Graph{n: nodeCount}
	for _, opt := range opts {
		opt(g)
	}

	g.adj = make([]adjacency, nodeCount+1)
	for id := 1; id <= nodeCount; id++ {
		g.adj[id] = adjacency{index: make(map[int]int)}
	}

	return g
}
