// Package core provides the small fixed-size weighted graph consumed by the
// stepwise Dijkstra engine.
//
// A Graph G = (V,E) is created with a fixed node count n; nodes are the
// integers 1..n and never change after construction. Edges carry arbitrary
// float64 weights and may be directed or undirected (WithDirected):
//
//   - Undirected graphs mirror every AddEdge(u,v,w) as v→u with the same weight.
//   - Adjacency is stored per node as an ordered neighbor list plus an index,
//     so Neighbors() reports neighbors in the order they were first inserted.
//     Re-adding an existing (from,to) pair overwrites the weight in place.
//   - A single sync.RWMutex guards adjacency; readers never block each other.
//
// Tolerance policy:
//
//	The graph performs NO validation. Ids outside [1,n] are silently dropped
//	by AddEdge and reported as absent by Neighbors/Weight. Duplicate edges,
//	self-loops and negative weights are accepted as-is. Callers that need
//	rejection semantics use the workspace package, which validates input
//	before it reaches the graph.
//
// Growing the node set means building a new Graph and replaying the edge log;
// see workspace.Workspace.AddNode.
//
// Quick example:
//
//	g := core.NewGraph(3)
//	g.AddEdge(1, 2, 4)
//	g.AddEdge(2, 3, 1)
//	nbrs, ok := g.Neighbors(2) // [{1 4} {3 1}], true
//
// Complexity:
//
//	NewGraph O(n), AddEdge O(1) amortized, Neighbors O(deg).
package core
