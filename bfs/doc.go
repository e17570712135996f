// Package bfs provides breadth-first search over a core.Graph, returning
// hop counts, parent links and visit order.
//
// Weights are ignored: BFS answers "which nodes can the start reach at all,
// and in how many edges". The CLI uses it to warn about nodes a Dijkstra run
// will report as unreachable before the run starts.
//
// Determinism
//
//	core.Graph returns neighbors in insertion order and BFS enqueues them in
//	that order, so the visit sequence is reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 1)
//	if err != nil {
//		// ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation or an OnVisit error
//	}
//	missing := res.Unreached(g.NodeCount())
//
// Options
//
//   - WithContext(ctx):   cancellation.
//   - WithMaxDepth(d):    stop exploring beyond depth d (>0); 0 means no limit.
//   - WithOnVisit(fn):    hook during visit; returning an error aborts BFS.
package bfs
