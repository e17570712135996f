// Package dijkstra runs Dijkstra's single-source shortest-path algorithm and
// narrates every decision it makes as a replayable step.
//
// Overview:
//
//   - FindShortestPath consumes a *core.Graph and a start node and returns a
//     *steps.State holding the complete, ordered history of the run. The run
//     is eager: every step exists before the caller looks at the first one.
//   - The cursor of the returned State rests on the final summary step. Call
//     Reset to replay from the initialization step.
//   - Every decision point is recorded, including the ones that change
//     nothing: selecting a node, improving a neighbor (relax), and checking a
//     neighbor whose distance is already optimal (keep).
//
// Algorithm (list-scan variant):
//
//	dist[v] = ∞ for v in 1..n, dist[start] = 0, work-list = [start]
//	emit init
//	while work-list not empty:
//	    u = first entry with minimum dist (scan order, first occurrence wins)
//	    remove u, mark visited, emit select
//	    for (v, w) in Neighbors(u) in insertion order, v not visited:
//	        if dist[u]+w < dist[v]: update dist/prev, enqueue v, emit relax
//	        else:                   emit keep
//	emit done (per-node final distance or "unreachable")
//
// Complexity:
//
//   - Time:  O(V² + E): each selection scans the whole work-list.
//   - Space: O(S·V) for S recorded steps, since every step is a full snapshot.
//
// The work-list is a plain slice on purpose: the scan order defines the
// tie-break, and the narration has to be reproducible run after run.
//
// Weights:
//
//	Negative weights are accepted by default and produce an unspecified
//	(possibly wrong) result, as with any Dijkstra without a pre-check.
//	WithStrictWeights() opts into a fast O(E) pre-scan that fails with
//	ErrNegativeWeight instead.
//
// Options:
//
//   - WithLogger(l):        structured debug record per run.
//   - WithNarrator(n):      replace the English step descriptions.
//   - WithObserver(fn):     called with a copy of every step as it is recorded.
//   - WithStrictWeights():  reject negative edge weights.
//
// Example:
//
//	g := core.NewGraph(3)
//	g.AddEdge(1, 2, 4)
//	g.AddEdge(2, 3, 1)
//	g.AddEdge(1, 3, 10)
//	st, _ := dijkstra.FindShortestPath(g, 1)
//	final, _ := st.Current()  // summary: {1:0, 2:4, 3:5}
//	st.Reset()                // replay from the init step
package dijkstra
