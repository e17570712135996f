package dijkstra

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/dijkstep/core"
	"github.com/katalvlaran/dijkstep/steps"
)

// FindShortestPath runs Dijkstra from start over g and returns the fully
// populated step history. The cursor of the returned State rests on the
// final summary step.
//
// Returns:
//
//   - st:  every decision of the run, in order. Always holds at least the
//     init and the summary step.
//   - err: ErrNilGraph for a nil graph; ErrNegativeWeight (wrapped with the
//     offending edge) only when WithStrictWeights() is set.
//
// A start node outside [1, NodeCount()] is tolerated: nothing is reachable,
// and the run degenerates to the init and summary steps.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(S·V) for S steps
func FindShortestPath(g *core.Graph, start int, opts ...Option) (*steps.State, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Optional pre-scan for negative weights.
	if cfg.StrictWeight {
		if err := checkWeights(g); err != nil {
			return nil, err
		}
	}

	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		state:   steps.NewState(),
		dist:    make(map[int]float64, n),
		prev:    make(map[int]int, n),
		seen:    make(map[int]bool, n),
	}

	// 4) Initialize and run to completion.
	r.init(start)
	r.process()
	r.finish()

	cfg.Logger.Debug("dijkstra run complete",
		"start", start,
		"nodes", n,
		"steps", r.state.Len(),
	)

	return r.state, nil
}

// checkWeights fails on the first negative weight, scanning nodes in id order.
func checkWeights(g *core.Graph) error {
	for u := 1; u <= g.NodeCount(); u++ {
		nbrs, _ := g.Neighbors(u)
		for _, nb := range nbrs {
			if nb.Weight < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, nb.ID, nb.Weight)
			}
		}
	}
	return nil
}

// runner holds the mutable working sets of a single run. Every emitted step
// is copied out of these sets by steps.State.Add.
type runner struct {
	g       *core.Graph
	options Options
	state   *steps.State

	dist    map[int]float64 // node → best known distance
	prev    map[int]int     // node → predecessor on the best known path
	visited []int           // finalized nodes, in finalization order
	seen    map[int]bool    // membership index over visited
	queue   []int           // work-list in scan order
}

// distance returns dist[v], treating a missing entry as unreached.
func (r *runner) distance(v int) float64 {
	if d, ok := r.dist[v]; ok {
		return d
	}
	return steps.Infinity
}

// emit records one snapshot of the working sets.
func (r *runner) emit(kind steps.Kind, current, neighbor int, desc string) {
	r.state.Add(steps.Step{
		Kind:        kind,
		Current:     current,
		Neighbor:    neighbor,
		Visited:     r.visited,
		Frontier:    r.queue,
		Distances:   r.dist,
		Previous:    r.prev,
		Description: desc,
	})
	if r.options.Observer != nil {
		cur, _ := r.state.Current()
		r.options.Observer(cur)
	}
}

// init sets every node to ∞, the start node to 0, and seeds the work-list.
func (r *runner) init(start int) {
	for v := 1; v <= r.g.NodeCount(); v++ {
		r.dist[v] = steps.Infinity
	}
	if r.g.HasNode(start) {
		r.dist[start] = 0
		r.queue = append(r.queue, start)
	}

	r.emit(steps.KindInit, start, steps.NoNode, r.options.Narrator.Init(start))
}

// process drains the work-list, one selection per iteration.
func (r *runner) process() {
	for len(r.queue) > 0 {
		// 1) Scan the whole work-list; strict "<" keeps the first minimum.
		best := 0
		for i := 1; i < len(r.queue); i++ {
			if r.distance(r.queue[i]) < r.distance(r.queue[best]) {
				best = i
			}
		}

		// 2) Remove it preserving order, finalize it, narrate.
		u := r.queue[best]
		r.queue = slices.Delete(r.queue, best, best+1)
		r.visited = append(r.visited, u)
		r.seen[u] = true
		r.emit(steps.KindSelect, u, steps.NoNode, r.options.Narrator.Select(u, r.distance(u)))

		// 3) Relax every neighbor that is not finalized yet.
		r.relax(u)
	}
}

// relax examines each neighbor of u in insertion order.
func (r *runner) relax(u int) {
	nbrs, ok := r.g.Neighbors(u)
	if !ok {
		return
	}

	du := r.distance(u)
	for _, nb := range nbrs {
		v := nb.ID
		if r.seen[v] {
			continue
		}

		current := r.distance(v)
		candidate := du + nb.Weight
		if candidate < current {
			r.dist[v] = candidate
			r.prev[v] = u
			if !slices.Contains(r.queue, v) {
				r.queue = append(r.queue, v)
			}
			r.emit(steps.KindRelax, u, v, r.options.Narrator.Relax(u, v, current, candidate))
			continue
		}

		r.emit(steps.KindKeep, u, v, r.options.Narrator.Keep(u, v, current, candidate))
	}
}

// finish emits the summary step: nodes 1..n, then any out-of-range ids that
// were reached through dangling edges, ascending.
func (r *runner) finish() {
	n := r.g.NodeCount()
	nodes := make([]int, 0, len(r.dist))
	for v := 1; v <= n; v++ {
		nodes = append(nodes, v)
	}
	var extra []int
	for v := range r.dist {
		if !r.g.HasNode(v) {
			extra = append(extra, v)
		}
	}
	sort.Ints(extra)
	nodes = append(nodes, extra...)

	r.emit(steps.KindDone, steps.NoNode, steps.NoNode, r.options.Narrator.Summary(nodes, r.dist))
}
