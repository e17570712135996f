// Package workspace is the editing layer in front of the engine: it owns the
// edge log, validates user input before it reaches core.Graph, grows the
// graph by rebuilding it, and starts runs.
//
// core.Graph tolerates anything; a Workspace rejects what a learner most
// likely did by mistake (unknown nodes, self-loops, duplicate edges, running
// on an empty graph) with sentinel errors suitable for errors.Is.
package workspace

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/dijkstep/config"
	"github.com/katalvlaran/dijkstep/core"
	"github.com/katalvlaran/dijkstep/dijkstra"
	"github.com/katalvlaran/dijkstep/internal/logging"
	"github.com/katalvlaran/dijkstep/steps"
)

// Sentinel validation errors.
var (
	// ErrNodeNotFound indicates an edge endpoint outside 1..NodeCount().
	ErrNodeNotFound = errors.New("workspace: node does not exist")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("workspace: self-loop not allowed")

	// ErrDuplicateEdge indicates the edge was already added.
	ErrDuplicateEdge = errors.New("workspace: edge already exists")

	// ErrNoNodes indicates a run was requested on an empty graph.
	ErrNoNodes = errors.New("workspace: graph has no nodes")

	// ErrNoEdges indicates a run was requested on a graph without edges.
	ErrNoEdges = errors.New("workspace: graph has no edges")

	// ErrStartNotFound indicates a start node outside 1..NodeCount().
	ErrStartNotFound = errors.New("workspace: start node does not exist")
)

// Workspace holds the editable graph and its edge log.
// It is not safe for concurrent use.
type Workspace struct {
	directed bool
	edges    []core.Edge
	graph    *core.Graph
	logger   *slog.Logger
	runOpts  []dijkstra.Option
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithDirected makes every edge one-way.
func WithDirected(directed bool) Option {
	return func(w *Workspace) {
		w.directed = directed
	}
}

// WithLogger sets the logger used for edit and run events.
func WithLogger(l *slog.Logger) Option {
	return func(w *Workspace) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithRunOptions forwards options to every dijkstra.FindShortestPath call.
func WithRunOptions(opts ...dijkstra.Option) Option {
	return func(w *Workspace) {
		w.runOpts = append(w.runOpts, opts...)
	}
}

// New returns an empty workspace with zero nodes.
func New(opts ...Option) *Workspace {
	w := &Workspace{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(w)
	}
	w.graph = core.NewGraph(0, core.WithDirected(w.directed))
	return w
}

// FromDefinition builds a workspace from a definition, validating every edge.
func FromDefinition(def config.Definition, opts ...Option) (*Workspace, error) {
	w := New(append([]Option{WithDirected(def.Directed)}, opts...)...)
	if def.Nodes > 0 {
		w.rebuild(def.Nodes)
	}
	for i, e := range def.Edges {
		if err := w.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edge #%d: %w", i, err)
		}
	}
	return w, nil
}

// Definition exports the workspace together with a start node.
func (w *Workspace) Definition(start int) config.Definition {
	return config.Definition{
		Nodes:    w.graph.NodeCount(),
		Directed: w.directed,
		Start:    start,
		Edges:    w.Edges(),
	}
}

// NodeCount returns the current number of nodes.
func (w *Workspace) NodeCount() int {
	return w.graph.NodeCount()
}

// Directed reports whether edges are one-way.
func (w *Workspace) Directed() bool {
	return w.directed
}

// Graph returns the current graph. The pointer changes on every AddNode.
func (w *Workspace) Graph() *core.Graph {
	return w.graph
}

// Edges returns a copy of the edge log in insertion order.
func (w *Workspace) Edges() []core.Edge {
	out := make([]core.Edge, len(w.edges))
	copy(out, w.edges)
	return out
}

// AddNode grows the graph by one node and returns the new node id. The
// graph is rebuilt and every recorded edge is replayed unchanged.
func (w *Workspace) AddNode() int {
	n := w.graph.NodeCount() + 1
	w.rebuild(n)
	w.logger.Debug("node added", "node", n, "edges", len(w.edges))
	return n
}

// rebuild replaces the graph with an n-node graph and replays the edge log.
func (w *Workspace) rebuild(n int) {
	g := core.NewGraph(n, core.WithDirected(w.directed))
	for _, e := range w.edges {
		g.AddEdge(e.From, e.To, e.Weight)
	}
	w.graph = g
}

// AddEdge validates and records an edge.
//
// Errors:
//   - ErrNodeNotFound  if from or to is outside 1..NodeCount().
//   - ErrSelfLoop      if from == to.
//   - ErrDuplicateEdge if (from,to) was added before, or, on undirected
//     workspaces, (to,from).
//
// Weights are not validated; negative weights reach the engine as-is.
func (w *Workspace) AddEdge(from, to int, weight float64) error {
	if !w.graph.HasNode(from) || !w.graph.HasNode(to) {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrNodeNotFound)
	}
	if from == to {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrSelfLoop)
	}
	for _, e := range w.edges {
		if (e.From == from && e.To == to) || (!w.directed && e.From == to && e.To == from) {
			return fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrDuplicateEdge)
		}
	}

	w.graph.AddEdge(from, to, weight)
	w.edges = append(w.edges, core.Edge{From: from, To: to, Weight: weight})
	w.logger.Debug("edge added", "from", from, "to", to, "weight", weight)
	return nil
}

// validateRun checks the preconditions of Run and Analyze.
func (w *Workspace) validateRun(start int) error {
	switch {
	case w.graph.NodeCount() == 0:
		return ErrNoNodes
	case len(w.edges) == 0:
		return ErrNoEdges
	case !w.graph.HasNode(start):
		return fmt.Errorf("start=%d: %w", start, ErrStartNotFound)
	}
	return nil
}

// Run validates the workspace, runs the engine from start and returns the
// state drained to its final step.
func (w *Workspace) Run(start int) (*steps.State, error) {
	if err := w.validateRun(start); err != nil {
		return nil, err
	}
	st, err := dijkstra.FindShortestPath(w.graph, start, w.runOptions()...)
	if err != nil {
		return nil, err
	}
	st.Drain()
	w.logger.Info("run finished", "start", start, "steps", st.Len())
	return st, nil
}

// Analyze validates the workspace and returns an independent run rewound to
// its initialization step, ready for step-through replay.
func (w *Workspace) Analyze(start int) (*steps.State, error) {
	if err := w.validateRun(start); err != nil {
		return nil, err
	}
	st, err := dijkstra.FindShortestPath(w.graph, start, w.runOptions()...)
	if err != nil {
		return nil, err
	}
	st.Reset()
	return st, nil
}

func (w *Workspace) runOptions() []dijkstra.Option {
	return append([]dijkstra.Option{dijkstra.WithLogger(w.logger)}, w.runOpts...)
}
