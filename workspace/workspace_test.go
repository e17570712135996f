package workspace_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstep/config"
	"github.com/katalvlaran/dijkstep/core"
	"github.com/katalvlaran/dijkstep/dijkstra"
	"github.com/katalvlaran/dijkstep/steps"
	"github.com/katalvlaran/dijkstep/workspace"
)

// withNodes returns an undirected workspace with n nodes.
func withNodes(t *testing.T, n int) *workspace.Workspace {
	t.Helper()
	w := workspace.New()
	for i := 0; i < n; i++ {
		w.AddNode()
	}
	return w
}

func TestAddNode_PreservesEdges(t *testing.T) {
	w := withNodes(t, 3)
	require.NoError(t, w.AddEdge(1, 2, 4))
	require.NoError(t, w.AddEdge(3, 2, 1.5))
	before := w.Graph()

	id := w.AddNode()
	assert.Equal(t, 4, id)
	assert.Equal(t, 4, w.NodeCount())
	assert.NotSame(t, before, w.Graph(), "growing rebuilds the graph")

	want := []core.Edge{{From: 1, To: 2, Weight: 4}, {From: 3, To: 2, Weight: 1.5}}
	if diff := cmp.Diff(want, w.Edges()); diff != "" {
		t.Errorf("edge log (-want +got):\n%s", diff)
	}
	for _, e := range want {
		got, ok := w.Graph().Weight(e.From, e.To)
		require.True(t, ok, "edge %d→%d lost on rebuild", e.From, e.To)
		assert.Equal(t, e.Weight, got)
		got, ok = w.Graph().Weight(e.To, e.From)
		require.True(t, ok, "mirror %d→%d lost on rebuild", e.To, e.From)
		assert.Equal(t, e.Weight, got)
	}
	nbrs, ok := w.Graph().Neighbors(4)
	assert.True(t, ok)
	assert.Empty(t, nbrs)
}

func TestAddEdge_Validation(t *testing.T) {
	w := withNodes(t, 2)

	assert.ErrorIs(t, w.AddEdge(1, 3, 1), workspace.ErrNodeNotFound)
	assert.ErrorIs(t, w.AddEdge(0, 1, 1), workspace.ErrNodeNotFound)
	assert.ErrorIs(t, w.AddEdge(2, 2, 1), workspace.ErrSelfLoop)

	require.NoError(t, w.AddEdge(1, 2, 1))
	assert.ErrorIs(t, w.AddEdge(1, 2, 5), workspace.ErrDuplicateEdge)
	assert.ErrorIs(t, w.AddEdge(2, 1, 5), workspace.ErrDuplicateEdge, "undirected reverse is the same edge")

	assert.Len(t, w.Edges(), 1, "rejected edges are not recorded")
	got, _ := w.Graph().Weight(1, 2)
	assert.Equal(t, 1.0, got)
}

func TestAddEdge_DirectedAllowsReverse(t *testing.T) {
	w := workspace.New(workspace.WithDirected(true))
	w.AddNode()
	w.AddNode()
	require.NoError(t, w.AddEdge(1, 2, 1))
	require.NoError(t, w.AddEdge(2, 1, 7))
	assert.True(t, w.Directed())
	assert.True(t, w.Graph().Directed())
}

func TestAddEdge_NegativeWeightAccepted(t *testing.T) {
	w := withNodes(t, 2)
	assert.NoError(t, w.AddEdge(1, 2, -3))
}

func TestRun_Validation(t *testing.T) {
	w := workspace.New()
	_, err := w.Run(1)
	assert.ErrorIs(t, err, workspace.ErrNoNodes)

	w.AddNode()
	w.AddNode()
	_, err = w.Analyze(1)
	assert.ErrorIs(t, err, workspace.ErrNoEdges)

	require.NoError(t, w.AddEdge(1, 2, 1))
	_, err = w.Run(3)
	assert.ErrorIs(t, err, workspace.ErrStartNotFound)
}

func TestRun_AndAnalyzeAreIndependent(t *testing.T) {
	w := withNodes(t, 3)
	require.NoError(t, w.AddEdge(1, 2, 4))
	require.NoError(t, w.AddEdge(2, 3, 1))
	require.NoError(t, w.AddEdge(1, 3, 10))

	final, err := w.Run(1)
	require.NoError(t, err)
	last, ok := final.Current()
	require.True(t, ok)
	assert.Equal(t, steps.KindDone, last.Kind)
	assert.Equal(t, map[int]float64{1: 0, 2: 4, 3: 5}, last.Distances)

	analysis, err := w.Analyze(1)
	require.NoError(t, err)
	first, _ := analysis.Current()
	assert.Equal(t, steps.KindInit, first.Kind)

	// Stepping the analysis must not move the final-result state.
	analysis.Next()
	analysis.Next()
	assert.True(t, final.Done())
	if diff := cmp.Diff(final.Steps(), analysis.Steps()); diff != "" {
		t.Errorf("runs over the same graph differ (-final +analysis):\n%s", diff)
	}
}

func TestRun_StrictWeightsForwarded(t *testing.T) {
	w := workspace.New(workspace.WithRunOptions(dijkstra.WithStrictWeights()))
	w.AddNode()
	w.AddNode()
	require.NoError(t, w.AddEdge(1, 2, -1))
	_, err := w.Run(1)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDefinition_RoundTrip(t *testing.T) {
	def := config.Definition{
		Nodes:    3,
		Directed: true,
		Start:    2,
		Edges:    []core.Edge{{From: 1, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 2}},
	}
	w, err := workspace.FromDefinition(def)
	require.NoError(t, err)
	if diff := cmp.Diff(def, w.Definition(2)); diff != "" {
		t.Errorf("definition (-want +got):\n%s", diff)
	}
}

func TestFromDefinition_RejectsInvalidEdge(t *testing.T) {
	_, err := workspace.FromDefinition(config.Definition{
		Nodes: 2,
		Edges: []core.Edge{{From: 1, To: 1, Weight: 1}},
	})
	assert.ErrorIs(t, err, workspace.ErrSelfLoop)
	assert.Contains(t, err.Error(), "edge #0")
}
