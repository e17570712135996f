package builder_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstep/builder"
	"github.com/katalvlaran/dijkstep/core"
	"github.com/katalvlaran/dijkstep/workspace"
)

// ---------------------------------------------------------------------
// Topologies
// ---------------------------------------------------------------------

func TestBuild_Topologies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		directed  bool
		ctor      builder.Constructor
		wantNodes int
		wantEdges int
	}{
		{"Path4", false, builder.Path(4), 4, 3},
		{"Cycle5", false, builder.Cycle(5), 5, 5},
		{"Star6", false, builder.Star(6), 6, 5},
		{"Complete4", false, builder.Complete(4), 4, 6},
		{"Complete4Directed", true, builder.Complete(4), 4, 12},
		{"Complete1", false, builder.Complete(1), 1, 0},
		{"Grid2x3", false, builder.Grid(2, 3), 6, 7},
		{"Grid1x1", false, builder.Grid(1, 1), 1, 0},
		{"RandomFull", false, builder.RandomSparse(4, 1), 4, 6},
		{"RandomEmpty", true, builder.RandomSparse(4, 0), 4, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ws, err := builder.Build(
				[]workspace.Option{workspace.WithDirected(tc.directed)},
				nil,
				tc.ctor,
			)
			require.NoError(t, err)
			assert.Equal(t, tc.wantNodes, ws.NodeCount())
			assert.Len(t, ws.Edges(), tc.wantEdges)
			for _, e := range ws.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
		})
	}
}

func TestPath_EdgeOrder(t *testing.T) {
	ws, err := builder.Build(nil, []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(2.5))}, builder.Path(3))
	require.NoError(t, err)

	want := []core.Edge{
		{From: 1, To: 2, Weight: 2.5},
		{From: 2, To: 3, Weight: 2.5},
	}
	if diff := cmp.Diff(want, ws.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestCycle_ClosesLoop(t *testing.T) {
	ws, err := builder.Build(nil, nil, builder.Cycle(3))
	require.NoError(t, err)

	edges := ws.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, core.Edge{From: 3, To: 1, Weight: 1}, edges[2])
}

func TestStar_CenterIsFirstNode(t *testing.T) {
	ws, err := builder.Build([]workspace.Option{workspace.WithDirected(true)}, nil, builder.Star(4))
	require.NoError(t, err)

	nbrs, ok := ws.Graph().Neighbors(1)
	require.True(t, ok)
	assert.Len(t, nbrs, 3)
	for leaf := 2; leaf <= 4; leaf++ {
		out, _ := ws.Graph().Neighbors(leaf)
		assert.Empty(t, out, "directed leaves have no outgoing edges")
	}
}

func TestGrid_RowMajorNumbering(t *testing.T) {
	ws, err := builder.Build(nil, nil, builder.Grid(2, 2))
	require.NoError(t, err)

	want := []core.Edge{
		{From: 1, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 1},
		{From: 2, To: 4, Weight: 1},
		{From: 3, To: 4, Weight: 1},
	}
	if diff := cmp.Diff(want, ws.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------
// Composition
// ---------------------------------------------------------------------

func TestBuild_ComposesWithOffsets(t *testing.T) {
	ws, err := builder.Build(nil, nil, builder.Path(3), builder.Path(2))
	require.NoError(t, err)

	assert.Equal(t, 5, ws.NodeCount())
	edges := ws.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, 4, edges[2].From)
	assert.Equal(t, 5, edges[2].To)
}

func TestApply_ExistingWorkspace(t *testing.T) {
	ws := workspace.New()
	ws.AddNode()
	require.NoError(t, builder.Apply(ws, nil, builder.Star(3)))

	assert.Equal(t, 4, ws.NodeCount())
	nbrs, ok := ws.Graph().Neighbors(2)
	require.True(t, ok)
	assert.Len(t, nbrs, 2)
}

func TestBuild_NilConstructor(t *testing.T) {
	_, err := builder.Build(nil, nil, builder.Path(2), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

// ---------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------

func TestConstructors_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"PathTooShort", builder.Path(1), builder.ErrTooFewVertices},
		{"CycleTooShort", builder.Cycle(2), builder.ErrTooFewVertices},
		{"StarTooShort", builder.Star(1), builder.ErrTooFewVertices},
		{"CompleteEmpty", builder.Complete(0), builder.ErrTooFewVertices},
		{"GridZeroRows", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomZero", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomNegativeP", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomPAboveOne", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomNoRNG", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.Build(nil, nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.UniformIntWeightFn(5, 1) })
}

// ---------------------------------------------------------------------
// Determinism
// ---------------------------------------------------------------------

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() []core.Edge {
		ws, err := builder.Build(
			nil,
			[]builder.BuilderOption{
				builder.WithSeed(42),
				builder.WithWeightFn(builder.UniformIntWeightFn(1, 9)),
			},
			builder.RandomSparse(8, 0.4),
		)
		require.NoError(t, err)
		return ws.Edges()
	}

	first, second := build(), build()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed produced different graphs (-first +second):\n%s", diff)
	}
	for _, e := range first {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
		assert.Less(t, e.From, e.To, "undirected trials only visit i<j")
	}
}

func TestUniformIntWeightFn(t *testing.T) {
	fn := builder.UniformIntWeightFn(3, 3)
	assert.Equal(t, 3.0, fn(rand.New(rand.NewSource(1))))
	assert.Equal(t, 3.0, builder.UniformIntWeightFn(3, 7)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, -2.0, builder.ConstantWeightFn(-2)(nil))
}

// ---------------------------------------------------------------------
// Presets
// ---------------------------------------------------------------------

func TestPreset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		wantNodes int
		wantEdges int
	}{
		{"path:5", 5, 4},
		{"cycle:4", 4, 4},
		{"star:3", 3, 2},
		{"complete:3", 3, 3},
		{"grid:3x3", 9, 12},
		{" GRID:1x2 ", 2, 1},
		{"random:6:1", 6, 15},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctor, err := builder.Preset(tc.name)
			require.NoError(t, err)

			ws, err := builder.Build(nil, []builder.BuilderOption{builder.WithSeed(1)}, ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantNodes, ws.NodeCount())
			assert.Len(t, ws.Edges(), tc.wantEdges)
		})
	}
}

func TestPreset_Unknown(t *testing.T) {
	for _, name := range []string{"", "tree:4", "path:x", "grid:3", "grid:ax2", "random:5", "random:5:p"} {
		_, err := builder.Preset(name)
		assert.ErrorIs(t, err, builder.ErrUnknownPreset, name)
	}
}
