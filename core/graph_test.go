package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dijkstep/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Undirected by default; individual tests may override
	s.g = core.NewGraph(3)
}

func (s *GraphSuite) TestConstructAllocatesEveryNode() {
	require := require.New(s.T())
	require.Equal(3, s.g.NodeCount())
	require.False(s.g.Directed())

	for id := 1; id <= 3; id++ {
		nbrs, ok := s.g.Neighbors(id)
		require.True(ok, "node %d must have an adjacency entry", id)
		require.Empty(nbrs)
	}
}

func (s *GraphSuite) TestNegativeCountClampsToZero() {
	g := core.NewGraph(-4)
	s.Require().Equal(0, g.NodeCount())
	_, ok := g.Neighbors(1)
	s.Require().False(ok)
}

func (s *GraphSuite) TestUndirectedEdgeIsMirrored() {
	require := require.New(s.T())
	s.g.AddEdge(1, 2, 4)

	w, ok := s.g.Weight(1, 2)
	require.True(ok)
	require.Equal(4.0, w)
	w, ok = s.g.Weight(2, 1)
	require.True(ok, "mirror edge 2→1 expected in undirected graph")
	require.Equal(4.0, w)
}

func (s *GraphSuite) TestDirectedEdgeIsOneWay() {
	require := require.New(s.T())
	g := core.NewGraph(2, core.WithDirected(true))
	require.True(g.Directed())
	g.AddEdge(1, 2, 7)

	_, ok := g.Weight(1, 2)
	require.True(ok)
	_, ok = g.Weight(2, 1)
	require.False(ok, "directed graph must not mirror")
	require.Equal(0, g.Degree(2))
}

func (s *GraphSuite) TestNeighborsKeepInsertionOrder() {
	require := require.New(s.T())
	g := core.NewGraph(4)
	g.AddEdge(1, 4, 1)
	g.AddEdge(1, 2, 2)
	g.AddEdge(1, 3, 3)
	// Overwrite keeps the original position.
	g.AddEdge(1, 4, 9)

	nbrs, ok := g.Neighbors(1)
	require.True(ok)
	require.Equal([]core.Neighbor{{ID: 4, Weight: 9}, {ID: 2, Weight: 2}, {ID: 3, Weight: 3}}, nbrs)
}

func (s *GraphSuite) TestNeighborsReturnsCopy() {
	s.g.AddEdge(1, 2, 5)
	nbrs, _ := s.g.Neighbors(1)
	nbrs[0].Weight = 100

	w, _ := s.g.Weight(1, 2)
	s.Require().Equal(5.0, w, "mutating the returned slice must not touch the graph")
}

func (s *GraphSuite) TestOutOfRangeIdsAreTolerated() {
	require := require.New(s.T())
	_, ok := s.g.Neighbors(0)
	require.False(ok)
	_, ok = s.g.Neighbors(4)
	require.False(ok)
	require.False(s.g.HasNode(-1))

	// Both sides out of range: silent no-op.
	s.g.AddEdge(7, 9, 1)
	// One side in range: only the existing adjacency entry is written.
	s.g.AddEdge(9, 1, 2)
	w, ok := s.g.Weight(1, 9)
	require.True(ok)
	require.Equal(2.0, w)
	_, ok = s.g.Weight(9, 1)
	require.False(ok)
	require.Equal(0, s.g.Degree(9))
}

func (s *GraphSuite) TestSelfLoopAndNegativeWeightAccepted() {
	require := require.New(s.T())
	s.g.AddEdge(2, 2, -3)
	w, ok := s.g.Weight(2, 2)
	require.True(ok)
	require.Equal(-3.0, w)
	require.Equal(1, s.g.Degree(2))
}

func (s *GraphSuite) TestConcurrentReaders() {
	g := core.NewGraph(50)
	for i := 1; i < 50; i++ {
		g.AddEdge(i, i+1, float64(i))
	}

	var wg sync.WaitGroup
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := 1; id <= 50; id++ {
				_, _ = g.Neighbors(id)
			}
		}()
	}
	wg.Wait()
	s.Require().Equal(2, g.Degree(25))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
