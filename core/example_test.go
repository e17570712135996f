package core_test

import (
	"fmt"

	"github.com/katalvlaran/dijkstep/core"
)

// ExampleGraph_Neighbors shows the mirrored adjacency of an undirected triangle.
func ExampleGraph_Neighbors() {
	g := core.NewGraph(3)
	g.AddEdge(1, 2, 4)
	g.AddEdge(2, 3, 1)
	g.AddEdge(1, 3, 10)

	nbrs, _ := g.Neighbors(3)
	for _, nb := range nbrs {
		fmt.Printf("3 -> %d (w=%g)\n", nb.ID, nb.Weight)
	}
	// Output:
	// 3 -> 2 (w=1)
	// 3 -> 1 (w=10)
}
