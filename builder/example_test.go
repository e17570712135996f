package builder_test

import (
	"fmt"

	"github.com/katalvlaran/dijkstep/builder"
)

// ExampleBuild assembles a 2×3 grid and runs Dijkstra from the top-left cell.
func ExampleBuild() {
	ws, err := builder.Build(nil, nil, builder.Grid(2, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	st, err := ws.Run(1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	last, _ := st.Current()
	fmt.Println(last.Distance(6))
	// Output: 3
}
