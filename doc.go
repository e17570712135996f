// Package dijkstep is a step-by-step Dijkstra teaching engine.
//
// It runs Dijkstra's single-source shortest-path algorithm on a small
// weighted graph with integer node ids 1..n and records every decision as an
// immutable snapshot: initialization, each node selection, each successful
// relaxation, each rejected relaxation, and a final summary. The recorded
// history can be stepped forwards and backwards, rewound, auto-played, or
// served to remote clients.
//
// Packages:
//
//	core/          fixed-size weighted graph with insertion-ordered adjacency
//	steps/         Step snapshots and the cursor-based State history
//	dijkstra/      the engine: FindShortestPath and the narration hooks
//	workspace/     validated editing surface (AddNode, AddEdge, Run, Analyze)
//	builder/       demo topologies (path, cycle, star, complete, grid, random)
//	config/        YAML/JSON graph definitions
//	bfs/           hop-count reachability, used to flag unreachable nodes
//	player/        timer-driven auto-play
//	render/        markdown and terminal presentation of steps
//	session/       persistent replay sessions (memory and Redis stores)
//	metrics/       Prometheus instrumentation
//	server/        JSON HTTP API over sessions
//	cmd/dijkstep/  the CLI
//
// Quick start:
//
//	ws := workspace.New()
//	for i := 0; i < 3; i++ {
//		ws.AddNode()
//	}
//	_ = ws.AddEdge(1, 2, 1)
//	_ = ws.AddEdge(2, 3, 2)
//	_ = ws.AddEdge(1, 3, 4)
//
//	st, _ := ws.Analyze(1)
//	for s, ok := st.Current(); ok; s, ok = st.Next() {
//		fmt.Println(s.Description)
//	}
package dijkstep
