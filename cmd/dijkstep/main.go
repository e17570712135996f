// Command dijkstep replays Dijkstra's algorithm one decision at a time.
//
//	dijkstep run graph.yaml --target 4
//	dijkstep step --preset grid:3x3
//	dijkstep play graph.json --interval 300ms
//	dijkstep serve --addr :8080 --redis localhost:6379 --ttl 1h
//	dijkstep validate graph.yaml
package main

func main() {
	Execute()
}
