package dijkstra

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dijkstep/steps"
)

// Narrator turns each decision of a run into the Step description.
type Narrator interface {
	// Init describes the starting condition.
	Init(start int) string
	// Select describes node being taken from the work-list with distance d.
	Select(node int, d float64) string
	// Relax describes an improvement of to's distance through from.
	Relax(from, to int, before, after float64) string
	// Keep describes a neighbor whose distance is already optimal.
	Keep(from, to int, current, candidate float64) string
	// Summary lists the final distance of every node in order.
	Summary(nodes []int, dist map[int]float64) string
}

// EnglishNarrator is the default Narrator.
type EnglishNarrator struct{}

func (EnglishNarrator) Init(start int) string {
	return fmt.Sprintf("Initialize: set the distance of start node %d to 0 and every other node to ∞", start)
}

func (EnglishNarrator) Select(node int, d float64) string {
	return fmt.Sprintf("Select node %d (distance %s), the closest node in the work-list, for processing",
		node, steps.FormatDistance(d))
}

func (EnglishNarrator) Relax(from, to int, before, after float64) string {
	return fmt.Sprintf("Update node %d through node %d: distance %s → %s",
		to, from, steps.FormatDistance(before), steps.FormatDistance(after))
}

func (EnglishNarrator) Keep(from, to int, current, candidate float64) string {
	return fmt.Sprintf("Check node %d: current distance %s is already optimal (via node %d it would be %s)",
		to, steps.FormatDistance(current), from, steps.FormatDistance(candidate))
}

func (EnglishNarrator) Summary(nodes []int, dist map[int]float64) string {
	var b strings.Builder
	b.WriteString("Algorithm complete.\nFinal results:\n")
	for _, id := range nodes {
		d, ok := dist[id]
		if !ok || !steps.Reached(d) {
			fmt.Fprintf(&b, "Node %d: unreachable\n", id)
			continue
		}
		fmt.Fprintf(&b, "Node %d: shortest distance %s\n", id, steps.FormatDistance(d))
	}
	return b.String()
}
