package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/dijkstep/steps"
)

// Status of a node within one step.
const (
	StatusCurrent   = "current"
	StatusVisited   = "visited"
	StatusFrontier  = "frontier"
	StatusUnvisited = "unvisited"
)

// Status classifies id in s. Current wins over visited, visited over
// frontier.
func Status(s steps.Step, id int) string {
	switch {
	case s.HasCurrent() && s.Current == id:
		return StatusCurrent
	case s.IsVisited(id):
		return StatusVisited
	case s.InFrontier(id):
		return StatusFrontier
	default:
		return StatusUnvisited
	}
}

// Markdown renders s for a graph of nodeCount nodes.
func Markdown(s steps.Step, nodeCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Step: %s\n\n", s.Kind)
	// Hard line breaks keep multi-line narration (the summary) intact.
	desc := strings.TrimRight(s.Description, "\n")
	b.WriteString(strings.ReplaceAll(desc, "\n", "  \n"))
	b.WriteString("\n\n")

	b.WriteString("| Node | Status | Distance | Predecessor |\n")
	b.WriteString("|---:|---|---:|---:|\n")
	for id := 1; id <= nodeCount; id++ {
		pred := "-"
		if p, ok := s.Previous[id]; ok {
			pred = strconv.Itoa(p)
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n",
			id, Status(s, id), steps.FormatDistance(s.Distance(id)), pred)
	}

	return b.String()
}

// Path renders the best known path to target as "1 → 2 → 3", or
// "unreachable".
func Path(s steps.Step, target int) string {
	ids, ok := s.PathTo(target)
	if !ok {
		return "unreachable"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " → ")
}
