package steps

import (
	"math"
	"slices"
	"strconv"
)

// NoNode marks the absence of a node id. Valid ids start at 1.
const NoNode = 0

// Infinity is the distance of a node that has not been reached.
var Infinity = math.Inf(1)

// Reached reports whether d is a finite distance.
func Reached(d float64) bool {
	return !math.IsInf(d, 1)
}

// Kind classifies the decision a Step narrates.
type Kind int

const (
	// KindInit is the starting condition before any node is processed.
	KindInit Kind = iota
	// KindSelect marks the frontier minimum being finalized.
	KindSelect
	// KindRelax records a strictly shorter path found to a neighbor.
	KindRelax
	// KindKeep records a neighbor whose distance was already optimal.
	KindKeep
	// KindDone is the closing summary.
	KindDone
)

var kindNames = [...]string{"init", "select", "relax", "keep", "done"}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Step is a snapshot of algorithm progress at one decision point.
type Step struct {
	Kind Kind

	// Current is the node being processed; NoNode for the summary step.
	Current int

	// Neighbor is the node examined by KindRelax/KindKeep steps, else NoNode.
	Neighbor int

	// Visited lists finalized nodes in finalization order.
	Visited []int

	// Frontier is the work-list in scan order.
	Frontier []int

	// Distances maps node id → best known distance (Infinity if unreached).
	Distances map[int]float64

	// Previous maps node id → predecessor on the best known path.
	Previous map[int]int

	Description string
}

// HasCurrent reports whether the step is attached to a node.
func (s Step) HasCurrent() bool {
	return s.Current != NoNode
}

// IsVisited reports whether id had been finalized when the step was taken.
func (s Step) IsVisited(id int) bool {
	return slices.Contains(s.Visited, id)
}

// InFrontier reports whether id was waiting in the work-list.
func (s Step) InFrontier(id int) bool {
	return slices.Contains(s.Frontier, id)
}

// Distance returns the recorded distance of id, Infinity if none.
func (s Step) Distance(id int) float64 {
	if d, ok := s.Distances[id]; ok {
		return d
	}
	return Infinity
}

// PathTo rebuilds the best known path from the start node to target by
// following Previous links. ok is false when target is unreached. A cycle in
// the predecessor links (possible only with negative weights) also yields
// ok=false.
func (s Step) PathTo(target int) ([]int, bool) {
	if !Reached(s.Distance(target)) {
		return nil, false
	}

	path := []int{target}
	seen := map[int]bool{target: true}
	for cur := target; ; {
		prev, ok := s.Previous[cur]
		if !ok {
			break
		}
		if seen[prev] {
			return nil, false
		}
		seen[prev] = true
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, true
}

// Clone returns a deep copy of s. Nil containers stay nil.
func (s Step) Clone() Step {
	out := s
	out.Visited = slices.Clone(s.Visited)
	out.Frontier = slices.Clone(s.Frontier)
	if s.Distances != nil {
		out.Distances = make(map[int]float64, len(s.Distances))
		for k, v := range s.Distances {
			out.Distances[k] = v
		}
	}
	if s.Previous != nil {
		out.Previous = make(map[int]int, len(s.Previous))
		for k, v := range s.Previous {
			out.Previous[k] = v
		}
	}

	return out
}

// FormatDistance renders d for narration: "∞" when unreached, otherwise the
// shortest decimal form.
func FormatDistance(d float64) string {
	if !Reached(d) {
		return "∞"
	}
	return strconv.FormatFloat(d, 'g', -1, 64)
}
