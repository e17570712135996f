// Package steps records the narrated history of a stepwise algorithm run and
// lets callers walk that history with a cursor.
//
// Two types live here:
//
//   - Step:  one immutable snapshot of algorithm progress: the node being
//     processed, the finalized (visited) nodes, the frontier, the best known
//     distances and predecessors, and a human-readable description.
//   - State: an append-only, ordered log of Steps plus a cursor.
//
// Ownership:
//
//	State.Add deep-copies every map and slice of the incoming Step, and every
//	accessor (Current, Next, Previous, At, Steps, ...) hands back another deep
//	copy. Mutating the engine's working sets, or a Step obtained from a State,
//	can never rewrite recorded history.
//
// Cursor contract:
//
//	cursor ∈ [-1, Len()-1]; -1 means nothing recorded yet. Add moves the
//	cursor onto the appended step, so a fully generated run rests on its last
//	step. Next/Previous return ok=false at the ends and leave the cursor
//	untouched; that is the "no more steps" signal. Reset moves to index 0 and
//	is a no-op on an empty State.
//
// A State is meant for a single owner; it performs no locking.
package steps
