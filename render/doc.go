// Package render turns step snapshots into text for people.
//
// Markdown produces a plain markdown document for one step: a header naming
// the step kind, the narration, and a table of every node with its status,
// distance and predecessor. Terminal renders that document with glamour and
// prefixes a colored status legend. Path formats a reconstructed shortest
// path.
//
// Rendering never mutates a step; all functions work on the copies handed
// out by steps.State.
package render
