package csp

import "github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/grid"

// Result reports the outcome of a search. Counters live here rather
// than in package state so the engine stays reentrant and callers get a
// self-contained record for reporting.
type Result struct {
	// Solved reports whether a satisfying assignment was found.
	Solved bool

	// Grid holds the solved grid; nil unless Solved.
	Grid *grid.Grid

	// Generated counts configurations created and pushed onto the
	// search stack, the root included.
	Generated int

	// Processed counts configurations popped and consistency-checked,
	// dead ends included.
	Processed int

	// LimitReached reports that the node cap stopped the search before
	// the stack emptied. The instance is then "unknown", not proven
	// unsatisfiable.
	LimitReached bool
}
