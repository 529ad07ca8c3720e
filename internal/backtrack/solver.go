// Package backtrack implements the plain chronological baseline solver.
// It walks the raw grid depth-first, filling the first empty cell in
// reading order with ascending legal values and undoing each placement
// when its subtree fails. It exists as the comparison point for the csp
// engine and keeps no domain state of its own.
package backtrack

import (
	"errors"

	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/grid"
)

var ErrInvalidPuzzle = errors.New("puzzle violates its constraints")

// Options configures a baseline run.
type Options struct {
	// CallLimit caps recursive calls; 0 means unbounded. Hitting the
	// cap abandons the search with Result.LimitReached set.
	CallLimit int
}

// DefaultOptions returns an unbounded run.
func DefaultOptions() *Options {
	return &Options{}
}

// Result reports a baseline run. The counters are returned here rather
// than accumulated in package state so runs stay independent.
type Result struct {
	// Solved reports whether a satisfying assignment was found.
	Solved bool

	// Grid holds the solved grid; nil unless Solved.
	Grid *grid.Grid

	// Calls counts entries into the recursive step.
	Calls int

	// Backtracks counts placements undone after a failed subtree.
	Backtracks int

	// LimitReached reports that CallLimit stopped the search early.
	LimitReached bool
}

// Solve runs chronological backtracking on a clone of the given grid.
// The input grid is never mutated. An input that already violates its
// constraints is rejected with ErrInvalidPuzzle, since the unit masks
// cannot represent duplicated givens.
func Solve(g *grid.Grid, opts *Options) (Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if !g.IsValid() {
		return Result{}, ErrInvalidPuzzle
	}

	work := g.Clone()
	var res Result
	if dfs(work, opts, &res) {
		res.Solved = true
		res.Grid = work
	}
	return res, nil
}

// dfs is the recursive step: place a legal value in the first empty
// cell and descend; undo and try the next value when the subtree fails.
func dfs(g *grid.Grid, opts *Options, res *Result) bool {
	if opts.CallLimit > 0 && res.Calls >= opts.CallLimit {
		res.LimitReached = true
		return false
	}
	res.Calls++

	pos := firstEmpty(g)
	if pos == grid.InvalidCell {
		return true
	}

	// The mask stays valid across iterations: every descent restores
	// the grid before the next value is tried.
	candidates := g.CandidatesMask(pos)
	for v := 1; v <= g.Shape().Size; v++ {
		if candidates&(uint64(1)<<(v-1)) == 0 {
			continue
		}
		g.SetForce(pos, v)
		if dfs(g, opts, res) {
			return true
		}
		g.Clear(pos)
		res.Backtracks++
		if res.LimitReached {
			return false
		}
	}
	return false
}

// firstEmpty returns the first empty position in reading order, or
// InvalidCell when the grid is full.
func firstEmpty(g *grid.Grid) int {
	for pos := range g.Shape().Cells() {
		if g.Get(pos) == grid.EmptyCell {
			return pos
		}
	}
	return grid.InvalidCell
}
