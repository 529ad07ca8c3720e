package csp

import "fmt"

// Cell is a single constrained variable: a stable identifier, the domain
// of remaining candidate values, and an optional committed assignment.
//
// Cell carries no pointers, so copying a cell slice yields fully
// independent state; only Restrict and Assign ever mutate one.
type Cell struct {
	// ID equals row*N+col at creation time and is stable across all
	// copies of the same logical cell.
	ID int

	// Domain holds the values still possible for this cell.
	// It is never empty for a cell in a live Configuration.
	Domain Domain

	// Value is the committed assignment, or Unassigned.
	// When set, Value is always an element of Domain.
	Value int
}

// Unassigned marks a cell without a committed value.
const Unassigned = 0

// Assigned reports whether the cell carries a committed value.
func (c *Cell) Assigned() bool {
	return c.Value != Unassigned
}

// Assign commits v and collapses the domain to {v}.
//
// Assigning a value outside the current domain means an ordering
// invariant was violated upstream (value ordering always derives from
// the same Configuration being branched), so it panics rather than
// returning an error.
func (c *Cell) Assign(v int) {
	if !c.Domain.Has(v) {
		panic(fmt.Sprintf("csp: assign value %d to cell %d with domain %v", v, c.ID, c.Domain.Values()))
	}
	c.Domain = SingletonDomain(v)
	c.Value = v
}

// Restrict removes v from the domain and reports whether the domain
// shrank. It never touches the committed value.
func (c *Cell) Restrict(v int) bool {
	next := c.Domain.Remove(v)
	if next == c.Domain {
		return false
	}
	c.Domain = next
	return true
}
