package csp

import (
	"fmt"

	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/grid"
)

// Configuration is one snapshot of all cells' domains and assignments,
// a single node of the search tree. Every branch produces a new
// Configuration that owns its cells outright; only the ConstraintGraph
// is shared, by reference, across the whole tree.
type Configuration struct {
	cells []Cell
	graph *ConstraintGraph
}

// NewConfiguration converts a loaded grid into the root Configuration:
// a pre-filled cell becomes a singleton domain with that assignment, an
// empty cell a full 1..N domain. A nil graph is built from the grid's
// shape; passing one in lets callers solving many puzzles of the same
// shape reuse it.
func NewConfiguration(g *grid.Grid, graph *ConstraintGraph) (*Configuration, error) {
	shape := g.Shape()
	if graph == nil {
		graph = NewConstraintGraph(shape)
	} else if !graph.Shape().Equal(shape) {
		return nil, fmt.Errorf("csp: graph shape %v does not match grid shape %v", graph.Shape(), shape)
	}

	c := &Configuration{
		cells: make([]Cell, shape.Cells()),
		graph: graph,
	}
	for pos := range shape.Cells() {
		if v := g.Get(pos); v != grid.EmptyCell {
			c.cells[pos] = Cell{ID: pos, Domain: SingletonDomain(v), Value: v}
		} else {
			c.cells[pos] = Cell{ID: pos, Domain: FullDomain(shape.Size)}
		}
	}
	return c, nil
}

// Branch produces the child Configuration obtained by assigning v to
// the cell with the given id. Cells are deep-copied so the child can be
// pruned independently; the graph is shared.
func (c *Configuration) Branch(id, v int) *Configuration {
	child := &Configuration{
		cells: make([]Cell, len(c.cells)),
		graph: c.graph,
	}
	copy(child.cells, c.cells)
	child.cells[id].Assign(v)
	return child
}

// Complete reports whether every cell carries an assignment.
func (c *Configuration) Complete() bool {
	for i := range c.cells {
		if !c.cells[i].Assigned() {
			return false
		}
	}
	return true
}

// Cell returns a copy of the cell with the given id.
func (c *Configuration) Cell(id int) Cell {
	return c.cells[id]
}

// Cells returns the number of cells.
func (c *Configuration) Cells() int {
	return len(c.cells)
}

// Graph returns the shared constraint graph.
func (c *Configuration) Graph() *ConstraintGraph {
	return c.graph
}

// Grid exports the assigned cells as a grid. It is intended for
// consistent Configurations, typically the solved one; assignments are
// placed without re-validation.
func (c *Configuration) Grid() *grid.Grid {
	g := grid.New(c.graph.Shape())
	for i := range c.cells {
		if c.cells[i].Assigned() {
			g.SetForce(c.cells[i].ID, c.cells[i].Value)
		}
	}
	return g
}
