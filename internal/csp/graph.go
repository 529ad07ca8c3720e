package csp

import (
	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/grid"
)

// ConstraintGraph records, per cell, the other cells that constrain it:
// everything sharing its row, column, or box, plus the diagonal cells
// when the shape enables the diagonal variant.
//
// The graph is a pure function of the shape. It is built once per
// puzzle shape, in O(N²·N), and shared read-only by every Configuration
// derived from the same puzzle, which is the key performance invariant:
// branching copies cell state, never adjacency.
type ConstraintGraph struct {
	shape     *grid.Shape
	neighbors [][]int
}

// NewConstraintGraph builds the neighbor sets for the given shape.
func NewConstraintGraph(shape *grid.Shape) *ConstraintGraph {
	n := shape.Size
	cells := shape.Cells()

	g := &ConstraintGraph{
		shape:     shape,
		neighbors: make([][]int, cells),
	}

	// mark is reused per cell; collecting in ascending id order keeps
	// the construction deterministic.
	mark := make([]bool, cells)
	for pos := range cells {
		row, col := shape.RowOf(pos), shape.ColOf(pos)

		for i := range n {
			mark[shape.MakePos(row, i)] = true
			mark[shape.MakePos(i, col)] = true
		}
		for _, p := range shape.BoxCells(shape.BoxOf(pos)) {
			mark[p] = true
		}
		if shape.Diagonal {
			if shape.OnMainDiagonal(pos) {
				for i := range n {
					mark[shape.MakePos(i, i)] = true
				}
			}
			if shape.OnAntiDiagonal(pos) {
				for i := range n {
					mark[shape.MakePos(i, n-1-i)] = true
				}
			}
		}
		mark[pos] = false

		set := make([]int, 0, 3*(n-1))
		for p := range cells {
			if mark[p] {
				set = append(set, p)
				mark[p] = false
			}
		}
		g.neighbors[pos] = set
	}

	return g
}

// Neighbors returns the ids constraining the given cell, in ascending
// order with the cell itself excluded. The returned slice is shared;
// callers must not modify it.
func (g *ConstraintGraph) Neighbors(id int) []int {
	return g.neighbors[id]
}

// Shape returns the puzzle shape the graph was built for.
func (g *ConstraintGraph) Shape() *grid.Shape {
	return g.shape
}
