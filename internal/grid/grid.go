package grid

import "fmt"

// Special cell values
const (
	EmptyCell   = 0
	InvalidCell = -1
)

// Grid represents an N×N puzzle grid.
type Grid struct {
	cells []int

	// shape describes the grid dimension, box tiling, and diagonal mode.
	// It is set at construction time and never mutated; clones share the pointer.
	shape *Shape

	// Bitmasks track placed values in each unit (row/col/box/diagonal).
	// Bit i represents value i+1 (bit 0 = value 1).
	// This allows for O(1) validation.
	rowMasks []uint64
	colMasks []uint64
	boxMasks []uint64

	// mainDiagMask and antiDiagMask are maintained only when the shape's
	// diagonal constraint is enabled.
	mainDiagMask uint64
	antiDiagMask uint64

	// emptyCount tracks unfilled cells for quick completion checks.
	// Once initialized, emptyCount should only be touched inside Set and Clear.
	emptyCount int
}

// New creates an empty Grid with the given shape.
// If shape is nil, Standard9 is used.
func New(shape *Shape) *Grid {
	if shape == nil {
		shape = Standard9()
	}
	return &Grid{
		cells:      make([]int, shape.Cells()),
		shape:      shape,
		rowMasks:   make([]uint64, shape.Size),
		colMasks:   make([]uint64, shape.Size),
		boxMasks:   make([]uint64, shape.Boxes()),
		emptyCount: shape.Cells(),
	}
}

// Clone creates an independent copy of the Grid.
// The shape pointer is shared; Shape is immutable after construction.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	clone := &Grid{
		cells:        make([]int, len(g.cells)),
		shape:        g.shape,
		rowMasks:     make([]uint64, len(g.rowMasks)),
		colMasks:     make([]uint64, len(g.colMasks)),
		boxMasks:     make([]uint64, len(g.boxMasks)),
		mainDiagMask: g.mainDiagMask,
		antiDiagMask: g.antiDiagMask,
		emptyCount:   g.emptyCount,
	}
	copy(clone.cells, g.cells)
	copy(clone.rowMasks, g.rowMasks)
	copy(clone.colMasks, g.colMasks)
	copy(clone.boxMasks, g.boxMasks)
	return clone
}

// Shape returns the grid's Shape.
func (g *Grid) Shape() *Shape {
	return g.shape
}

// Set attempts to place a value 1..N at the given position.
// Returns an error if the placement violates the puzzle's constraints
// or parameters are invalid.
func (g *Grid) Set(pos, val int) error {
	if err := g.validatePosition(pos); err != nil {
		return err
	}
	if err := g.validateValue(val); err != nil {
		return err
	}
	if val == EmptyCell {
		return g.Clear(pos)
	}
	if g.cells[pos] != EmptyCell {
		g.Clear(pos)
	}

	row, col, box := g.shape.RowOf(pos), g.shape.ColOf(pos), g.shape.BoxOf(pos)
	mask := uint64(1) << (val - 1)

	// Check if value already exists in any unit containing pos
	if g.rowMasks[row]&mask != 0 {
		return fmt.Errorf("%w: value %d already in row %d", ErrIllegalMove, val, row)
	}
	if g.colMasks[col]&mask != 0 {
		return fmt.Errorf("%w: value %d already in column %d", ErrIllegalMove, val, col)
	}
	if g.boxMasks[box]&mask != 0 {
		return fmt.Errorf("%w: value %d already in box %d", ErrIllegalMove, val, box)
	}
	if g.shape.Diagonal {
		if g.shape.OnMainDiagonal(pos) && g.mainDiagMask&mask != 0 {
			return fmt.Errorf("%w: value %d already on main diagonal", ErrIllegalMove, val)
		}
		if g.shape.OnAntiDiagonal(pos) && g.antiDiagMask&mask != 0 {
			return fmt.Errorf("%w: value %d already on anti diagonal", ErrIllegalMove, val)
		}
	}

	// Modify the grid only once we know it's legal to do so
	g.cells[pos] = val
	g.rowMasks[row] |= mask
	g.colMasks[col] |= mask
	g.boxMasks[box] |= mask
	if g.shape.Diagonal {
		if g.shape.OnMainDiagonal(pos) {
			g.mainDiagMask |= mask
		}
		if g.shape.OnAntiDiagonal(pos) {
			g.antiDiagMask |= mask
		}
	}
	g.emptyCount--

	return nil
}

// SetForce places a value without validation checks.
// Use only when certain the move is valid.
func (g *Grid) SetForce(pos, val int) {
	row, col, box := g.shape.RowOf(pos), g.shape.ColOf(pos), g.shape.BoxOf(pos)
	mask := uint64(1) << (val - 1)

	g.cells[pos] = val
	g.rowMasks[row] |= mask
	g.colMasks[col] |= mask
	g.boxMasks[box] |= mask
	if g.shape.Diagonal {
		if g.shape.OnMainDiagonal(pos) {
			g.mainDiagMask |= mask
		}
		if g.shape.OnAntiDiagonal(pos) {
			g.antiDiagMask |= mask
		}
	}
	g.emptyCount--
}

// Clear removes the value at the given position.
// Returns an error if the position is invalid.
// No harm is done calling Clear on an already empty cell.
func (g *Grid) Clear(pos int) error {
	if err := g.validatePosition(pos); err != nil {
		return err
	}

	// Exit early if the cell is already empty, no harm no foul
	val := g.cells[pos]
	if val == EmptyCell {
		return nil
	}

	row, col, box := g.shape.RowOf(pos), g.shape.ColOf(pos), g.shape.BoxOf(pos)
	mask := uint64(1) << (val - 1)

	g.cells[pos] = EmptyCell
	g.rowMasks[row] &^= mask
	g.colMasks[col] &^= mask
	g.boxMasks[box] &^= mask
	if g.shape.Diagonal {
		if g.shape.OnMainDiagonal(pos) {
			g.mainDiagMask &^= mask
		}
		if g.shape.OnAntiDiagonal(pos) {
			g.antiDiagMask &^= mask
		}
	}
	g.emptyCount++

	return nil
}

// Get returns the value at the given position.
// Returns InvalidCell for invalid positions.
func (g *Grid) Get(pos int) int {
	if !g.isValidPosition(pos) {
		return InvalidCell
	}
	return g.cells[pos]
}

// fullMask has one bit set per legal value.
func (g *Grid) fullMask() uint64 {
	if g.shape.Size == MaxSize {
		return ^uint64(0)
	}
	return uint64(1)<<g.shape.Size - 1
}

// CandidatesMask returns the bitmask of candidates for a given position.
// A returned 0 indicates an unsolvable grid or an invalid position.
func (g *Grid) CandidatesMask(pos int) uint64 {
	if !g.isValidPosition(pos) {
		return 0
	}
	row, col, box := g.shape.RowOf(pos), g.shape.ColOf(pos), g.shape.BoxOf(pos)
	m := g.fullMask() &^ g.rowMasks[row] &^ g.colMasks[col] &^ g.boxMasks[box]
	if g.shape.Diagonal {
		if g.shape.OnMainDiagonal(pos) {
			m &^= g.mainDiagMask
		}
		if g.shape.OnAntiDiagonal(pos) {
			m &^= g.antiDiagMask
		}
	}
	return m
}

// Candidates returns a slice of candidate values 1..N for a given position.
// An empty slice indicates an unsolvable grid or an invalid position.
func (g *Grid) Candidates(pos int) []int {
	mask := g.CandidatesMask(pos)
	candidates := make([]int, 0, g.shape.Size)
	for num := 1; num <= g.shape.Size; num++ {
		if mask&(uint64(1)<<(num-1)) != 0 {
			candidates = append(candidates, num)
		}
	}
	return candidates
}

// EmptyCount returns the number of empty cells on the grid.
func (g *Grid) EmptyCount() int {
	return g.emptyCount
}

// ClueCount returns the number of filled cells on the grid.
func (g *Grid) ClueCount() int {
	return g.shape.Cells() - g.emptyCount
}
