package grid

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrInvalidValue    = errors.New("value out of range")
	ErrIllegalMove     = errors.New("move violates puzzle constraints")
	ErrMalformedPuzzle = errors.New("malformed puzzle text")
)

// IsValid reports whether a grid satisfies its shape's constraints.
// Empty cells are ignored for validation.
func (g *Grid) IsValid() bool {
	n := g.shape.Size
	rowCheck := make([]uint64, n)
	colCheck := make([]uint64, n)
	boxCheck := make([]uint64, g.shape.Boxes())
	var mainCheck, antiCheck uint64

	for pos := range g.shape.Cells() {
		val := g.cells[pos]
		if val == EmptyCell {
			continue
		}

		row, col, box := g.shape.RowOf(pos), g.shape.ColOf(pos), g.shape.BoxOf(pos)
		mask := uint64(1) << (val - 1)

		// Check for duplicates in any unit containing pos
		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			boxCheck[box]&mask != 0 {
			return false
		}
		if g.shape.Diagonal {
			if g.shape.OnMainDiagonal(pos) && mainCheck&mask != 0 {
				return false
			}
			if g.shape.OnAntiDiagonal(pos) && antiCheck&mask != 0 {
				return false
			}
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		boxCheck[box] |= mask
		if g.shape.Diagonal {
			if g.shape.OnMainDiagonal(pos) {
				mainCheck |= mask
			}
			if g.shape.OnAntiDiagonal(pos) {
				antiCheck |= mask
			}
		}
	}

	return true
}

// isValidPosition reports whether a given position is in bounds of the grid.
func (g *Grid) isValidPosition(pos int) bool {
	return pos >= 0 && pos < g.shape.Cells()
}

// validatePosition checks if a position is within grid bounds.
func (g *Grid) validatePosition(pos int) error {
	if !g.isValidPosition(pos) {
		return fmt.Errorf("%w: position %d must be in range [0, %d)", ErrInvalidPosition, pos, g.shape.Cells())
	}
	return nil
}

// isValidValue reports whether a given number may be placed on the grid.
func (g *Grid) isValidValue(num int) bool {
	return (num >= 1 && num <= g.shape.Size) || num == EmptyCell
}

// validateValue checks if a value is valid for this grid (1..N).
func (g *Grid) validateValue(val int) error {
	if !g.isValidValue(val) {
		return fmt.Errorf("%w: value %d must be between 1 and %d", ErrInvalidValue, val, g.shape.Size)
	}
	return nil
}
