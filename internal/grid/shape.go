package grid

import "fmt"

// MaxSize is the largest supported grid dimension. Candidate sets are
// tracked as 64-bit masks, so values above 64 cannot be represented.
const MaxSize = 64

// Shape describes a puzzle family: the grid dimension, the box tiling,
// and whether the two main diagonals carry all-different constraints
// (the "X" variant).
//
// Shape is immutable after construction, so the same pointer is safely
// shared across Grid clones and across every search state derived from
// the same puzzle.
type Shape struct {
	// Size is the grid dimension N. Cells take values 1..N.
	Size int

	// Box is the side length B of each B×B box. B always divides N.
	Box int

	// Diagonal reports whether the main and anti diagonals are
	// constrained to hold distinct values.
	Diagonal bool

	// posToBox maps a cell position (0..N²-1) to its box index.
	posToBox []int

	// boxToCells is the inverse: the cell positions of each box, in
	// ascending order.
	boxToCells [][]int
}

// NewShape builds a Shape for an N×N grid tiled by B×B boxes and
// validates it. Returns an error if the dimensions are unusable.
func NewShape(size, box int, diagonal bool) (*Shape, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("shape: size %d must be in range [1, %d]", size, MaxSize)
	}
	if box < 1 || box > size {
		return nil, fmt.Errorf("shape: box side %d must be in range [1, %d]", box, size)
	}
	if size%box != 0 {
		return nil, fmt.Errorf("shape: box side %d does not divide size %d", box, size)
	}

	s := &Shape{
		Size:     size,
		Box:      box,
		Diagonal: diagonal,
	}
	s.buildBoxTables()
	return s, nil
}

// Standard9 returns the Shape of a classic 9×9, 3×3-box Sudoku.
func Standard9() *Shape {
	s, err := NewShape(9, 3, false)
	if err != nil {
		// The standard shape is hard-coded and always valid; panic on bugs.
		panic("standard shape failed validation: " + err.Error())
	}
	return s
}

// Diagonal9 returns the 9×9 Shape with both diagonals constrained.
func Diagonal9() *Shape {
	s, err := NewShape(9, 3, true)
	if err != nil {
		panic("diagonal shape failed validation: " + err.Error())
	}
	return s
}

// buildBoxTables fills posToBox and its boxToCells inverse. Boxes are
// numbered in reading order: box index = (row/B)*(N/B) + col/B.
func (s *Shape) buildBoxTables() {
	n, b := s.Size, s.Box
	boxesPerRow := n / b

	s.posToBox = make([]int, n*n)
	s.boxToCells = make([][]int, boxesPerRow*boxesPerRow)
	for pos := range n * n {
		box := (pos/n/b)*boxesPerRow + (pos%n)/b
		s.posToBox[pos] = box
		s.boxToCells[box] = append(s.boxToCells[box], pos)
	}
}

// Cells returns the total number of cells, N².
func (s *Shape) Cells() int {
	return s.Size * s.Size
}

// Boxes returns the number of boxes, (N/B)².
func (s *Shape) Boxes() int {
	return len(s.boxToCells)
}

// MakePos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are out of range.
func (s *Shape) MakePos(row, col int) int {
	if row < 0 || row >= s.Size || col < 0 || col >= s.Size {
		return InvalidCell
	}
	return row*s.Size + col
}

// RowOf returns the row of a position.
func (s *Shape) RowOf(pos int) int { return pos / s.Size }

// ColOf returns the column of a position.
func (s *Shape) ColOf(pos int) int { return pos % s.Size }

// BoxOf returns the box index of a position.
func (s *Shape) BoxOf(pos int) int { return s.posToBox[pos] }

// BoxCells returns the cell positions belonging to the given box, in
// ascending order. The returned slice is shared; callers must not
// modify it.
func (s *Shape) BoxCells(box int) []int {
	return s.boxToCells[box]
}

// OnMainDiagonal reports whether pos lies on the top-left to
// bottom-right diagonal.
func (s *Shape) OnMainDiagonal(pos int) bool {
	return pos/s.Size == pos%s.Size
}

// OnAntiDiagonal reports whether pos lies on the top-right to
// bottom-left diagonal.
func (s *Shape) OnAntiDiagonal(pos int) bool {
	return pos/s.Size+pos%s.Size == s.Size-1
}

// Equal reports whether two shapes describe the same puzzle family.
func (s *Shape) Equal(o *Shape) bool {
	return s.Size == o.Size && s.Box == o.Box && s.Diagonal == o.Diagonal
}

// String returns a short identifier such as "9x9/3" or "9x9/3+diag".
func (s *Shape) String() string {
	if s.Diagonal {
		return fmt.Sprintf("%dx%d/%d+diag", s.Size, s.Size, s.Box)
	}
	return fmt.Sprintf("%dx%d/%d", s.Size, s.Size, s.Box)
}
