package grid

import "strings"

// String returns the grid as a flat N²-character string.
// Empty cells are represented as '.', filled cells as '1'..'9'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.shape.Cells())

	for _, cell := range g.cells {
		sb.WriteByte(cellByte(cell))
	}

	return sb.String()
}

// Text returns the grid in the row-per-line puzzle format accepted by
// Parse: N lines of N characters, '0' for empty cells.
func (g *Grid) Text() string {
	n := g.shape.Size
	var sb strings.Builder
	sb.Grow(g.shape.Cells() + n)

	for row := range n {
		for col := range n {
			val := g.cells[g.shape.MakePos(row, col)]
			if val == EmptyCell {
				sb.WriteByte('0')
			} else {
				sb.WriteByte('0' + byte(val))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Format returns a human-readable grid representation with box rules.
func (g *Grid) Format() string {
	n, b := g.shape.Size, g.shape.Box

	var sb strings.Builder
	segment := "+" + strings.Repeat("-", 2*b+1)
	line := strings.Repeat(segment, n/b) + "+\n"
	sb.WriteString(line)

	for row := range n {
		sb.WriteString("| ")
		for col := range n {
			sb.WriteByte(cellByte(g.cells[g.shape.MakePos(row, col)]))
			sb.WriteByte(' ')

			if (col+1)%b == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%b == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}

// cellByte renders one cell value for display.
func cellByte(val int) byte {
	if val == EmptyCell {
		return '.'
	}
	return '0' + byte(val)
}
