package grid

import (
	"fmt"
	"os"
	"strings"
)

// NewFromString creates a Grid from a flat N²-character string with the
// given shape. Use '.' or '0' for empty cells, '1'..'9' for filled cells.
// If shape is nil, Standard9 is used.
func NewFromString(s string, shape *Shape) (*Grid, error) {
	g := New(shape)
	if len(s) != g.shape.Cells() {
		return nil, fmt.Errorf("%w: string must be exactly %d characters, got %d",
			ErrMalformedPuzzle, g.shape.Cells(), len(s))
	}

	for pos := range g.shape.Cells() {
		val, err := cellValue(s[pos], g.shape.Size)
		if err != nil {
			return nil, fmt.Errorf("%w at position %d", err, pos)
		}
		if val == EmptyCell {
			continue
		}
		if err := g.Set(pos, val); err != nil {
			return nil, fmt.Errorf("invalid grid at position %d: %w", pos, err)
		}
	}
	return g, nil
}

// Parse reads a puzzle in the row-per-line text format: N lines of N
// characters each, where '1'..'9' are given values and '0' or any other
// character is a blank. Trailing blank lines are ignored.
// If shape is nil, Standard9 is used.
func Parse(text string, shape *Shape) (*Grid, error) {
	g := New(shape)
	n := g.shape.Size
	if n > 9 {
		return nil, fmt.Errorf("%w: text format supports sizes up to 9, shape is %d", ErrMalformedPuzzle, n)
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) != n {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedPuzzle, n, len(lines))
	}

	for row, line := range lines {
		if len(line) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedPuzzle, row, len(line), n)
		}
		for col := range n {
			val, err := cellValue(line[col], n)
			if err != nil {
				return nil, fmt.Errorf("%w at row %d, column %d", err, row, col)
			}
			if val == EmptyCell {
				continue
			}
			if err := g.Set(g.shape.MakePos(row, col), val); err != nil {
				return nil, fmt.Errorf("invalid puzzle at row %d, column %d: %w", row, col, err)
			}
		}
	}
	return g, nil
}

// LoadFile reads a puzzle file in the row-per-line text format.
func LoadFile(path string, shape *Shape) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load puzzle: %w", err)
	}
	g, err := Parse(string(data), shape)
	if err != nil {
		return nil, fmt.Errorf("load puzzle %s: %w", path, err)
	}
	return g, nil
}

// cellValue interprets one puzzle character. Digits beyond the shape's
// size are rejected; every non-digit byte reads as a blank.
func cellValue(ch byte, size int) (int, error) {
	if ch < '1' || ch > '9' {
		return EmptyCell, nil
	}
	val := int(ch - '0')
	if val > size {
		return 0, fmt.Errorf("%w: value %d exceeds grid size %d", ErrInvalidValue, val, size)
	}
	return val, nil
}
