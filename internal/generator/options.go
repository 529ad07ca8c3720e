package generator

import (
	"time"

	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/grid"
)

// Options configures puzzle generation behavior.
type Options struct {
	ClueCount    int           // Number of clues to leave in the puzzle
	Timeout      time.Duration // Timeout limits generation time
	Seed         int64         // Seed for reproducible puzzles (0 = random)
	EnsureUnique bool          // EnsureUnique verifies single solution
	// Shape specifies the puzzle geometry. nil means grid.Standard9.
	Shape *grid.Shape
}

// DefaultOptions returns standard generator options.
func DefaultOptions(clueCount int) *Options {
	clueCount = min(max(clueCount, MinValidClueCount), MaxValidClueCount)
	return &Options{
		ClueCount:    clueCount,
		Timeout:      10 * time.Second,
		Seed:         0,
		EnsureUnique: true,
		Shape:        nil, // nil → grid.Standard9 inside New
	}
}
