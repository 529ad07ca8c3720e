package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/csp"
	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/grid"
)

const (
	MinValidClueCount = 17
	MaxValidClueCount = 80
	DefaultClueCount  = 32
)

var (
	ErrGenerationFailed = errors.New("failed to generate valid puzzle")
	ErrInvalidClueCount = errors.New("clue count must be between 17 and 80")
	ErrDiggingFailed    = errors.New("failed to remove proper number of clues")
	ErrUnsupportedShape = errors.New("generation requires a 9x9 shape")
)

// Generator creates Sudoku puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
	shape   *grid.Shape
	graph   *csp.ConstraintGraph
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(DefaultClueCount)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	shape := options.Shape
	if shape == nil {
		shape = grid.Standard9()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
		shape:   shape,
		graph:   csp.NewConstraintGraph(shape),
	}
}

// Generate creates a new Sudoku puzzle.
// Returns the puzzle and its solution, or an error if generation fails.
func (g *Generator) Generate() (puzzle *grid.Grid, solution *grid.Grid, err error) {
	if g.options.ClueCount < MinValidClueCount || g.options.ClueCount > MaxValidClueCount {
		return nil, nil, ErrInvalidClueCount
	}
	if g.shape.Size != 9 {
		return nil, nil, ErrUnsupportedShape
	}

	start := time.Now()
	timeout := g.options.Timeout

	for {
		if time.Since(start) >= timeout {
			return nil, nil, ErrGenerationFailed
		}

		// Generate a complete valid grid
		solution, err = g.generateSolution()
		if err != nil {
			continue
		}

		// Remove clues to create the puzzle
		puzzle, err = g.removeCells(solution)
		if err != nil {
			continue
		}

		// Verify uniqueness if required
		if g.options.EnsureUnique {
			if !g.hasUniqueSolution(puzzle) {
				continue
			}
		}

		return puzzle, solution, nil
	}
}

// generateSolution creates a complete valid Sudoku grid.
func (g *Generator) generateSolution() (*grid.Grid, error) {
	base := grid.New(g.shape)

	// The three seeded boxes are mutually independent only when no
	// diagonal constraint crosses them.
	if !g.shape.Diagonal && g.shape.Box == 3 {
		g.fillThreeBoxes(base)
	}

	cfg, err := csp.NewConfiguration(base, g.graph)
	if err != nil {
		return nil, err
	}

	solved := g.fill(cfg)
	if solved == nil {
		return nil, ErrGenerationFailed
	}
	return solved.Grid(), nil
}

// fill completes a configuration by depth-first search with shuffled
// candidate order, so repeated runs produce different solutions.
func (g *Generator) fill(c *csp.Configuration) *csp.Configuration {
	if !csp.Propagate(c) {
		return nil
	}
	if c.Complete() {
		return c
	}

	id, candidates := c.MRVCell()
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, val := range candidates {
		if solved := g.fill(c.Branch(id, val)); solved != nil {
			return solved
		}
	}
	return nil
}

// fillThreeBoxes fills three 3x3 boxes (27 cells total) that are all independent.
func (g *Generator) fillThreeBoxes(base *grid.Grid) {
	boxColumns := []int{0, 3, 6}
	g.rng.Shuffle(len(boxColumns), func(i, j int) {
		boxColumns[i], boxColumns[j] = boxColumns[j], boxColumns[i]
	})
	nums := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	for i, boxRow := range []int{0, 3, 6} {
		boxCol := boxColumns[i]
		g.rng.Shuffle(len(nums), func(i, j int) {
			nums[i], nums[j] = nums[j], nums[i]
		})
		for j, val := range nums {
			dr, dc := int(j/3), j%3
			pos := (boxRow+dr)*9 + boxCol + dc
			base.SetForce(pos, val)
		}
	}
}

// removeCells removes clues from a complete grid to create a puzzle.
func (g *Generator) removeCells(solution *grid.Grid) (*grid.Grid, error) {
	puzzle := solution.Clone()

	// Calculate how many cells to remove
	targetClues := g.options.ClueCount
	cellsToRemove := g.shape.Cells() - targetClues

	// Create shuffled list of all positions
	positions := g.rng.Perm(g.shape.Cells())

	// Remove cells until we reach target clues
	cellsRemoved := 0
	for _, pos := range positions {
		if cellsRemoved >= cellsToRemove {
			break
		}

		// Try removing this cell
		val := puzzle.Get(pos)
		if val == grid.EmptyCell {
			continue
		}

		puzzle.Clear(pos)
		cellsRemoved++

		// Verify the puzzle still has a unique solution
		if g.options.EnsureUnique {
			if !g.hasUniqueSolution(puzzle) {
				// Restore the cell
				puzzle.SetForce(pos, val)
				cellsRemoved--
			}
		}
	}

	if cellsRemoved == cellsToRemove {
		return puzzle, nil
	} else {
		return puzzle, ErrDiggingFailed
	}
}

// hasUniqueSolution checks if the puzzle has exactly one solution.
func (g *Generator) hasUniqueSolution(puzzle *grid.Grid) bool {
	cfg, err := csp.NewConfiguration(puzzle, g.graph)
	if err != nil {
		return false
	}
	return countSolutions(cfg, 2) == 1
}

// countSolutions counts solutions of a configuration, stopping once the
// limit is reached.
func countSolutions(c *csp.Configuration, limit int) int {
	if limit <= 0 {
		return 0
	}
	if !csp.Propagate(c) {
		return 0
	}
	if c.Complete() {
		return 1
	}

	id, candidates := c.MRVCell()
	count := 0
	for _, val := range candidates {
		count += countSolutions(c.Branch(id, val), limit-count)
		if count >= limit {
			break
		}
	}
	return count
}

// GenerateWithClueCount is a convenience function to generate a puzzle with a specific clue count.
func GenerateWithClueCount(clueCount int) (*grid.Grid, *grid.Grid, error) {
	gen := New(DefaultOptions(clueCount))
	return gen.Generate()
}
