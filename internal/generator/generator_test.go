package generator

import (
	"errors"
	"testing"
	"time"

	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/csp"
	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/grid"
)

func testOptions(clues int, seed int64) *Options {
	opts := DefaultOptions(clues)
	opts.Seed = seed
	opts.Timeout = 30 * time.Second
	return opts
}

func TestGenerateProducesConsistentPair(t *testing.T) {
	puzzle, solution, err := New(testOptions(40, 1)).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if puzzle.ClueCount() != 40 {
		t.Errorf("puzzle clues = %d, want 40", puzzle.ClueCount())
	}
	if solution.EmptyCount() != 0 || !solution.IsValid() {
		t.Fatal("solution is not a valid complete grid")
	}
	if !puzzle.IsValid() {
		t.Fatal("puzzle violates its constraints")
	}

	// Every clue must come from the solution.
	for pos := range puzzle.Shape().Cells() {
		if v := puzzle.Get(pos); v != grid.EmptyCell && solution.Get(pos) != v {
			t.Errorf("clue at %d is %d, solution holds %d", pos, v, solution.Get(pos))
		}
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	a, _, err := New(testOptions(36, 7)).Generate()
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := New(testOptions(36, 7)).Generate()
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("same seed should generate the same puzzle")
	}
}

func TestGeneratePuzzleHasUniqueSolution(t *testing.T) {
	gen := New(testOptions(35, 3))
	puzzle, _, err := gen.Generate()
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := csp.NewConfiguration(puzzle, gen.graph)
	if err != nil {
		t.Fatal(err)
	}
	if n := countSolutions(cfg, 2); n != 1 {
		t.Errorf("puzzle admits %d solutions, want 1", n)
	}
}

func TestGenerateDiagonalShape(t *testing.T) {
	opts := testOptions(40, 5)
	opts.Shape = grid.Diagonal9()

	puzzle, solution, err := New(opts).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !solution.IsValid() {
		t.Error("diagonal solution should satisfy the diagonal constraints")
	}
	if puzzle.Shape() != opts.Shape {
		t.Error("puzzle should carry the requested shape")
	}
}

func TestGenerateRejectsBadClueCounts(t *testing.T) {
	for _, clues := range []int{16, 81, 0, -5} {
		opts := testOptions(clues, 1)
		opts.ClueCount = clues // bypass the DefaultOptions clamp
		if _, _, err := New(opts).Generate(); !errors.Is(err, ErrInvalidClueCount) {
			t.Errorf("ClueCount %d: got %v, want ErrInvalidClueCount", clues, err)
		}
	}
}

func TestGenerateRejectsUnsupportedShape(t *testing.T) {
	four, err := grid.NewShape(4, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	opts := testOptions(17, 1)
	opts.Shape = four

	if _, _, err := New(opts).Generate(); !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("got %v, want ErrUnsupportedShape", err)
	}
}

func TestDefaultOptionsClampsClueCount(t *testing.T) {
	if got := DefaultOptions(5).ClueCount; got != MinValidClueCount {
		t.Errorf("low clue count clamps to %d, got %d", MinValidClueCount, got)
	}
	if got := DefaultOptions(99).ClueCount; got != MaxValidClueCount {
		t.Errorf("high clue count clamps to %d, got %d", MaxValidClueCount, got)
	}
	if got := DefaultOptions(32).ClueCount; got != 32 {
		t.Errorf("in-range clue count should pass through, got %d", got)
	}
}

func TestCountSolutionsStopsAtLimit(t *testing.T) {
	// An empty grid has a vast number of completions; the counter must
	// stop at the limit rather than enumerate them.
	cfg, err := csp.NewConfiguration(grid.New(nil), nil)
	if err != nil {
		t.Fatal(err)
	}
	if n := countSolutions(cfg, 2); n != 2 {
		t.Errorf("countSolutions = %d, want 2", n)
	}
}
