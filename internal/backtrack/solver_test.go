package backtrack

import (
	"errors"
	"testing"

	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/grid"
)

const classicPuzzle = `530070000
600195000
098000060
800060003
400803001
700020006
060000280
000419005
000080079
`

const classicSolution = `534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179
`

func mustParse(t *testing.T, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return g
}

func TestSolveClassicPuzzle(t *testing.T) {
	puzzle := mustParse(t, classicPuzzle)
	res, err := Solve(puzzle, nil)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !res.Solved {
		t.Fatal("classic puzzle should be solvable")
	}
	if got := res.Grid.Text(); got != classicSolution {
		t.Errorf("solution mismatch:\n%swant:\n%s", got, classicSolution)
	}
	if res.Calls < 51 {
		// At minimum one call per blank plus the final full check.
		t.Errorf("calls = %d, implausibly low", res.Calls)
	}

	// The input is untouched.
	if puzzle.Text() != classicPuzzle {
		t.Error("Solve mutated its input grid")
	}
}

func TestSolveNearlyComplete(t *testing.T) {
	text := "0" + classicSolution[1:]
	res, err := Solve(mustParse(t, text), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Solved {
		t.Fatal("one-blank puzzle should be solvable")
	}
	// One call places the value, a second finds the grid full.
	if res.Calls != 2 || res.Backtracks != 0 {
		t.Errorf("calls = %d, backtracks = %d, want 2 and 0", res.Calls, res.Backtracks)
	}
}

func TestSolveRejectsInvalidInput(t *testing.T) {
	g := grid.New(nil)
	g.SetForce(g.Shape().MakePos(0, 0), 7)
	g.SetForce(g.Shape().MakePos(1, 1), 7)

	if _, err := Solve(g, nil); !errors.Is(err, ErrInvalidPuzzle) {
		t.Errorf("Solve = %v, want ErrInvalidPuzzle", err)
	}
}

func TestSolveUnsatisfiable(t *testing.T) {
	// Legal givens that leave (0,0) with no candidate.
	g := grid.New(nil)
	for col := 1; col <= 8; col++ {
		if err := g.Set(g.Shape().MakePos(0, col), col); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.Set(g.Shape().MakePos(1, 0), 9); err != nil {
		t.Fatal(err)
	}

	res, err := Solve(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Solved {
		t.Fatal("puzzle should be unsatisfiable")
	}
	if res.Grid != nil {
		t.Error("unsolved result should carry no grid")
	}
	// The very first cell has no candidates, so the search dies at once.
	if res.Calls != 1 || res.Backtracks != 0 {
		t.Errorf("calls = %d, backtracks = %d, want 1 and 0", res.Calls, res.Backtracks)
	}
}

func TestSolveCallLimit(t *testing.T) {
	res, err := Solve(grid.New(nil), &Options{CallLimit: 5})
	if err != nil {
		t.Fatal(err)
	}
	if !res.LimitReached {
		t.Fatal("call limit should have been reached")
	}
	if res.Solved {
		t.Error("limited search should not report a solution")
	}
	if res.Calls != 5 {
		t.Errorf("calls = %d, want exactly 5", res.Calls)
	}
}

func TestSolveSmallShape(t *testing.T) {
	four, err := grid.NewShape(4, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	puzzle, err := grid.Parse("1000\n0000\n0000\n0002\n", four)
	if err != nil {
		t.Fatal(err)
	}

	res, err := Solve(puzzle, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Solved || !res.Grid.IsValid() || res.Grid.EmptyCount() != 0 {
		t.Error("4x4 puzzle should solve to a valid complete grid")
	}
}
