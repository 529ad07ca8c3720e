package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/backtrack"
	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/csp"
	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/grid"
)

var (
	solveEngine   string
	solveSize     int
	solveBox      int
	solveDiagonal bool
	solveLimit    int
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <puzzle-file>",
		Short: "Solve a single Sudoku puzzle",
		Long: `Solve a puzzle from a text file: one row per line, digits for given
values and '0' for blanks. Pass "-" to read standard input.

Examples:
  sudoku solve puzzle.txt
  sudoku solve --engine backtrack puzzle.txt
  sudoku solve --diagonal --limit 100000 puzzle.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solveEngine, "engine", "e", "csp", "Solving engine: csp or backtrack")
	solveCmd.Flags().IntVar(&solveSize, "size", 9, "Grid size N")
	solveCmd.Flags().IntVar(&solveBox, "box", 3, "Box size B (must divide N)")
	solveCmd.Flags().BoolVar(&solveDiagonal, "diagonal", false, "Constrain both main diagonals")
	solveCmd.Flags().IntVar(&solveLimit, "limit", 0, "Node budget, 0 = unbounded")

	rootCmd.AddCommand(solveCmd)
}

func loadPuzzle(path string, shape *grid.Shape) (*grid.Grid, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return grid.Parse(string(data), shape)
	}
	return grid.LoadFile(path, shape)
}

func runSolve(cmd *cobra.Command, args []string) error {
	shape, err := makeShape(solveSize, solveBox, solveDiagonal)
	if err != nil {
		return err
	}

	puzzle, err := loadPuzzle(args[0], shape)
	if err != nil {
		return err
	}
	logger.Debug("puzzle loaded", "shape", shape, "clues", puzzle.ClueCount())

	switch solveEngine {
	case "csp":
		return solveCSP(puzzle)
	case "backtrack":
		return solveBacktrack(puzzle)
	default:
		return fmt.Errorf("unknown engine %q (use csp or backtrack)", solveEngine)
	}
}

func solveCSP(puzzle *grid.Grid) error {
	cfg, err := csp.NewConfiguration(puzzle, nil)
	if err != nil {
		return err
	}

	start := time.Now()
	res := csp.Solve(cfg, &csp.Options{NodeLimit: solveLimit})
	elapsed := time.Since(start)

	logger.Info("search finished",
		"engine", "csp",
		"solved", res.Solved,
		"generated", res.Generated,
		"processed", res.Processed,
		"dur", elapsed.Round(time.Microsecond))

	if res.LimitReached {
		fmt.Printf("Gave up after %d configurations (limit %d).\n", res.Processed, solveLimit)
		return nil
	}
	if !res.Solved {
		fmt.Println("No solution exists.")
		return nil
	}
	fmt.Println(res.Grid.Format())
	fmt.Printf("Generated %d configurations, processed %d.\n", res.Generated, res.Processed)
	return nil
}

func solveBacktrack(puzzle *grid.Grid) error {
	start := time.Now()
	res, err := backtrack.Solve(puzzle, &backtrack.Options{CallLimit: solveLimit})
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	logger.Info("search finished",
		"engine", "backtrack",
		"solved", res.Solved,
		"calls", res.Calls,
		"backtracks", res.Backtracks,
		"dur", elapsed.Round(time.Microsecond))

	if res.LimitReached {
		fmt.Printf("Gave up after %d calls (limit %d).\n", res.Calls, solveLimit)
		return nil
	}
	if !res.Solved {
		fmt.Println("No solution exists.")
		return nil
	}
	fmt.Println(res.Grid.Format())
	fmt.Printf("%d calls, %d backtracks.\n", res.Calls, res.Backtracks)
	return nil
}
