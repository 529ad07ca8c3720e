package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/generator"
)

var (
	genNumber    int
	genClueCount string
	genOutDir    string
	genTimeout   time.Duration
	genSeed      int64
	genDiagonal  bool
	genUnique    bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more Sudoku puzzles with a specified difficulty level.

Examples:
  sudoku gen --clueCount 40
  sudoku gen -n 5 --clueCount 30
  sudoku gen -n 20 --clueCount 28:32 --out puzzles/
  sudoku gen --diagonal --seed 42`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&genNumber, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&genClueCount, "clueCount", "c", fmt.Sprintf("%d", generator.DefaultClueCount), "Number of clues 17-80 or range like 28:32")
	genCmd.Flags().StringVarP(&genOutDir, "out", "o", "", "Output directory for puzzle files")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "Generation timeout per puzzle")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for reproducible puzzles (0 = random)")
	genCmd.Flags().BoolVar(&genDiagonal, "diagonal", false, "Constrain both main diagonals")
	genCmd.Flags().BoolVar(&genUnique, "unique", true, "Require a unique solution")

	rootCmd.AddCommand(genCmd)
}

// parseClueCountRange parses a clue count string which can be:
// - A single number: "32"
// - A range: "28:32"
// Returns min, max, and an error
func parseClueCountRange(s string) (min, max int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) == 1 {
		// Single number
		val, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count: %w", err)
		}
		return val, val, nil
	} else if len(parts) == 2 {
		// Range
		minVal, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count min: %w", err)
		}
		maxVal, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count max: %w", err)
		}
		if minVal > maxVal {
			return 0, 0, fmt.Errorf("clue count min (%d) cannot be greater than max (%d)", minVal, maxVal)
		}
		return minVal, maxVal, nil
	}
	return 0, 0, fmt.Errorf("invalid clue count format: %s (use format like '32' or '28:32')", s)
}

func runGen(cmd *cobra.Command, args []string) error {
	// Parse clue count range
	minClues, maxClues, err := parseClueCountRange(genClueCount)
	if err != nil {
		return err
	}

	// Validate clue count range
	if minClues < generator.MinValidClueCount || minClues > generator.MaxValidClueCount {
		return fmt.Errorf("clue count min (%d) must be between %d and %d", minClues, generator.MinValidClueCount, generator.MaxValidClueCount)
	}
	if maxClues < generator.MinValidClueCount || maxClues > generator.MaxValidClueCount {
		return fmt.Errorf("clue count max (%d) must be between %d and %d", maxClues, generator.MinValidClueCount, generator.MaxValidClueCount)
	}

	// Generation is 9x9 only; the diagonal flag is the one shape choice.
	shape, err := makeShape(9, 3, genDiagonal)
	if err != nil {
		return err
	}

	if genOutDir != "" {
		if err := os.MkdirAll(genOutDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	// Generate puzzles
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range genNumber {
		// Randomly select clue count from range if it's a range
		selectedClueCount := minClues
		if maxClues > minClues {
			selectedClueCount = minClues + rng.Intn(maxClues-minClues+1)
		}

		opts := generator.DefaultOptions(selectedClueCount)
		opts.Timeout = genTimeout
		opts.EnsureUnique = genUnique
		opts.Shape = shape
		if genSeed != 0 {
			// Offset keeps a fixed seed reproducible without making
			// every puzzle in the batch identical.
			opts.Seed = genSeed + int64(i)
		}
		gen := generator.New(opts)

		puzzle, solution, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		logger.Debug("puzzle generated", "index", i+1, "clues", selectedClueCount)

		if genOutDir != "" {
			// Solutions use a .sol extension so puzzle directories can
			// feed the bench command, which picks up .txt files only.
			name := fmt.Sprintf("puzzle_%03d", i+1)
			if err := os.WriteFile(filepath.Join(genOutDir, name+".txt"), []byte(puzzle.Text()), 0o644); err != nil {
				return fmt.Errorf("write puzzle: %w", err)
			}
			if err := os.WriteFile(filepath.Join(genOutDir, name+".sol"), []byte(solution.Text()), 0o644); err != nil {
				return fmt.Errorf("write solution: %w", err)
			}
		} else {
			// Print to console
			fmt.Printf("Puzzle #%d (Clues: %d):\n", i+1, selectedClueCount)
			fmt.Println(puzzle.Format())
			fmt.Println("\nSolution:")
			fmt.Println(solution.Format())
			fmt.Println()
		}
	}

	if genOutDir != "" {
		fmt.Printf("Generated %d puzzle(s) in %s\n", genNumber, genOutDir)
	}
	return nil
}
