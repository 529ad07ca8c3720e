// Package cmd implements the sudoku command line interface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/grid"
)

var (
	logLevel string
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve, benchmark, and generate Sudoku puzzles",
	Long: `A constraint-satisfaction Sudoku toolkit.

The solve command runs a single puzzle through the forward-checking
engine or the plain backtracking baseline. The bench command runs a
directory of puzzles through both engines and records search effort.
The gen command produces new puzzles.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(logLevel)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	// Logs go to stderr so puzzle output on stdout stays pipeable.
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// makeShape builds the puzzle geometry from command flags.
func makeShape(size, box int, diagonal bool) (*grid.Shape, error) {
	if size == 9 && box == 3 {
		if diagonal {
			return grid.Diagonal9(), nil
		}
		return grid.Standard9(), nil
	}
	shape, err := grid.NewShape(size, box, diagonal)
	if err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return shape, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
