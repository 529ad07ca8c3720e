package cmd

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/experiment"
)

var (
	benchEngine   string
	benchSize     int
	benchBox      int
	benchDiagonal bool
	benchLimit    int
	benchRuns     int
	benchCSV      string
	benchPlot     string
	benchProfile  string
)

func init() {
	benchCmd := &cobra.Command{
		Use:   "bench <puzzle-dir>",
		Short: "Compare solving engines over a directory of puzzles",
		Long: `Run every .txt puzzle in a directory through the selected engines and
report search effort per instance.

Examples:
  sudoku bench puzzles/
  sudoku bench --engine csp --runs 5 --csv results.csv puzzles/
  sudoku bench --plot effort.png --profile cpu puzzles/`,
		Args: cobra.ExactArgs(1),
		RunE: runBench,
	}

	benchCmd.Flags().StringVarP(&benchEngine, "engine", "e", experiment.EngineBoth, "Engine: csp, backtrack, or both")
	benchCmd.Flags().IntVar(&benchSize, "size", 9, "Grid size N")
	benchCmd.Flags().IntVar(&benchBox, "box", 3, "Box size B (must divide N)")
	benchCmd.Flags().BoolVar(&benchDiagonal, "diagonal", false, "Constrain both main diagonals")
	benchCmd.Flags().IntVar(&benchLimit, "limit", 0, "Node budget per run, 0 = unbounded")
	benchCmd.Flags().IntVar(&benchRuns, "runs", 1, "Repetitions per instance")
	benchCmd.Flags().StringVar(&benchCSV, "csv", "", "Write per-run records to a CSV file")
	benchCmd.Flags().StringVar(&benchPlot, "plot", "", "Write a bar chart of mean nodes (.png, .svg, .pdf)")
	benchCmd.Flags().StringVar(&benchProfile, "profile", "off", "Profiling: off, cpu, or mem")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	switch benchProfile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "off", "":
	default:
		return fmt.Errorf("unknown profile mode %q (use off, cpu, or mem)", benchProfile)
	}

	shape, err := makeShape(benchSize, benchBox, benchDiagonal)
	if err != nil {
		return err
	}

	instances, err := experiment.LoadDir(args[0], shape)
	if err != nil {
		return err
	}
	logger.Info("instances loaded", "dir", args[0], "count", len(instances))

	runner := experiment.NewRunner(&experiment.Options{
		Engine:    benchEngine,
		NodeLimit: benchLimit,
		Runs:      benchRuns,
	})
	records, err := runner.Run(instances)
	if err != nil {
		return err
	}

	fmt.Printf("%-20s %-10s %-8s %10s %10s %12s\n",
		"instance", "engine", "solved", "nodes", "branches", "ms")
	for _, rec := range records {
		solved := fmt.Sprintf("%t", rec.Solved)
		if rec.Limited {
			solved = "limit"
		}
		fmt.Printf("%-20s %-10s %-8s %10d %10d %12.3f\n",
			rec.Instance, rec.Engine, solved, rec.Nodes, rec.Branches,
			float64(rec.Duration.Microseconds())/1000.0)
	}

	if benchCSV != "" {
		if err := experiment.WriteCSVFile(benchCSV, records); err != nil {
			return err
		}
		logger.Info("records written", "path", benchCSV, "rows", len(records))
	}
	if benchPlot != "" {
		if err := experiment.WritePlot(benchPlot, records); err != nil {
			return err
		}
		logger.Info("plot written", "path", benchPlot)
	}
	return nil
}
