// Package experiment runs the solving engines over puzzle corpora and
// records per-run statistics, so the two search strategies can be
// compared on the same instances.
package experiment

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/backtrack"
	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/csp"
	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/grid"
)

// Engine names accepted by Options.Engine.
const (
	EngineCSP       = "csp"
	EngineBacktrack = "backtrack"
	EngineBoth      = "both"
)

var ErrUnknownEngine = errors.New("unknown engine")

// Instance is one named puzzle.
type Instance struct {
	Name string
	Grid *grid.Grid
}

// Options configures an experiment.
type Options struct {
	Engine    string // EngineCSP, EngineBacktrack or EngineBoth
	NodeLimit int    // per-run node or call budget (0 = unbounded)
	Runs      int    // repetitions per instance, for timing stability
}

// DefaultOptions runs both engines once per instance, unbounded.
func DefaultOptions() *Options {
	return &Options{
		Engine: EngineBoth,
		Runs:   1,
	}
}

// Record is the outcome of one solver run on one instance. Nodes and
// Branches depend on the engine: the constraint engine reports
// configurations processed and generated, the baseline reports
// recursive calls and backtracks.
type Record struct {
	RunID    uuid.UUID
	Instance string
	Engine   string
	Round    int
	Solved   bool
	Limited  bool
	Nodes    int
	Branches int
	Duration time.Duration
}

// Runner executes solver runs. The constraint graph is cached across
// instances, so a corpus of same-shape puzzles builds it only once.
type Runner struct {
	options *Options
	graph   *csp.ConstraintGraph
}

// NewRunner creates a runner with the given options.
func NewRunner(options *Options) *Runner {
	if options == nil {
		options = DefaultOptions()
	}
	return &Runner{options: options}
}

// Run solves every instance with the selected engines and returns one
// record per run, in instance order.
func (r *Runner) Run(instances []Instance) ([]Record, error) {
	engines, err := selectEngines(r.options.Engine)
	if err != nil {
		return nil, err
	}

	runs := max(r.options.Runs, 1)
	records := make([]Record, 0, len(instances)*len(engines)*runs)
	for _, inst := range instances {
		for _, engine := range engines {
			for round := range runs {
				rec, err := r.runOnce(inst, engine, round)
				if err != nil {
					return nil, fmt.Errorf("run %s on %s: %w", engine, inst.Name, err)
				}
				records = append(records, rec)
			}
		}
	}
	return records, nil
}

func (r *Runner) runOnce(inst Instance, engine string, round int) (Record, error) {
	rec := Record{
		RunID:    uuid.New(),
		Instance: inst.Name,
		Engine:   engine,
		Round:    round,
	}

	switch engine {
	case EngineCSP:
		cfg, err := csp.NewConfiguration(inst.Grid, r.graphFor(inst.Grid.Shape()))
		if err != nil {
			return rec, err
		}
		start := time.Now()
		res := csp.Solve(cfg, &csp.Options{NodeLimit: r.options.NodeLimit})
		rec.Duration = time.Since(start)
		rec.Solved = res.Solved
		rec.Limited = res.LimitReached
		rec.Nodes = res.Processed
		rec.Branches = res.Generated

	case EngineBacktrack:
		start := time.Now()
		res, err := backtrack.Solve(inst.Grid, &backtrack.Options{CallLimit: r.options.NodeLimit})
		rec.Duration = time.Since(start)
		if err != nil {
			return rec, err
		}
		rec.Solved = res.Solved
		rec.Limited = res.LimitReached
		rec.Nodes = res.Calls
		rec.Branches = res.Backtracks

	default:
		return rec, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
	return rec, nil
}

func (r *Runner) graphFor(shape *grid.Shape) *csp.ConstraintGraph {
	if r.graph == nil || !r.graph.Shape().Equal(shape) {
		r.graph = csp.NewConstraintGraph(shape)
	}
	return r.graph
}

func selectEngines(engine string) ([]string, error) {
	switch engine {
	case EngineBoth, "":
		return []string{EngineCSP, EngineBacktrack}, nil
	case EngineCSP, EngineBacktrack:
		return []string{engine}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

// LoadDir loads every .txt puzzle in dir as an instance, sorted by file
// name. All puzzles must fit the given shape (nil means 9x9).
func LoadDir(dir string, shape *grid.Shape) ([]Instance, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load instances: %w", err)
	}

	var instances []Instance
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		g, err := grid.LoadFile(filepath.Join(dir, entry.Name()), shape)
		if err != nil {
			return nil, err
		}
		instances = append(instances, Instance{
			Name: strings.TrimSuffix(entry.Name(), ".txt"),
			Grid: g,
		})
	}
	if len(instances) == 0 {
		return nil, fmt.Errorf("load instances: no .txt puzzles in %s", dir)
	}
	return instances, nil
}
