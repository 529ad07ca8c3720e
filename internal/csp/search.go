package csp

import "sort"

// Options configures a search run.
type Options struct {
	// NodeLimit caps the number of configurations processed; 0 means
	// unbounded. The engine itself carries no timeout; a caller that
	// wants to bound a run sets this and treats LimitReached as
	// "unknown" rather than "unsatisfiable".
	NodeLimit int

	// Tracer, when non-nil, observes every processed configuration.
	Tracer Tracer
}

// DefaultOptions returns an unbounded, untraced search.
func DefaultOptions() *Options {
	return &Options{}
}

// Solve explores the search tree rooted at the given configuration and
// returns the first solution found, or exhaustion.
//
// The driver keeps an explicit stack of pending configurations. Each
// iteration pops one, forward-checks it, and either discards it (dead
// end), returns it (complete), or expands it: the most constrained
// unassigned cell is chosen and one child per candidate value is
// pushed. Children are pushed in reverse of the LCV try order, so that
// popping visits the least constraining value first. Depth-first,
// deterministic.
func Solve(root *Configuration, opts *Options) Result {
	if opts == nil {
		opts = DefaultOptions()
	}

	var res Result
	stack := []*Configuration{root}
	res.Generated = 1

	for len(stack) > 0 {
		if opts.NodeLimit > 0 && res.Processed >= opts.NodeLimit {
			res.LimitReached = true
			break
		}

		last := len(stack) - 1
		cfg := stack[last]
		stack[last] = nil // the popped configuration is never revisited
		stack = stack[:last]
		res.Processed++

		if !Propagate(cfg) {
			trace(opts.Tracer, cfg, Pruned)
			continue
		}
		if cfg.Complete() {
			res.Solved = true
			res.Grid = cfg.Grid()
			trace(opts.Tracer, cfg, Solved)
			return res
		}

		id, candidates := cfg.MRVCell()
		ordered := orderValues(cfg, id, candidates)
		for i := len(ordered) - 1; i >= 0; i-- {
			stack = append(stack, cfg.Branch(id, ordered[i]))
			res.Generated++
		}
		trace(opts.Tracer, cfg, Expanded)
	}

	return res
}

func trace(t Tracer, c *Configuration, o Outcome) {
	if t != nil {
		t.Trace(c, o)
	}
}

// MRVCell finds the unassigned cell with the fewest remaining candidates
// (most constrained variable) and returns its id and candidate values in
// ascending order. Ties go to the lowest id, which the ascending scan
// gives for free. Returns (-1, nil) when every cell is assigned.
func (c *Configuration) MRVCell() (int, []int) {
	best, bestCount := -1, -1
	for i := range c.cells {
		if c.cells[i].Assigned() {
			continue
		}
		n := c.cells[i].Domain.Count()
		if best == -1 || n < bestCount {
			best, bestCount = i, n
			if n <= 1 {
				break
			}
		}
	}
	if best == -1 {
		return -1, nil
	}
	return best, c.cells[best].Domain.Values()
}

// orderValues returns the least-constraining-value try order: candidates
// ascending by the number of unassigned neighbors whose domain still
// contains the value, ties broken by the value itself. The output is
// stable for a fixed configuration.
func orderValues(c *Configuration, id int, vals []int) []int {
	type scored struct {
		value     int
		conflicts int
	}
	ranked := make([]scored, len(vals))
	for i, v := range vals {
		n := 0
		for _, nb := range c.graph.Neighbors(id) {
			if !c.cells[nb].Assigned() && c.cells[nb].Domain.Has(v) {
				n++
			}
		}
		ranked[i] = scored{value: v, conflicts: n}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].conflicts != ranked[j].conflicts {
			return ranked[i].conflicts < ranked[j].conflicts
		}
		return ranked[i].value < ranked[j].value
	})

	out := make([]int, len(ranked))
	for i, r := range ranked {
		out[i] = r.value
	}
	return out
}
