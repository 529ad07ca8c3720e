package csp

// Propagate runs one forward-checking pass over the configuration and
// reports whether it is still satisfiable.
//
// The pass is seeded with the cells assigned at the moment of the call.
// Each seed's value is removed from the domain of every unassigned
// neighbor; a neighbor left with no candidates makes the configuration a
// dead end and the pass stops immediately. A neighbor whose domain
// collapses to exactly one value takes that value as its assignment, but
// is not added to the seeds: each call is a single sweep, not a
// propagate-to-fixpoint arc-consistency pass. Strengthening this would
// change node counts, so the single-sweep behavior is load-bearing.
//
// An assigned neighbor holding the same value as a seed is a direct
// conflict; this is what rejects inputs whose givens already contradict
// each other before any branching happens.
func Propagate(c *Configuration) bool {
	seeds := make([]int, 0, len(c.cells))
	for i := range c.cells {
		if c.cells[i].Assigned() {
			seeds = append(seeds, i)
		}
	}

	for _, id := range seeds {
		v := c.cells[id].Value
		for _, nb := range c.graph.Neighbors(id) {
			n := &c.cells[nb]
			if n.Assigned() {
				if n.Value == v {
					return false
				}
				continue
			}
			if !n.Restrict(v) {
				continue
			}
			switch n.Domain.Count() {
			case 0:
				return false
			case 1:
				w, _ := n.Domain.Single()
				n.Assign(w)
			}
		}
	}

	return true
}
