package csp

// Outcome is the fate of a configuration popped from the search stack.
// A popped configuration is pruned, solved, or expanded, never revisited.
type Outcome int

const (
	// Pruned means the consistency check failed; the configuration was
	// discarded as a dead end.
	Pruned Outcome = iota

	// Solved means the configuration is consistent and fully assigned.
	Solved

	// Expanded means children were generated for the configuration's
	// branching cell.
	Expanded
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Pruned:
		return "pruned"
	case Solved:
		return "solved"
	case Expanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// Tracer observes the search as it runs. Trace is called once per
// processed configuration, after its outcome is known. Implementations
// must not retain the configuration past the call.
type Tracer interface {
	Trace(c *Configuration, outcome Outcome)
}
