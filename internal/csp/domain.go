// Package csp implements the constraint-propagation search engine:
// a puzzle is converted once into a Configuration of cells sharing a
// read-only ConstraintGraph, and a depth-first driver explores copied
// Configurations, pruning candidate values by forward checking.
package csp

import "math/bits"

// Domain is the set of values a cell could still legally take,
// packed as a bitmask: bit v-1 represents value v.
type Domain uint64

// FullDomain returns the domain {1..n}.
func FullDomain(n int) Domain {
	if n >= 64 {
		return Domain(^uint64(0))
	}
	return Domain(uint64(1)<<n - 1)
}

// SingletonDomain returns the domain {v}.
func SingletonDomain(v int) Domain {
	return Domain(uint64(1) << (v - 1))
}

// Has reports whether v is still a candidate.
func (d Domain) Has(v int) bool {
	if v < 1 || v > 64 {
		return false
	}
	return d&(1<<(v-1)) != 0
}

// Remove returns the domain with v excluded.
func (d Domain) Remove(v int) Domain {
	return d &^ (1 << (v - 1))
}

// Count returns the number of remaining candidates.
func (d Domain) Count() int {
	return bits.OnesCount64(uint64(d))
}

// Single returns the sole remaining candidate.
// The second result is false unless exactly one candidate remains.
func (d Domain) Single() (int, bool) {
	if d == 0 || d&(d-1) != 0 {
		return 0, false
	}
	return bits.TrailingZeros64(uint64(d)) + 1, true
}

// Values returns the remaining candidates in ascending order.
func (d Domain) Values() []int {
	vals := make([]int, 0, d.Count())
	for m := uint64(d); m != 0; m &= m - 1 {
		vals = append(vals, bits.TrailingZeros64(m)+1)
	}
	return vals
}
