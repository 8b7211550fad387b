// SPDX-License-Identifier: MIT

package pebble

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rigidity/bitgraph"
)

// ErrDomain is returned for parameters outside 1 ≤ k, 0 ≤ l < 2k.
var ErrDomain = errors.New("pebble: require integer 1 <= k and 0 <= l < 2k")

// Overconstrained is the value Run reports once an edge cannot be accepted.
const Overconstrained = -1

// Status classifies the signed pebble-game result.
type Status int

const (
	// StatusOverconstrained: some subgraph spans more than k·n' - l edges.
	StatusOverconstrained Status = iota
	// StatusTight: (k,l)-sparse with exactly k·n - l edges.
	StatusTight
	// StatusSparse: (k,l)-sparse with spare degrees of freedom.
	StatusSparse
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOverconstrained:
		return "overconstrained"
	case StatusTight:
		return "tight"
	case StatusSparse:
		return "sparse"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Verdict is the classified outcome of a pebble game. Dof is the number of
// free pebbles beyond l and is meaningful only for StatusSparse.
type Verdict struct {
	Status Status
	Dof    int
}

// Classify maps a signed Run result to a Verdict.
func Classify(v int) Verdict {
	switch {
	case v < 0:
		return Verdict{Status: StatusOverconstrained}
	case v == 0:
		return Verdict{Status: StatusTight}
	default:
		return Verdict{Status: StatusSparse, Dof: v}
	}
}

// Game holds the pebble state for one run. The zero value is not usable;
// create one with New. A Game is not safe for concurrent use, but it is a
// plain value with no heap state, so each caller can own a copy.
type Game struct {
	k, l, n int
	pebbles [bitgraph.MaxVertices]int
	debt    [bitgraph.MaxVertices]uint64
}
