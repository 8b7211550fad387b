// SPDX-License-Identifier: MIT

package sparsity

import "fmt"

// minThreshold is the smallest derived MinVertices: a single edge can never
// violate a bound with l < 2k.
const minThreshold = 2

// Params fixes (k,l) and the subgraph-size threshold for a whole run.
// A subset S is checked only when |S| > MinVertices.
type Params struct {
	K, L        Rational
	MinVertices int
}

// NewParams validates k and l and derives MinVertices when minVertices is 0.
// An explicit threshold of 1 also checks single edges, which matters only
// when l ≥ 2k.
func NewParams(k, l Rational, minVertices int) (Params, error) {
	var err error
	if k, err = NewRational(k.Num, k.Den); err != nil {
		return Params{}, fmt.Errorf("NewParams: k: %w", err)
	}
	if l, err = NewRational(l.Num, l.Den); err != nil {
		return Params{}, fmt.Errorf("NewParams: l: %w", err)
	}
	if k.Num <= 0 {
		return Params{}, fmt.Errorf("NewParams: k=%s: %w", k, ErrNonPositiveK)
	}
	p := Params{K: k, L: l, MinVertices: minVertices}
	switch {
	case minVertices == 0:
		p.MinVertices = p.deriveMinVertices()
	case minVertices < 0:
		return Params{}, fmt.Errorf("NewParams: n=%d: %w", minVertices, ErrMinVertices)
	}
	return p, nil
}

// DefaultL returns k(k+1)/2, the l that makes (k,l)-tight graphs the
// generically rigid frameworks of dimension k.
func DefaultL(k Rational) Rational {
	l, _ := NewRational(k.Num*(k.Num+k.Den), 2*k.Den*k.Den)
	return l
}

// deriveMinVertices returns the largest size n ≥ max(⌊k⌋, 2) such that the
// complete graph on n vertices is not overconstrained while K_{n+1} is.
// Subsets of at most that size can never violate the bound.
func (p Params) deriveMinVertices() int {
	n := int(p.K.Floor())
	if n < minThreshold {
		n = minThreshold
	}
	for !p.TooManyEdges(n+1, n*(n+1)/2) {
		n++
	}
	return n
}

// TooManyEdges reports whether m edges on n vertices exceed k·n - l.
// It evaluates kd·ld·m > kn·ld·n - ln·kd in exact integer arithmetic.
func (p Params) TooManyEdges(n, m int) bool {
	kn, kd, ln, ld := p.K.Num, p.K.Den, p.L.Num, p.L.Den
	return kd*ld*int64(m) > kn*ld*int64(n)-ln*kd
}

// MaxEdges returns ⌊k·n - l⌋, the edge count of a (k,l)-tight graph on n
// vertices, or n(n-1)/2 when n does not exceed MinVertices.
func (p Params) MaxEdges(n int) int {
	if n <= p.MinVertices {
		return n * (n - 1) / 2
	}
	kn, kd, ln, ld := p.K.Num, p.K.Den, p.L.Num, p.L.Den
	return int((kn*ld*int64(n) - ln*kd) / (kd * ld))
}

// IntegerPebbleRegime reports whether the pebble game decides these
// parameters exactly: integer k and l with 0 ≤ l < 2k, and a threshold no
// larger than k+1 so that it agrees with the subset walks.
func (p Params) IntegerPebbleRegime() bool {
	return p.K.IsInt() && p.L.IsInt() &&
		p.L.Num >= 0 && p.L.Num < 2*p.K.Num &&
		int64(p.MinVertices) <= p.K.Num+1
}

// String renders the parameters the way the generator banner does.
func (p Params) String() string {
	return fmt.Sprintf("K%sL%sN%d", p.K, p.L, p.MinVertices)
}

// Hints bounds what a generator needs to explore for graphs of order maxn.
type Hints struct {
	// MinEdges and MaxEdges bound the final edge count; both equal the tight
	// count when the generator only wants tight graphs.
	MinEdges, MaxEdges int

	// MinDegree is ⌊k⌋: a vertex of smaller degree in a tight graph would
	// leave the rest overconstrained.
	MinDegree int
}

// Hints returns generator bounds for final graphs of order maxn.
func (p Params) Hints(maxn int) Hints {
	m := p.MaxEdges(maxn)
	h := Hints{MinEdges: m, MaxEdges: m}
	if int64(maxn) > p.K.Floor() {
		h.MinDegree = int(p.K.Floor())
	}
	return h
}
