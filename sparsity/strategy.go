// SPDX-License-Identifier: MIT

package sparsity

import (
	"fmt"

	"github.com/katalvlaran/rigidity/bitgraph"
	"github.com/katalvlaran/rigidity/henneberg"
	"github.com/katalvlaran/rigidity/pebble"
)

// Kind names a pruning strategy.
type Kind int

const (
	// KindNone never prunes.
	KindNone Kind = iota
	// KindCombination walks fixed-size subsets with a revolving-door Gray
	// code; cheapest when k < 2 keeps the relevant subsets small.
	KindCombination
	// KindBitmask walks the whole powerset with a binary Gray code;
	// cheapest when k ≥ 2 and violations must be checked at every size.
	KindBitmask
	// KindPebble runs the Lee–Streinu pebble game on the whole graph.
	KindPebble
	// KindHenneberg rejects graphs not decomposable by type-I moves.
	KindHenneberg
)

// kindNames maps every Kind to its flag spelling.
var kindNames = map[Kind]string{
	KindNone:        "none",
	KindCombination: "combination",
	KindBitmask:     "bitmask",
	KindPebble:      "pebble",
	KindHenneberg:   "henneberg",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("ParseKind(%q): %w", s, ErrStrategyDomain)
}

// Strategy decides whether a candidate must be rejected.
//
// Prune examines g as the newest step of a vertex-by-vertex construction:
// every subset avoiding vertex g.N()-1 is assumed to have passed at an
// earlier step. maxn is the order the construction is heading for.
// Implementations are stateless and safe for concurrent use.
type Strategy interface {
	Kind() Kind
	Params() Params
	Prune(g *bitgraph.Graph, maxn int) bool
}

// wholeGraph is implemented by strategies whose check already covers every
// subset, so IsSparse need not replay the construction.
type wholeGraph interface {
	overconstrained(g *bitgraph.Graph) bool
}

// IsSparse reports whether g passes s as a finished graph. It replays the
// vertex-by-vertex construction, checking every prefix, which visits each
// subset exactly once.
func IsSparse(s Strategy, g *bitgraph.Graph) bool {
	if w, ok := s.(wholeGraph); ok {
		return !w.overconstrained(g)
	}
	n := g.N()
	for i := 1; i <= n; i++ {
		prefix, err := g.Prefix(i)
		if err != nil {
			panic(fmt.Sprintf("sparsity: prefix %d of %d: %v", i, n, err))
		}
		if s.Prune(prefix, n) {
			return false
		}
	}
	return true
}

// precheck handles the cases every strategy shares: small graphs are
// sparse, and an overconstrained whole graph is rejected outright.
// done is true when the verdict is already known.
func precheck(p Params, g *bitgraph.Graph) (prune, done bool) {
	n := g.N()
	if n <= p.MinVertices {
		return false, true
	}
	if p.TooManyEdges(n, g.EdgeCount()) {
		return true, true
	}
	return false, false
}

type noneStrategy struct{ p Params }

func (s noneStrategy) Kind() Kind                           { return KindNone }
func (s noneStrategy) Params() Params                       { return s.p }
func (s noneStrategy) Prune(*bitgraph.Graph, int) bool      { return false }
func (s noneStrategy) overconstrained(*bitgraph.Graph) bool { return false }

type combinationStrategy struct{ p Params }

func (s combinationStrategy) Kind() Kind     { return KindCombination }
func (s combinationStrategy) Params() Params { return s.p }
func (s combinationStrategy) Prune(g *bitgraph.Graph, _ int) bool {
	return pruneCombination(s.p, g)
}

type bitmaskStrategy struct{ p Params }

func (s bitmaskStrategy) Kind() Kind     { return KindBitmask }
func (s bitmaskStrategy) Params() Params { return s.p }
func (s bitmaskStrategy) Prune(g *bitgraph.Graph, _ int) bool {
	return pruneBitmask(s.p, g)
}

type pebbleStrategy struct {
	p    Params
	k, l int
}

func (s pebbleStrategy) Kind() Kind     { return KindPebble }
func (s pebbleStrategy) Params() Params { return s.p }

// Prune runs the pebble game on the whole candidate. It checks every subset,
// not only those containing the newest vertex, so it needs no history.
func (s pebbleStrategy) Prune(g *bitgraph.Graph, _ int) bool {
	return s.overconstrained(g)
}

func (s pebbleStrategy) overconstrained(g *bitgraph.Graph) bool {
	if prune, done := precheck(s.p, g); done {
		return prune
	}
	game, err := pebble.New(s.k, s.l)
	if err != nil {
		panic(fmt.Sprintf("sparsity: pebble strategy selected outside its domain: %v", err))
	}
	return game.Play(g) < 0
}

type hennebergStrategy struct {
	p Params
	k int
}

func (s hennebergStrategy) Kind() Kind     { return KindHenneberg }
func (s hennebergStrategy) Params() Params { return s.p }

// Prune rejects overconstrained candidates at every size and, once the
// final order is reached, candidates that do not peel down to k vertices.
func (s hennebergStrategy) Prune(g *bitgraph.Graph, maxn int) bool {
	if prune, done := precheck(s.p, g); done {
		return prune
	}
	if g.N() != maxn {
		return false
	}
	return !henneberg.Reducible(g, s.k)
}
