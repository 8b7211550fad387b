// SPDX-License-Identifier: MIT

package pebble

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/rigidity/bitgraph"
)

// New returns a Game for the given (k,l) with no vertices.
func New(k, l int) (*Game, error) {
	if k < 1 || l < 0 || l >= 2*k {
		return nil, fmt.Errorf("New(k=%d, l=%d): %w", k, l, ErrDomain)
	}
	return &Game{k: k, l: l}, nil
}

// Reset clears the state and gives each of n vertices k pebbles.
func (p *Game) Reset(n int) {
	p.n = n
	for i := 0; i < n; i++ {
		p.pebbles[i] = p.k
		p.debt[i] = 0
	}
}

// Pebbles returns the free pebbles at vertex i.
func (p *Game) Pebbles(i int) int { return p.pebbles[i] }

// Debt returns the set of vertices that i has spent a pebble towards.
func (p *Game) Debt(i int) uint64 { return p.debt[i] }

// Free returns the total number of free pebbles.
func (p *Game) Free() int {
	total := 0
	for i := 0; i < p.n; i++ {
		total += p.pebbles[i]
	}
	return total
}

// Play runs the game on g from a fresh state and returns the signed result:
// Overconstrained, 0 for tight, or the number of spare degrees of freedom.
// Edges are processed in g.Edges() order. A graph too small to hold l
// pebbles (k·n < l) has no edges to reject and reports 0.
func (p *Game) Play(g *bitgraph.Graph) int {
	n := g.N()
	p.Reset(n)
	for i := 1; i < n; i++ {
		for lower := g.Row(i) & bitgraph.AllMask(i); lower != 0; lower &= lower - 1 {
			if !p.AddEdge(i, bits.TrailingZeros64(lower)) {
				return Overconstrained
			}
		}
	}
	if free := p.Free() - p.l; free > 0 {
		return free
	}
	return 0
}

// AddEdge tries to accept the edge {i,j}. It returns false when l+1 pebbles
// cannot be gathered on its endpoints; the state is then no longer
// meaningful and the graph is overconstrained.
func (p *Game) AddEdge(i, j int) bool {
	needed := p.l + 1 - p.pebbles[i] - p.pebbles[j]
	allowed := bitgraph.AllMask(p.n) &^ (1<<uint(i) | 1<<uint(j))

	for needed > 0 && p.pebbles[i] < p.k {
		visit := allowed
		if !p.search(i, &visit) {
			break
		}
		p.pebbles[i]++
		needed--
	}
	for needed > 0 && p.pebbles[j] < p.k {
		visit := allowed
		if !p.search(j, &visit) {
			break
		}
		p.pebbles[j]++
		needed--
	}
	if needed > 0 {
		return false
	}

	if p.pebbles[i] > p.pebbles[j] {
		p.pebbles[i]--
		p.debt[i] |= 1 << uint(j)
	} else {
		p.pebbles[j]--
		p.debt[j] |= 1 << uint(i)
	}
	return true
}

// search looks for a free pebble reachable from v along debt edges, visiting
// only vertices still in visit. On success every debt edge on the path is
// reversed and the pebble is taken; the caller credits it to the start vertex.
func (p *Game) search(v int, visit *uint64) bool {
	for p.debt[v]&*visit != 0 {
		w := bits.TrailingZeros64(p.debt[v] & *visit)
		*visit &^= 1 << uint(w)

		found := false
		if p.pebbles[w] > 0 {
			p.pebbles[w]--
			found = true
		} else {
			found = p.search(w, visit)
		}
		if found {
			p.debt[v] &^= 1 << uint(w)
			p.debt[w] |= 1 << uint(v)
			return true
		}
	}
	return false
}

// Run plays the (k,l) pebble game on g. It is the one-shot form of
// New(k, l) followed by Play(g).
func Run(g *bitgraph.Graph, k, l int) (int, error) {
	p, err := New(k, l)
	if err != nil {
		return 0, err
	}
	return p.Play(g), nil
}
