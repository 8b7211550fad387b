// SPDX-License-Identifier: MIT

// Package henneberg checks whether a graph can be dismantled by reversing
// Henneberg type-I moves, i.e. by repeatedly deleting a vertex of degree
// exactly k.
//
// A graph built purely by type-I moves (each new vertex joined to k existing
// ones) peels back to at most k vertices, so a larger residual proves the
// graph is not of that form. It is a cheap necessary-condition filter that
// complements, and never replaces, the exact sparsity checks.
//
// Complexity: O(n²) time, O(1) extra space.
package henneberg

import (
	"math/bits"

	"github.com/katalvlaran/rigidity/bitgraph"
)

// Residual peels g and returns the vertices that remain active.
//
// Starting with every vertex active and scheduled, it repeatedly takes the
// lowest scheduled vertex; if that vertex has exactly k active neighbours it
// is removed and those neighbours are rescheduled, since their degrees
// dropped.
func Residual(g *bitgraph.Graph, k int) uint64 {
	active := g.AllMask()
	pending := active
	for pending != 0 {
		i := bits.TrailingZeros64(pending)
		pending &^= 1 << uint(i)
		nbrs := g.Row(i) & active
		if bits.OnesCount64(nbrs) == k {
			pending |= nbrs
			active &^= 1 << uint(i)
		}
	}
	return active
}

// Reducible reports whether peeling leaves at most k vertices.
func Reducible(g *bitgraph.Graph, k int) bool {
	return bits.OnesCount64(Residual(g, k)) <= k
}
