// SPDX-License-Identifier: MIT

package sparsity

import (
	"fmt"

	"github.com/katalvlaran/rigidity/bitgraph"
	"github.com/katalvlaran/rigidity/combin"
)

// pruneCombination checks every subset containing the newest vertex, size
// by size from n-1 down to MinVertices+1, with a revolving-door walk.
//
// The walk starts from "every vertex but n-2". For size s the other s-1
// members range over the (s-1)-subsets of {0..n-2}; each step swaps one
// vertex out and one in, so the induced edge count changes by the degree of
// each inside the current mask. A finished walk stands on {0..s-3, n-2} plus
// n-1; dropping n-2 yields the first subset of size s-1.
func pruneCombination(p Params, g *bitgraph.Graph) bool {
	if prune, done := precheck(p, g); done {
		return prune
	}
	n := g.N()
	mask := g.AllMask() &^ (1 << uint(n-2))
	edges := g.EdgeCount() - g.Degree(n-2)

	var walk combin.Revolving
	for size := n - 1; size > p.MinVertices; size-- {
		if p.TooManyEdges(size, edges) {
			return true
		}
		if err := walk.Reset(n-1, size-1); err != nil {
			panic(fmt.Sprintf("sparsity: combination walk for size %d of %d: %v", size, n, err))
		}
		in, out, ok := walk.Next()
		for ; ok; in, out, ok = walk.Next() {
			edges -= g.DegreeIn(out, mask)
			mask ^= 1<<uint(out) | 1<<uint(in)
			edges += g.DegreeIn(in, mask)
			if p.TooManyEdges(size, edges) {
				return true
			}
		}
		edges -= g.DegreeIn(out, mask)
		mask ^= 1 << uint(out)
	}
	return false
}

// pruneBitmask checks every subset containing the newest vertex by walking
// the Gray code over {0..n-2} with vertex n-1 forced in. Each step toggles
// one vertex, moving the size by one and the edge count by that vertex's
// degree inside the mask.
func pruneBitmask(p Params, g *bitgraph.Graph) bool {
	if prune, done := precheck(p, g); done {
		return prune
	}
	n := g.N()
	walk, err := combin.NewGray(n - 1)
	if err != nil {
		panic(fmt.Sprintf("sparsity: gray walk over %d vertices: %v", n-1, err))
	}

	size, edges := 1, 0
	last := uint64(1) << uint(n-1)
	for v, added, ok := walk.Next(); ok; v, added, ok = walk.Next() {
		mask := walk.Mask() | last
		d := g.DegreeIn(v, mask)
		if added {
			size++
			edges += d
		} else {
			size--
			edges -= d
		}
		if size > p.MinVertices && p.TooManyEdges(size, edges) {
			return true
		}
	}
	return false
}
