// SPDX-License-Identifier: MIT
// Package: rigidity/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity: O(n²) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/rigidity/bitgraph"

const minCompleteNodes = 1

// Complete returns a Constructor that appends the complete graph K_n.
func Complete(n int) Constructor {
	return func(b *bitgraph.Builder, _ builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		first, err := addVertices(MethodComplete, b, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(MethodComplete, b, first+i, first+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
