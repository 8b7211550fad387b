// SPDX-License-Identifier: MIT
// Package: rigidity/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ MinPathNodes (else ErrTooFewVertices).
//   • Edges i-(i+1) for i = 0..n-2 in ascending order.

package builder

import "github.com/katalvlaran/rigidity/bitgraph"

// Path returns a Constructor that appends the simple path P_n.
func Path(n int) Constructor {
	return func(b *bitgraph.Builder, _ builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		first, err := addVertices(MethodPath, b, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(MethodPath, b, first+i, first+i+1); err != nil {
				return err
			}
		}
		return nil
	}
}
