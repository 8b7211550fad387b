// SPDX-License-Identifier: MIT
// Package: rigidity/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ MinStarNodes (else ErrTooFewVertices).
//   • The hub is the first vertex of the component; leaves follow it.

package builder

import "github.com/katalvlaran/rigidity/bitgraph"

// Star returns a Constructor that appends a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(b *bitgraph.Builder, _ builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		hub, err := addVertices(MethodStar, b, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(MethodStar, b, hub, hub+i); err != nil {
				return err
			}
		}
		return nil
	}
}
