// SPDX-License-Identifier: MIT
// Package: rigidity/builder
//
// impl_bipartite.go: implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side first (n1 vertices), then right side; every cross pair once.

package builder

import "github.com/katalvlaran/rigidity/bitgraph"

const minPartition = 1

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *bitgraph.Builder, _ builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "n1", n1, minPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "n2", n2, minPartition); err != nil {
			return err
		}
		left, err := addVertices(MethodCompleteBipartite, b, n1+n2)
		if err != nil {
			return err
		}
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err = addEdge(MethodCompleteBipartite, b, left+i, right+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
