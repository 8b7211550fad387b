// SPDX-License-Identifier: MIT
// Package: rigidity/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ MinCycleNodes (else ErrTooFewVertices).
//   • Ring edges i-(i+1 mod n) in ascending i.

package builder

import "github.com/katalvlaran/rigidity/bitgraph"

// Cycle returns a Constructor that appends the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *bitgraph.Builder, _ builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		first, err := addVertices(MethodCycle, b, n)
		if err != nil {
			return err
		}
		return addRing(MethodCycle, b, first, n)
	}
}

// addRing connects first..first+n-1 into a cycle.
func addRing(method string, b *bitgraph.Builder, first, n int) error {
	for i := 0; i < n; i++ {
		if err := addEdge(method, b, first+i, first+(i+1)%n); err != nil {
			return err
		}
	}
	return nil
}
