// SPDX-License-Identifier: MIT
// Package: rigidity/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ MinWheelNodes (else ErrTooFewVertices).
//   • Rim C_{n-1} on the first n-1 vertices, hub last, spokes in rim order.
//
// A wheel has 2(n-1) edges, one more than a Laman graph on n vertices, so it
// is a convenient minimally overconstrained fixture.

package builder

import "github.com/katalvlaran/rigidity/bitgraph"

// Wheel returns a Constructor that appends the wheel W_n.
func Wheel(n int) Constructor {
	return func(b *bitgraph.Builder, _ builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		first, err := addVertices(MethodWheel, b, n)
		if err != nil {
			return err
		}
		rim := n - 1
		if err = addRing(MethodWheel, b, first, rim); err != nil {
			return err
		}
		hub := first + rim
		for i := 0; i < rim; i++ {
			if err = addEdge(MethodWheel, b, hub, first+i); err != nil {
				return err
			}
		}
		return nil
	}
}
