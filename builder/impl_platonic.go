// SPDX-License-Identifier: MIT
// Package: rigidity/builder
//
// impl_platonic.go: implementation of PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation.
//   • Shell edges in the pre-sorted order of variants_platonic.go.
//   • withCenter appends a hub after the shell, joined to every shell vertex.
//
// The triangulated solids (tetrahedron, octahedron, icosahedron) are
// generically rigid in 3-space; cube and dodecahedron are not.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rigidity/bitgraph"
)

// PlatonicSolid returns a Constructor that appends the chosen Platonic shell,
// optionally stellated with a central hub.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(b *bitgraph.Builder, _ builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %v: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}
		total := n
		if withCenter {
			total++
		}
		first, err := addVertices(MethodPlatonicSolid, b, total)
		if err != nil {
			return err
		}
		for _, e := range platonicEdgeSets[name] {
			if err = addEdge(MethodPlatonicSolid, b, first+e.U, first+e.V); err != nil {
				return err
			}
		}
		if withCenter {
			hub := first + n
			for i := 0; i < n; i++ {
				if err = addEdge(MethodPlatonicSolid, b, hub, first+i); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
