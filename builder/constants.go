// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/rigidity/bitgraph"
)

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodGrid              = "Grid"
	MethodPlatonicSolid     = "PlatonicSolid"
	MethodHenneberg         = "Henneberg"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest cycle without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest path with an edge.
const MinPathNodes = 2

// MinStarNodes is one center plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is a triangle rim plus a hub.
const MinWheelNodes = 4

// MinGridDim is the smallest allowed grid dimension; 1×1 has no edges.
const MinGridDim = 1

// MinProbability and MaxProbability bound p in RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// validateMin wraps ErrTooFewVertices when got < min.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}
	return nil
}

// addVertices appends n isolated vertices to b and returns the index of the
// first one. It fails before mutating b when they would not fit.
func addVertices(method string, b *bitgraph.Builder, n int) (int, error) {
	first := b.N()
	if first+n > bitgraph.MaxVertices {
		return 0, fmt.Errorf("%s: %d+%d vertices exceed %d: %w",
			method, first, n, bitgraph.MaxVertices, ErrConstructFailed)
	}
	for i := 0; i < n; i++ {
		if _, err := b.AddVertex(); err != nil {
			return 0, fmt.Errorf("%s: %w", method, err)
		}
	}
	return first, nil
}

// addEdge inserts {u,v}, wrapping bitgraph errors with the method name.
func addEdge(method string, b *bitgraph.Builder, u, v int) error {
	if err := b.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}
