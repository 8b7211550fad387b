// SPDX-License-Identifier: MIT
// Package: rigidity/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ MinGridDim (else ErrTooFewVertices).
//   • Vertex (r,c) has index first + r*cols + c (row-major).
//   • For each cell in row-major order: right neighbour, then bottom neighbour.
//
// Grids with at least two rows and columns are flexible in the plane.

package builder

import "github.com/katalvlaran/rigidity/bitgraph"

// Grid returns a Constructor that appends a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(b *bitgraph.Builder, _ builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		first, err := addVertices(MethodGrid, b, rows*cols)
		if err != nil {
			return err
		}
		at := func(r, c int) int { return first + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = addEdge(MethodGrid, b, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(MethodGrid, b, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
