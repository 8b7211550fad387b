// SPDX-License-Identifier: MIT
// Package: rigidity/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Edge trials in the order j asc, then i < j asc, which is the graph6
//     column order, so a fixed seed yields the same graph6 line.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rigidity/bitgraph"
)

const minRandomSparseVertices = 1

// RandomSparse returns a Constructor that samples G(n, p): every pair
// becomes an edge independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *bitgraph.Builder, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		first, err := addVertices(MethodRandomSparse, b, n)
		if err != nil {
			return err
		}
		for j := 1; j < n; j++ {
			for i := 0; i < j; i++ {
				keep := p == MaxProbability
				if cfg.rng != nil && p > MinProbability && p < MaxProbability {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = addEdge(MethodRandomSparse, b, first+i, first+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
