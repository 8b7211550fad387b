// SPDX-License-Identifier: MIT
// Package: rigidity/builder
//
// impl_henneberg.go: implementation of Henneberg(n, k, split) constructor.
//
// Canonical model:
//   - Seed the component with K_k.
//   - Each further vertex is added by one Henneberg move:
//     type I:  join the new vertex to k distinct existing vertices;
//     type II: delete an existing edge {u,v} and join the new vertex to u, v
//     and k-1 other distinct vertices.
//   - A type II move is attempted with probability split whenever the
//     component has an edge and at least k+1 vertices; otherwise type I.
//
// Both moves add exactly k edges and preserve generic rigidity in dimension
// k, so the result is (k, k(k+1)/2)-tight and generically rigid in k-space.
// With split = 0 every vertex can be peeled back by reversing type I moves.
//
// Contract:
//   - k ≥ 1 and n ≥ k (else ErrTooFewVertices).
//   - 0 ≤ split ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when n > k (else ErrNeedRandSource).
//
// Complexity: O(n·(n + k)) RNG draws, O(n²) edge scans for type II.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rigidity/bitgraph"
)

const minHennebergK = 1

// Henneberg returns a Constructor that grows a generically rigid
// (k, k(k+1)/2)-tight component on n vertices.
func Henneberg(n, k int, split float64) Constructor {
	return func(b *bitgraph.Builder, cfg builderConfig) error {
		if err := validateMin(MethodHenneberg, "k", k, minHennebergK); err != nil {
			return err
		}
		if err := validateMin(MethodHenneberg, "n", n, k); err != nil {
			return err
		}
		if split < MinProbability || split > MaxProbability {
			return fmt.Errorf("%s: split=%.6f not in [%.1f,%.1f]: %w",
				MethodHenneberg, split, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && n > k {
			return fmt.Errorf("%s: rng is required: %w", MethodHenneberg, ErrNeedRandSource)
		}

		first, err := addVertices(MethodHenneberg, b, n)
		if err != nil {
			return err
		}
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if err = addEdge(MethodHenneberg, b, first+i, first+j); err != nil {
					return err
				}
			}
		}

		for size := k; size < n; size++ {
			v := first + size
			var avoid []int
			if size > k && cfg.rng.Float64() < split {
				if u, w, ok := randomEdge(b, cfg, first, size); ok {
					if err = b.RemoveEdge(u, w); err != nil {
						return fmt.Errorf("%s: %w", MethodHenneberg, err)
					}
					if err = addEdge(MethodHenneberg, b, v, u); err != nil {
						return err
					}
					if err = addEdge(MethodHenneberg, b, v, w); err != nil {
						return err
					}
					avoid = []int{u, w}
				}
			}
			// type II already joined v to u and w and dropped {u,w}: k-1 more
			want := k
			if len(avoid) > 0 {
				want = k - 1
			}
			picked := 0
			for _, p := range cfg.rng.Perm(size) {
				if picked == want {
					break
				}
				u := first + p
				if contains(avoid, u) {
					continue
				}
				if err = addEdge(MethodHenneberg, b, v, u); err != nil {
					return err
				}
				picked++
			}
		}
		return nil
	}
}

// randomEdge draws an edge uniformly among those of first..first+size-1.
func randomEdge(b *bitgraph.Builder, cfg builderConfig, first, size int) (u, v int, ok bool) {
	var edges []bitgraph.Edge
	for j := 1; j < size; j++ {
		for i := 0; i < j; i++ {
			if b.HasEdge(first+i, first+j) {
				edges = append(edges, bitgraph.Edge{U: first + i, V: first + j})
			}
		}
	}
	if len(edges) == 0 {
		return 0, 0, false
	}
	e := edges[cfg.rng.Intn(len(edges))]
	return e.U, e.V, true
}

func contains(xs []int, x int) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}
