// SPDX-License-Identifier: MIT

// Package rigidity certifies (k,l)-sparsity and generic rigidity of small
// graphs, for use inside exhaustive graph generators and graph6 stream filters.
//
// 🚀 What is in the box?
//
//	A dependency-light toolkit for combinatorial rigidity:
//		• Bitset graphs with graph6 decoding (n ≤ 62)
//		• (k,l)-sparsity: subset walks, the pebble game, Henneberg reduction
//		• A generator callback that prunes while the graph is still growing
//		• A randomized rank oracle for the rigidity matrix in any dimension
//		• Deterministic graph builders for tests and benchmarks
//
// Packages:
//
//	bitgraph/   - adjacency-bitset Graph, Builder, graph6 Decode/Encode
//	combin/     - revolving-door and Gray-code subset walks
//	sparsity/   - Params, Strategy selection, IsSparse, Pruner.ShouldPrune
//	pebble/     - (k,l) pebble game for integer 0 ≤ l < 2k
//	henneberg/  - greedy inverse Henneberg reduction
//	rigidity/   - rigidity matrix, rank oracle, majority voting
//	builder/    - complete, cycle, wheel, grid, platonic, Henneberg graphs
//	cmd/        - filter_sparse and filter_rank stream filters
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╲ │
//	    C───D
//
//	K4 minus an edge: 5 edges on 4 vertices = 2·4 - 3, so it is
//	(2,3)-tight and therefore minimally rigid in the plane.
//
//	go get github.com/katalvlaran/rigidity
package rigidity
