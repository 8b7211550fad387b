// SPDX-License-Identifier: MIT

// Package pebble implements the Lee–Streinu pebble game, an exact
// near-linear certificate of (k,l)-sparsity for integer parameters with
// 1 ≤ k and 0 ≤ l < 2k.
//
// What:
//
//   - Every vertex starts with k pebbles.
//   - An edge {i,j} is accepted once l+1 pebbles sit on i and j together;
//     missing pebbles are fetched by depth-first search along the directed
//     "debt" relation, reversing the path that led to a free pebble.
//   - Accepting the edge spends one pebble from the richer endpoint and
//     records a debt from it to the other endpoint.
//   - If the pebbles cannot be gathered the graph is overconstrained.
//
// Invariant (pebble conservation): after every accepted edge,
// pebbles[i] + outdegree(debt, i) == k for every vertex i.
//
// The debt relation is an arena of adjacency bitmasks indexed by vertex,
// so reversing an edge is two bit flips and the per-search visited set is a
// single uint64.
//
// Complexity:
//
//   - Time:   O(m · (n + m)) worst case; the search depth is bounded by n ≤ 62.
//   - Memory: O(n), fixed-size arrays inside Game.
//
// Errors:
//
//   - ErrDomain  (k,l) outside 1 ≤ k, 0 ≤ l < 2k.
//
// Reference: A. Lee and I. Streinu, "Pebble game algorithms and sparse
// graphs", Discrete Mathematics 308(8), 2008.
package pebble
