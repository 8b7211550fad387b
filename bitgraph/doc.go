// SPDX-License-Identifier: MIT

// Package bitgraph implements a compact, immutable adjacency representation
// for simple undirected graphs on at most 62 vertices, together with the
// graph6 text encoding used by graph-generation pipelines.
//
// What:
//
//   - Graph: one uint64 adjacency row per vertex; bit j of Row(i) is set
//     iff {i,j} is an edge. Immutable once built.
//   - Builder: a growable, mutable staging area that produces Graph values.
//   - Decode / Encode: graph6 lines (n ≤ 62) to and from Graph.
//
// Why:
//
//   - Subset enumeration, pebble search and Henneberg peeling all reduce to
//     popcounts over row & mask, which is one instruction on amd64/arm64.
//   - Candidate graphs are built once, certified, then discarded; immutability
//     lets the same value be shared by concurrent certifiers without locks.
//
// Complexity:
//
//   - HasEdge, Degree, DegreeIn: O(1).
//   - EdgeCount: O(n).
//   - Edges: O(n + m).
//   - Decode / Encode: O(n²).
//
// Errors:
//
//   - ErrTooManyVertices   n outside 0..MaxVertices
//   - ErrVertexOutOfRange  endpoint index outside 0..n-1
//   - ErrSelfLoop          edge {i,i}
//   - ErrAsymmetric        adjacency rows disagree on an edge
//   - ErrEmptyEncoding     empty graph6 line
//   - ErrUnsupportedSize   graph6 large-n marker (n ≥ 63)
//   - ErrMalformed         bytes outside 63..126 or truncated data
package bitgraph
