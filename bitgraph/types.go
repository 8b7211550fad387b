// SPDX-License-Identifier: MIT

package bitgraph

import "errors"

// MaxVertices is the largest vertex count a Graph can hold. It matches the
// largest order the short graph6 header can express.
const MaxVertices = 62

var (
	// ErrTooManyVertices is returned when n is negative or exceeds MaxVertices.
	ErrTooManyVertices = errors.New("bitgraph: vertex count out of range")

	// ErrVertexOutOfRange indicates an edge endpoint outside 0..n-1.
	ErrVertexOutOfRange = errors.New("bitgraph: vertex index out of range")

	// ErrSelfLoop indicates an attempt to add the edge {i,i}.
	ErrSelfLoop = errors.New("bitgraph: self-loop not allowed")

	// ErrAsymmetric indicates adjacency rows that do not describe an
	// undirected graph (bit j of row i set but bit i of row j clear).
	ErrAsymmetric = errors.New("bitgraph: adjacency rows are not symmetric")

	// ErrEmptyEncoding is returned by Decode for an empty line.
	ErrEmptyEncoding = errors.New("bitgraph: empty graph6 line")

	// ErrUnsupportedSize is returned by Decode for the graph6 large-n marker.
	ErrUnsupportedSize = errors.New("bitgraph: graphs with more than 62 vertices are not supported")

	// ErrMalformed is returned by Decode for bytes outside the printable
	// graph6 range or for too few data bytes.
	ErrMalformed = errors.New("bitgraph: malformed graph6 line")
)

// Edge is an unordered vertex pair reported with U < V.
type Edge struct {
	U, V int
}

// Graph is an immutable simple undirected graph on N() ≤ MaxVertices vertices.
// The zero value is the empty graph on zero vertices.
type Graph struct {
	rows []uint64
}

// Builder accumulates vertices and edges before producing a Graph.
// A Builder is not safe for concurrent use.
type Builder struct {
	rows []uint64
}
