// SPDX-License-Identifier: MIT

package bitgraph

import (
	"fmt"
	"math/bits"
)

// bit returns the single-vertex mask for vertex i.
func bit(i int) uint64 { return 1 << uint(i) }

// AllMask returns the mask with the lowest n bits set.
func AllMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return bit(n) - 1
}

// NewBuilder returns a Builder holding n isolated vertices.
func NewBuilder(n int) (*Builder, error) {
	if n < 0 || n > MaxVertices {
		return nil, fmt.Errorf("NewBuilder: n=%d: %w", n, ErrTooManyVertices)
	}
	return &Builder{rows: make([]uint64, n, MaxVertices)}, nil
}

// N returns the current number of vertices.
func (b *Builder) N() int { return len(b.rows) }

// AddVertex appends an isolated vertex and returns its index.
func (b *Builder) AddVertex() (int, error) {
	if len(b.rows) == MaxVertices {
		return -1, fmt.Errorf("AddVertex: %w", ErrTooManyVertices)
	}
	b.rows = append(b.rows, 0)
	return len(b.rows) - 1, nil
}

// AddEdge inserts the undirected edge {u,v}. Adding an existing edge is a no-op.
func (b *Builder) AddEdge(u, v int) error {
	n := len(b.rows)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("AddEdge(%d,%d): n=%d: %w", u, v, n, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	b.rows[u] |= bit(v)
	b.rows[v] |= bit(u)
	return nil
}

// RemoveEdge deletes the undirected edge {u,v}. Removing an absent edge is a no-op.
func (b *Builder) RemoveEdge(u, v int) error {
	n := len(b.rows)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("RemoveEdge(%d,%d): n=%d: %w", u, v, n, ErrVertexOutOfRange)
	}
	b.rows[u] &^= bit(v)
	b.rows[v] &^= bit(u)
	return nil
}

// HasEdge reports whether {u,v} has been added. Out-of-range indices report false.
func (b *Builder) HasEdge(u, v int) bool {
	if u < 0 || u >= len(b.rows) || v < 0 || v >= len(b.rows) {
		return false
	}
	return b.rows[u]&bit(v) != 0
}

// Graph returns an immutable snapshot; later Builder mutations do not affect it.
func (b *Builder) Graph() *Graph {
	rows := make([]uint64, len(b.rows))
	copy(rows, b.rows)
	return &Graph{rows: rows}
}

// New builds a graph on n vertices with the given edges.
func New(n int, edges ...Edge) (*Graph, error) {
	b, err := NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = b.AddEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}
	return b.Graph(), nil
}

// FromRows validates adjacency rows and wraps a copy of them in a Graph.
func FromRows(rows []uint64) (*Graph, error) {
	n := len(rows)
	if n > MaxVertices {
		return nil, fmt.Errorf("FromRows: n=%d: %w", n, ErrTooManyVertices)
	}
	all := AllMask(n)
	for i, r := range rows {
		if r&^all != 0 {
			return nil, fmt.Errorf("FromRows: row %d has bits beyond n=%d: %w", i, n, ErrVertexOutOfRange)
		}
		if r&bit(i) != 0 {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrSelfLoop)
		}
		for rest := r; rest != 0; rest &= rest - 1 {
			j := bits.TrailingZeros64(rest)
			if rows[j]&bit(i) == 0 {
				return nil, fmt.Errorf("FromRows: edge (%d,%d): %w", i, j, ErrAsymmetric)
			}
		}
	}
	cp := make([]uint64, n)
	copy(cp, rows)
	return &Graph{rows: cp}, nil
}

// N returns the number of vertices.
func (g *Graph) N() int { return len(g.rows) }

// Row returns the adjacency mask of vertex i.
func (g *Graph) Row(i int) uint64 { return g.rows[i] }

// AllMask returns the mask containing every vertex of g.
func (g *Graph) AllMask() uint64 { return AllMask(len(g.rows)) }

// HasEdge reports whether {u,v} is an edge. Out-of-range indices report false.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.rows) || v < 0 || v >= len(g.rows) {
		return false
	}
	return g.rows[u]&bit(v) != 0
}

// Degree returns the number of neighbours of i.
func (g *Graph) Degree(i int) int { return bits.OnesCount64(g.rows[i]) }

// DegreeIn returns the number of neighbours of i inside mask.
func (g *Graph) DegreeIn(i int, mask uint64) int { return bits.OnesCount64(g.rows[i] & mask) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	m := 0
	for _, r := range g.rows {
		m += bits.OnesCount64(r)
	}
	return m / 2
}

// EdgesIn returns the number of edges of the subgraph induced by mask.
func (g *Graph) EdgesIn(mask uint64) int {
	m := 0
	for rest := mask & g.AllMask(); rest != 0; rest &= rest - 1 {
		m += bits.OnesCount64(g.rows[bits.TrailingZeros64(rest)] & mask)
	}
	return m / 2
}

// Edges lists all edges in column-major order: for v = 1..n-1, for u < v.
// This is the order in which graph6 stores them.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for v := 1; v < len(g.rows); v++ {
		for lower := g.rows[v] & AllMask(v); lower != 0; lower &= lower - 1 {
			out = append(out, Edge{U: bits.TrailingZeros64(lower), V: v})
		}
	}
	return out
}

// Prefix returns the subgraph induced by the first n vertices. Prefix(N())
// returns g itself.
func (g *Graph) Prefix(n int) (*Graph, error) {
	if n < 0 || n > len(g.rows) {
		return nil, fmt.Errorf("Prefix(%d): n=%d: %w", n, len(g.rows), ErrVertexOutOfRange)
	}
	if n == len(g.rows) {
		return g, nil
	}
	all := AllMask(n)
	rows := make([]uint64, n)
	for i := range rows {
		rows[i] = g.rows[i] & all
	}
	return &Graph{rows: rows}, nil
}

// Extend returns a new graph with one extra vertex (index N()) adjacent to
// every vertex in nbrs. This mirrors one step of vertex-by-vertex generation.
func (g *Graph) Extend(nbrs uint64) (*Graph, error) {
	n := len(g.rows)
	if n == MaxVertices {
		return nil, fmt.Errorf("Extend: %w", ErrTooManyVertices)
	}
	if nbrs&^AllMask(n) != 0 {
		return nil, fmt.Errorf("Extend: neighbour mask %#x beyond n=%d: %w", nbrs, n, ErrVertexOutOfRange)
	}
	rows := make([]uint64, n+1)
	copy(rows, g.rows)
	rows[n] = nbrs
	for rest := nbrs; rest != 0; rest &= rest - 1 {
		rows[bits.TrailingZeros64(rest)] |= bit(n)
	}
	return &Graph{rows: rows}, nil
}

// WithEdge returns a copy of g with {u,v} added.
func (g *Graph) WithEdge(u, v int) (*Graph, error) {
	b := &Builder{rows: make([]uint64, len(g.rows), MaxVertices)}
	copy(b.rows, g.rows)
	if err := b.AddEdge(u, v); err != nil {
		return nil, fmt.Errorf("WithEdge: %w", err)
	}
	return b.Graph(), nil
}

// String renders g as its graph6 encoding.
func (g *Graph) String() string { return Encode(g) }
