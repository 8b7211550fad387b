// SPDX-License-Identifier: MIT

package sparsity

import (
	"fmt"

	"github.com/katalvlaran/rigidity/bitgraph"
)

// PrunerOptions configures a Pruner.
type PrunerOptions struct {
	// RequireTight additionally rejects final graphs whose edge count is
	// below the tight count k·n - l.
	RequireTight bool

	// Counter, when non-nil, is bumped for every accepted final graph.
	Counter *Counter
}

// PrunerOption mutates PrunerOptions.
type PrunerOption func(*PrunerOptions)

// RequireTight rejects underdetermined final graphs.
func RequireTight() PrunerOption {
	return func(o *PrunerOptions) { o.RequireTight = true }
}

// WithCounter counts accepted final graphs.
func WithCounter(c *Counter) PrunerOption {
	return func(o *PrunerOptions) { o.Counter = c }
}

// Pruner adapts a Strategy to the generator callback.
type Pruner struct {
	s    Strategy
	opts PrunerOptions
}

// NewPruner wraps s.
func NewPruner(s Strategy, opts ...PrunerOption) *Pruner {
	p := &Pruner{s: s}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Strategy returns the wrapped strategy.
func (p *Pruner) Strategy() Strategy { return p.s }

// ShouldPrune reports whether the generator must discard g, viewed as its
// first n vertices on the way to order maxn. Returning true stops the whole
// subtree.
func (p *Pruner) ShouldPrune(g *bitgraph.Graph, n, maxn int) bool {
	if n < g.N() {
		prefix, err := g.Prefix(n)
		if err != nil {
			panic(fmt.Sprintf("sparsity: ShouldPrune(n=%d) on %d vertices: %v", n, g.N(), err))
		}
		g = prefix
	}
	if p.s.Prune(g, maxn) {
		return true
	}
	if n != maxn {
		return false
	}
	if p.opts.RequireTight && g.EdgeCount() != p.s.Params().MaxEdges(maxn) {
		return true
	}
	if p.opts.Counter != nil {
		p.opts.Counter.Add(1)
	}
	return false
}
