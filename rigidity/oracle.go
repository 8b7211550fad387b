// SPDX-License-Identifier: MIT

package rigidity

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rigidity/bitgraph"
)

// Oracle measures excess degrees of freedom with a fixed configuration.
// It holds no mutable state and is safe for concurrent use as long as each
// goroutine passes its own *rand.Rand.
type Oracle struct {
	opts Options
}

// New validates the options and returns an Oracle.
func New(opts ...Option) (*Oracle, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return &Oracle{opts: o}, nil
}

// Options returns the resolved configuration.
func (o *Oracle) Options() Options { return o.opts }

// RigidRank returns d·n - d(d+1)/2. It is negative for n < (d+1)/2 and is
// used as is; small graphs then report a negative excess.
func (o *Oracle) RigidRank(n int) int {
	d := o.opts.Dim
	return d*n - d*(d+1)/2
}

// Realize draws n points uniformly from [-1,1)^d, one per row.
// It returns nil for n == 0.
func (o *Oracle) Realize(n int, rng *rand.Rand) *mat.Dense {
	if n == 0 {
		return nil
	}
	d := o.opts.Dim
	pts := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for c := 0; c < d; c++ {
			pts.Set(i, c, 2*rng.Float64()-1)
		}
	}
	return pts
}

// Matrix assembles the rigidity matrix of g at the realization pts, with
// rows in g.Edges() order. It returns nil when g has no edges.
func (o *Oracle) Matrix(g *bitgraph.Graph, pts mat.Matrix) *mat.Dense {
	edges := g.Edges()
	if len(edges) == 0 {
		return nil
	}
	d := o.opts.Dim
	a := mat.NewDense(len(edges), d*g.N(), nil)
	for r, e := range edges {
		for c := 0; c < d; c++ {
			diff := pts.At(e.U, c) - pts.At(e.V, c)
			a.Set(r, e.U*d+c, diff)
			a.Set(r, e.V*d+c, -diff)
		}
	}
	return a
}

// Rank returns the numerical rank of a with the configured method. A nil
// matrix has rank 0.
func (o *Oracle) Rank(a *mat.Dense) int {
	if a == nil {
		return 0
	}
	rows, cols := a.Dims()
	tol := o.opts.Tolerance
	if tol == 0 {
		tol = defaultTolerance(rows, cols)
	}
	if o.opts.Method == SVD {
		if rank, ok := svdRank(a, tol); ok {
			return rank
		}
	}
	return pivotedQRRank(a, tol)
}

// Trial runs one random realization of g.
func (o *Oracle) Trial(g *bitgraph.Graph, rng *rand.Rand) Trial {
	pts := o.Realize(g.N(), rng)
	var rank int
	if pts != nil {
		rank = o.Rank(o.Matrix(g, pts))
	}
	return Trial{Rank: rank, ExcessDof: o.RigidRank(g.N()) - rank}
}

// Measure runs the configured number of trials on g.
func (o *Oracle) Measure(g *bitgraph.Graph, rng *rand.Rand) Measurement {
	m := Measurement{
		RigidRank: o.RigidRank(g.N()),
		Ranks:     make([]int, o.opts.Trials),
		ExcessDof: make([]int, o.opts.Trials),
	}
	for i := range m.Ranks {
		t := o.Trial(g, rng)
		m.Ranks[i], m.ExcessDof[i] = t.Rank, t.ExcessDof
	}
	m.Majority, m.Agreement = majority(m.ExcessDof)
	return m
}

// Dof returns the majority excess degrees of freedom of g in dimension d
// over the given odd number of trials.
func Dof(g *bitgraph.Graph, d, trials int, rng *rand.Rand) (int, error) {
	o, err := New(WithDim(d), WithTrials(trials))
	if err != nil {
		return 0, fmt.Errorf("Dof: %w", err)
	}
	return o.Measure(g, rng).Majority, nil
}

// majority returns the most frequent value and its count; ties go to the
// smaller value.
func majority(xs []int) (value, count int) {
	counts := make(map[int]int, len(xs))
	for _, x := range xs {
		counts[x]++
	}
	for x, c := range counts {
		if c > count || (c == count && x < value) {
			value, count = x, c
		}
	}
	return value, count
}
