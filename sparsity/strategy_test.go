// SPDX-License-Identifier: MIT

package sparsity_test

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rigidity/bitgraph"
	"github.com/katalvlaran/rigidity/sparsity"
)

func decode(t testing.TB, line string) *bitgraph.Graph {
	t.Helper()
	g, err := bitgraph.Decode(line)
	require.NoError(t, err)
	return g
}

func rat(t testing.TB, s string) sparsity.Rational {
	t.Helper()
	r, err := sparsity.ParseRational(s)
	require.NoError(t, err)
	return r
}

// randomGraph draws G(n, p) from rng.
func randomGraph(t testing.TB, rng *rand.Rand, n int, p float64) *bitgraph.Graph {
	t.Helper()
	b, err := bitgraph.NewBuilder(n)
	require.NoError(t, err)
	for v := 1; v < n; v++ {
		for u := 0; u < v; u++ {
			if rng.Float64() < p {
				require.NoError(t, b.AddEdge(u, v))
			}
		}
	}
	return b.Graph()
}

// bruteSparse checks every subset larger than MinVertices.
func bruteSparse(p sparsity.Params, g *bitgraph.Graph) bool {
	for mask := uint64(1); mask <= g.AllMask(); mask++ {
		size := bits.OnesCount64(mask)
		if size > p.MinVertices && p.TooManyEdges(size, g.EdgesIn(mask)) {
			return false
		}
	}
	return true
}

func mustSelect(t testing.TB, opts ...sparsity.Option) sparsity.Strategy {
	t.Helper()
	s, err := sparsity.Select(opts...)
	require.NoError(t, err)
	return s
}

func TestIsSparse_LamanScenarios(t *testing.T) {
	cases := []struct {
		name string
		line string
		want bool
	}{
		{"triangle is tight", "Bw", true},
		{"K4 is overconstrained", "C~", false},
		{"path is sparse", "Ch", true},
		{"K4 minus an edge is tight", "Cz", true},
		{"K33 is tight", "EFz_", true},
		{"bowtie is sparse", "DxK", true},
		{"K5 is overconstrained", "D~{", false},
		{"single vertex", "@", true},
		{"empty graph", "?", true},
	}
	kinds := []sparsity.Kind{sparsity.KindCombination, sparsity.KindBitmask, sparsity.KindPebble}
	for _, kind := range kinds {
		s := mustSelect(t, sparsity.WithK(sparsity.Int(2)), sparsity.WithL(sparsity.Int(3)), sparsity.WithKind(kind))
		for _, tc := range cases {
			t.Run(kind.String()+"/"+tc.name, func(t *testing.T) {
				assert.Equal(t, tc.want, sparsity.IsSparse(s, decode(t, tc.line)))
			})
		}
	}
}

func TestIsSparse_EqualityIsNotAViolation(t *testing.T) {
	// The triangle has exactly 2·3 - 3 edges.
	p, err := sparsity.NewParams(sparsity.Int(2), sparsity.Int(3), 2)
	require.NoError(t, err)
	assert.False(t, p.TooManyEdges(3, 3))
	assert.True(t, p.TooManyEdges(3, 4))

	s := mustSelect(t, sparsity.WithK(sparsity.Int(2)), sparsity.WithMinVertices(2), sparsity.WithKind(sparsity.KindBitmask))
	assert.True(t, sparsity.IsSparse(s, decode(t, "Bw")))
}

func TestIsSparse_StrategiesAgreeWithBruteForce(t *testing.T) {
	params := [][2]string{
		{"1", "0"}, {"1", "1"}, {"3/2", "1"}, {"3/2", "2"},
		{"2", "0"}, {"2", "1"}, {"2", "3"}, {"2", "4"},
		{"5/2", "3"}, {"3", "5"}, {"3", "6"},
	}
	rng := rand.New(rand.NewSource(7))
	for _, kl := range params {
		comb := mustSelect(t, sparsity.WithK(rat(t, kl[0])), sparsity.WithL(rat(t, kl[1])), sparsity.WithKind(sparsity.KindCombination))
		mask := mustSelect(t, sparsity.WithK(rat(t, kl[0])), sparsity.WithL(rat(t, kl[1])), sparsity.WithKind(sparsity.KindBitmask))
		p := comb.Params()
		for trial := 0; trial < 150; trial++ {
			g := randomGraph(t, rng, 1+rng.Intn(9), rng.Float64())
			want := bruteSparse(p, g)
			require.Equal(t, want, sparsity.IsSparse(comb, g), "combination %s on %s", p, g)
			require.Equal(t, want, sparsity.IsSparse(mask, g), "bitmask %s on %s", p, g)
		}
	}
}

func TestIsSparse_PebbleAgreesWithBitmask(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for k := 1; k <= 3; k++ {
		for l := 0; l < 2*k; l++ {
			opts := []sparsity.Option{sparsity.WithK(sparsity.Int(int64(k))), sparsity.WithL(sparsity.Int(int64(l)))}
			auto := mustSelect(t, opts...)
			if auto.Kind() != sparsity.KindPebble {
				continue
			}
			mask := mustSelect(t, append(opts, sparsity.WithKind(sparsity.KindBitmask))...)
			for trial := 0; trial < 150; trial++ {
				g := randomGraph(t, rng, 1+rng.Intn(9), rng.Float64())
				require.Equal(t, sparsity.IsSparse(mask, g), sparsity.IsSparse(auto, g), "(%d,%d) on %s", k, l, g)
			}
		}
	}
}

func TestIsSparse_Monotone(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, kind := range []sparsity.Kind{sparsity.KindCombination, sparsity.KindBitmask, sparsity.KindPebble} {
		s := mustSelect(t, sparsity.WithK(sparsity.Int(2)), sparsity.WithKind(kind))
		for trial := 0; trial < 100; trial++ {
			g := randomGraph(t, rng, 2+rng.Intn(7), rng.Float64())
			if sparsity.IsSparse(s, g) {
				continue
			}
			for u := 0; u < g.N(); u++ {
				for v := u + 1; v < g.N(); v++ {
					if g.HasEdge(u, v) {
						continue
					}
					h, err := g.WithEdge(u, v)
					require.NoError(t, err)
					assert.False(t, sparsity.IsSparse(s, h), "%s: %s plus {%d,%d}", kind, g, u, v)
				}
			}
		}
	}
}

func TestIsSparse_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	s := mustSelect(t, sparsity.WithK(rat(t, "3/2")), sparsity.WithL(sparsity.Int(1)))
	for trial := 0; trial < 50; trial++ {
		g := randomGraph(t, rng, 8, 0.4)
		assert.Equal(t, sparsity.IsSparse(s, g), sparsity.IsSparse(s, g))
	}
}

func TestPrune_OnlyNewestVertex(t *testing.T) {
	// K4 on {0,1,2,3} plus an isolated vertex 4: the violation avoids the
	// newest vertex, so the incremental check alone accepts the graph.
	g, err := bitgraph.New(5,
		bitgraph.Edge{U: 0, V: 1}, bitgraph.Edge{U: 0, V: 2}, bitgraph.Edge{U: 0, V: 3},
		bitgraph.Edge{U: 1, V: 2}, bitgraph.Edge{U: 1, V: 3}, bitgraph.Edge{U: 2, V: 3},
	)
	require.NoError(t, err)
	for _, kind := range []sparsity.Kind{sparsity.KindCombination, sparsity.KindBitmask} {
		s := mustSelect(t, sparsity.WithK(sparsity.Int(2)), sparsity.WithKind(kind))
		// 6 edges on 5 vertices is within 2·5 - 3.
		assert.False(t, s.Prune(g, 5), kind.String())
		assert.False(t, sparsity.IsSparse(s, g), kind.String())
	}
}

func TestHenneberg(t *testing.T) {
	s := mustSelect(t, sparsity.WithK(sparsity.Int(2)), sparsity.WithHenneberg())
	require.Equal(t, sparsity.KindHenneberg, s.Kind())
	assert.Equal(t, sparsity.Int(3), s.Params().L)

	assert.True(t, sparsity.IsSparse(s, decode(t, "Bw")))
	assert.True(t, sparsity.IsSparse(s, decode(t, "Cz")))
	assert.False(t, sparsity.IsSparse(s, decode(t, "C~")))
	// K33 is tight but has no vertex of degree 2.
	k33 := decode(t, "EFz_")
	assert.False(t, sparsity.IsSparse(s, k33))
	assert.False(t, s.Prune(k33, 7), "decomposability is only checked at the final size")
	assert.True(t, s.Prune(k33, 6))
}

func TestNone(t *testing.T) {
	s := mustSelect(t)
	assert.Equal(t, sparsity.KindNone, s.Kind())
	assert.True(t, sparsity.IsSparse(s, decode(t, "D~{")))
}

func TestKind_String(t *testing.T) {
	for _, k := range []sparsity.Kind{
		sparsity.KindNone, sparsity.KindCombination, sparsity.KindBitmask,
		sparsity.KindPebble, sparsity.KindHenneberg,
	} {
		got, err := sparsity.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "Kind(42)", sparsity.Kind(42).String())
	_, err := sparsity.ParseKind("auto")
	assert.ErrorIs(t, err, sparsity.ErrStrategyDomain)
}
