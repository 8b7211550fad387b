// SPDX-License-Identifier: MIT

package pebble_test

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rigidity/bitgraph"
	"github.com/katalvlaran/rigidity/builder"
	"github.com/katalvlaran/rigidity/pebble"
)

func decode(t *testing.T, line string) *bitgraph.Graph {
	t.Helper()
	g, err := bitgraph.Decode(line)
	require.NoError(t, err)
	return g
}

// randomGraph draws G(n, p) from rng.
func randomGraph(t *testing.T, rng *rand.Rand, n int, p float64) *bitgraph.Graph {
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

// bruteSparse checks every vertex subset spanning at least one edge.
func bruteSparse(g *bitgraph.Graph, k, l int) bool {
	for mask := uint64(1); mask <= g.AllMask(); mask++ {
		m := g.EdgesIn(mask)
		if m > 0 && m > k*bits.OnesCount64(mask)-l {
			return false
		}
	}
	return true
}

func TestRun_LamanScenarios(t *testing.T) {
	cases := []struct {
		name string
		line string
		want int
	}{
		{"triangle is tight", "Bw", 0},
		{"path on four vertices has two spare dof", "Ch", 2},
		{"K4 minus an edge is tight", "Cz", 0},
		{"K33 is tight", "EFz_", 0},
		{"prism is tight", "E{Sw", 0},
		{"bowtie has one spare dof", "DxK", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pebble.Run(decode(t, tc.line), 2, 3)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRun_BuilderFixtures(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want int
	}{
		{"K4 is overconstrained", builder.Complete(4), pebble.Overconstrained},
		{"P4 has two spare dof", builder.Path(4), 2},
		{"star on five vertices is a tree", builder.Star(5), 3},
		{"wheel carries one redundant edge", builder.Wheel(6), pebble.Overconstrained},
		{"K33 is tight", builder.CompleteBipartite(3, 3), 0},
		{"K23 has one spare dof", builder.CompleteBipartite(2, 3), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pebble.Run(builder.MustBuild(nil, tc.ctor), 2, 3)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRun_TinyGraphsAreNeverOverconstrained(t *testing.T) {
	cases := []struct {
		line string
		want int
	}{
		{"?", 0},  // empty graph
		{"@", 0},  // K1
		{"A?", 1}, // two isolated vertices
		{"A_", 0}, // K2
	}
	for _, tc := range cases {
		got, err := pebble.Run(decode(t, tc.line), 2, 3)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.line)
		assert.NotEqual(t, pebble.StatusOverconstrained, pebble.Classify(got).Status, tc.line)
		assert.True(t, bruteSparse(decode(t, tc.line), 2, 3), tc.line)
	}
}

func TestRun_Overconstrained(t *testing.T) {
	for _, line := range []string{"C~", "D~{"} {
		got, err := pebble.Run(decode(t, line), 2, 3)
		require.NoError(t, err)
		assert.Negative(t, got, line)
		assert.Equal(t, pebble.StatusOverconstrained, pebble.Classify(got).Status)
	}
}

func TestRun_Domain(t *testing.T) {
	g := decode(t, "Bw")
	for _, kl := range [][2]int{{0, 0}, {2, 4}, {2, -1}, {1, 2}} {
		_, err := pebble.Run(g, kl[0], kl[1])
		assert.ErrorIs(t, err, pebble.ErrDomain, "k=%d l=%d", kl[0], kl[1])
	}
}

func TestRun_Idempotent(t *testing.T) {
	g := decode(t, "E{Sw")
	p, err := pebble.New(2, 3)
	require.NoError(t, err)
	first := p.Play(g)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, p.Play(g))
	}
}

func TestAddEdge_PebbleConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 200; trial++ {
		k := 1 + rng.Intn(3)
		l := rng.Intn(2 * k)
		n := 2 + rng.Intn(9)
		g := randomGraph(t, rng, n, rng.Float64())

		p, err := pebble.New(k, l)
		require.NoError(t, err)
		p.Reset(n)
		for _, e := range g.Edges() {
			if !p.AddEdge(e.V, e.U) {
				break
			}
			total := 0
			for i := 0; i < n; i++ {
				out := bits.OnesCount64(p.Debt(i))
				require.Equal(t, k, p.Pebbles(i)+out, "vertex %d after edge %v", i, e)
				total += p.Pebbles(i) + out
			}
			require.Equal(t, n*k, total)
		}
	}
}

func TestRun_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 500; trial++ {
		k := 1 + rng.Intn(3)
		l := rng.Intn(2 * k)
		n := 2 + rng.Intn(7)
		g := randomGraph(t, rng, n, rng.Float64())

		got, err := pebble.Run(g, k, l)
		require.NoError(t, err)
		want := bruteSparse(g, k, l)
		require.Equal(t, want, got != pebble.Overconstrained,
			"k=%d l=%d g=%s result=%d", k, l, bitgraph.Encode(g), got)
		if want {
			assert.Equal(t, k*n-l-g.EdgeCount(), got, "free pebbles count residual dof")
		}
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, pebble.Verdict{Status: pebble.StatusOverconstrained}, pebble.Classify(-1))
	assert.Equal(t, pebble.Verdict{Status: pebble.StatusTight}, pebble.Classify(0))
	assert.Equal(t, pebble.Verdict{Status: pebble.StatusSparse, Dof: 2}, pebble.Classify(2))
	assert.Equal(t, "tight", pebble.StatusTight.String())
	assert.Equal(t, "Status(9)", pebble.Status(9).String())
}
