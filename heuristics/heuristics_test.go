package heuristics_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ibex/core"
	"github.com/katalvlaran/ibex/eval"
	"github.com/katalvlaran/ibex/heuristics"
)

func buildSquare() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "D", 1)
	_, _ = g.AddEdge("A", "C", 5)
	_, _ = g.AddEdge("C", "D", 5)

	return g
}

func TestPerfect_ExactDistance(t *testing.T) {
	g := buildSquare()
	h, err := heuristics.NewPerfect(g, "D")
	require.NoError(t, err)

	assert.Equal(t, eval.Value(0), h.H("D"))
	assert.Equal(t, eval.Value(2), h.H("A"))
}

func TestPerfect_UnreachableIsInf(t *testing.T) {
	g := buildSquare()
	_ = g.AddVertex("Z")
	h, err := heuristics.NewPerfect(g, "D")
	require.NoError(t, err)

	assert.True(t, h.H("Z").IsInf())
}

func TestHopCount_UniformCost(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	h, err := heuristics.NewHopCount(g, "C")
	require.NoError(t, err)

	assert.Equal(t, eval.Value(0), h.H("C"))
	assert.Equal(t, eval.Value(2), h.H("A"))
}

func TestHopCount_AcceptsWeightedGraphViaUnweightedView(t *testing.T) {
	g := buildSquare() // core.WithWeighted(), edges carry weight 1 and 5
	h, err := heuristics.NewHopCount(g, "D")
	require.NoError(t, err)

	// Hop count ignores the 1-vs-5 weight split: both A-B-D and A-C-D
	// are 2 hops, so h.H("A") must reflect edge count, not edge cost.
	assert.Equal(t, eval.Value(2), h.H("A"))
}

func TestHopCount_MaxHops(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	h, err := heuristics.NewHopCount(g, "C")
	require.NoError(t, err)

	// C is the goal (0 hops), B is 1 hop, A is 2 hops: 2 is the farthest.
	assert.Equal(t, 2, h.MaxHops())
	for _, s := range []string{"A", "B", "C"} {
		assert.LessOrEqual(t, int(h.H(s)), h.MaxHops())
	}
}

func TestBlind_AlwaysZero(t *testing.T) {
	var h heuristics.Blind[string]
	assert.Equal(t, eval.Value(0), h.H("anything"))
}

func TestDegreeRelaxation_LowerBoundsMST(t *testing.T) {
	g := buildSquare()
	remaining := func(s string) []string { return []string{"A", "B", "C", "D"} }
	h := heuristics.NewDegreeRelaxation[string](g, remaining)

	assert.Equal(t, eval.Value(7), h.H("A")) // MST: A-B(1) + B-D(1) + A-C(5)
}

func TestDegreeRelaxation_FewerThanTwoRemaining(t *testing.T) {
	g := buildSquare()
	remaining := func(s string) []string { return []string{"A"} }
	h := heuristics.NewDegreeRelaxation[string](g, remaining)

	assert.Equal(t, eval.Value(0), h.H("A"))
}

// buildDenseComplete returns K_n over vertices "0".."n-1", with each
// edge weighted by the index distance |i-j|. With n=7 this graph has 21
// edges against a Prim/Kruskal crossover of n*log2(n)≈19.65, pushing
// DegreeRelaxation's internal MST selection onto Prim's heap-growth
// path instead of Kruskal's edge sort.
func buildDenseComplete(n int) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = strconv.Itoa(i)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := j - i
			_, _ = g.AddEdge(ids[i], ids[j], int64(w))
		}
	}

	return g
}

func TestDegreeRelaxation_DenseSubgraphUsesPrim(t *testing.T) {
	g := buildDenseComplete(7)
	all := make([]string, 7)
	for i := range all {
		all[i] = strconv.Itoa(i)
	}
	remaining := func(s string) []string { return all }
	h := heuristics.NewDegreeRelaxation[string](g, remaining)

	// Every edge weight is |i-j| >= 1, and a Hamiltonian path 0-1-...-6
	// spans all 7 vertices with 6 unit-weight edges, so the MST weight
	// is exactly 6 — no spanning tree of 6 edges can weigh less since
	// every edge weighs at least 1.
	assert.Equal(t, eval.Value(6), h.H("0"))
}
