package heuristics

import (
	"math"

	"github.com/katalvlaran/ibex/core"
	"github.com/katalvlaran/ibex/eval"
	"github.com/katalvlaran/ibex/prim_kruskal"
)

// DegreeRelaxation is an admissible lower bound for Hamiltonian-circuit
// planning tasks: the cost of a minimum spanning tree over a subset of
// vertices never exceeds the cost of any Hamiltonian path through that
// subset, since a path is itself a spanning tree with maximum degree 2.
// This generalizes a degree-1 relaxation bound to a full MST over the
// vertices the task still has to visit.
//
// Remaining extracts, from a task state S, the vertex IDs the plan still
// has to visit; DegreeRelaxation.H bounds the cost of visiting them all.
type DegreeRelaxation[S comparable] struct {
	g         *core.Graph
	remaining func(S) []string
}

// NewDegreeRelaxation builds a DegreeRelaxation evaluator over the
// complete weighted graph g, using remaining to project a task state
// onto the set of not-yet-visited vertex IDs.
func NewDegreeRelaxation[S comparable](g *core.Graph, remaining func(S) []string) *DegreeRelaxation[S] {
	return &DegreeRelaxation[S]{g: g, remaining: remaining}
}

// H returns the weight of a minimum spanning tree over the remaining
// vertices, 0 if fewer than two remain.
func (d *DegreeRelaxation[S]) H(state S) eval.Value {
	ids := d.remaining(state)
	if len(ids) < 2 {
		return 0
	}

	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}
	sub := core.InducedSubgraph(d.g, keep)

	weight, err := mstWeight(sub, ids[0])
	if err != nil {
		// A disconnected induced subgraph means the remaining set can
		// only be reconnected through vertices outside it; 0 is still a
		// safe (if loose) lower bound.
		return 0
	}

	return eval.FromInt64(weight)
}

// mstWeight picks Prim or Kruskal by the standard E vs V·log(V) crossover
// (Prim's binary-heap growth is O(E log V); Kruskal's global edge sort is
// O(E log E)) and returns the resulting MST's total weight, dispatching
// through prim_kruskal.Compute rather than calling Prim/Kruskal directly
// so the crossover decision is expressed as an MSTOptions selection. A
// DegreeRelaxation subgraph is a subset of a TSP task's complete graph, so
// it grows dense as |remaining| shrinks, exercising both retained MST
// algorithms rather than hard-wiring one.
func mstWeight(sub *core.Graph, root string) (int64, error) {
	opts := prim_kruskal.DefaultOptions() // MethodKruskal, sparse-subgraph default
	n := len(sub.Vertices())
	e := len(sub.Edges())
	if n > 1 && float64(e) >= float64(n)*math.Log2(float64(n)) {
		opts.Method = prim_kruskal.MethodPrim
		opts.Root = root
	}

	return prim_kruskal.EstimateRemainingCost(sub, opts)
}
