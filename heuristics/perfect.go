// Package heuristics collects admissible Evaluator implementations
// grounded on the retained graph-algorithm packages, for use by the
// domain task packages (graphtask, gridtask, tsptask).
package heuristics

import (
	"github.com/katalvlaran/ibex/core"
	"github.com/katalvlaran/ibex/dijkstra"
	"github.com/katalvlaran/ibex/eval"
)

// Perfect is an exact distance-to-goal evaluator for a graphtask.Task:
// it runs Dijkstra from the goal vertex once and caches the resulting
// distance table, so H(s) is the true shortest-path cost from s to the
// goal — admissible and consistent by construction, which is what
// spec.md §8's optimality laws for IDA* and IBEX require of h.
type Perfect struct {
	dist map[string]int64
}

// NewPerfect precomputes single-source shortest distances from goal in
// the given weighted, undirected graph.
func NewPerfect(g *core.Graph, goal string) (*Perfect, error) {
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(goal))
	if err != nil {
		return nil, err
	}

	return &Perfect{dist: dist}, nil
}

// H returns the exact remaining cost from state to the goal, or
// eval.Inf if the goal is unreachable from state.
func (p *Perfect) H(state string) eval.Value {
	d, ok := p.dist[state]
	if !ok {
		return eval.Inf
	}

	return eval.FromInt64(d)
}
