package heuristics

import (
	"github.com/katalvlaran/ibex/bfs"
	"github.com/katalvlaran/ibex/core"
	"github.com/katalvlaran/ibex/eval"
)

// HopCount is an admissible evaluator for uniform-cost graph tasks: it
// runs an unweighted BFS from the goal vertex and returns the hop
// distance, which never exceeds the true cost when every operator costs
// at least 1 (spec.md §8 scenario 3, "blind" heuristics stress the
// bound-raising loop directly since h is far from perfect).
type HopCount struct {
	depth map[string]int
	max   int
}

// NewHopCount precomputes hop distances from goal via bfs.BFS. bfs.BFS
// rejects weighted graphs, so a weighted g is first projected through
// core.UnweightedView — HopCount only ever wants edge counts, never
// edge costs, so this lets callers reuse the same weighted task graph
// they run IDA*/IBEX over instead of maintaining a second unweighted
// copy just for this heuristic.
func NewHopCount(g *core.Graph, goal string) (*HopCount, error) {
	if g != nil && g.Weighted() {
		g = core.UnweightedView(g)
	}

	res, err := bfs.BFS(g, goal)
	if err != nil {
		return nil, err
	}

	return &HopCount{depth: res.Depth, max: res.FarthestDepth()}, nil
}

// H returns the hop distance from state to the goal, or eval.Inf if
// state cannot reach the goal.
func (hc *HopCount) H(state string) eval.Value {
	d, ok := hc.depth[state]
	if !ok {
		return eval.Inf
	}

	return eval.FromInt64(int64(d))
}

// MaxHops returns the greatest hop distance from any reachable state to
// the goal. No value H ever returns for a reachable state can exceed it,
// a coarse invariant a caller can check when validating a new fixture.
func (hc *HopCount) MaxHops() int {
	return hc.max
}
