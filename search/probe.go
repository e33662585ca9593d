package search

import (
	"github.com/katalvlaran/ibex/eval"
	"github.com/katalvlaran/ibex/task"
)

// noLowerBound is a solutionLowerBound sentinel that can never equal a
// legitimate solutionCost, so the early-stop check (§4.D step 2) stays
// inert for drivers — IDA* — that have no certified lower bound to compare
// against.
const noLowerBound eval.Value = -1

// probe is the bounded DFS kernel shared by IDA* and IBEX (spec.md §4.D).
// A single probe value is reused across every dfs invocation of a driver
// run: resetLocal clears the per-probe scratch (f_below, f_above, nodes,
// the operator path) before each probe, while solutionCost, solutionPath,
// and solutionLowerBound are driver-owned and carried across probes.
type probe[S comparable] struct {
	t            task.Task[S]
	h            eval.Evaluator[S]
	pathChecking bool

	// per-probe scratch, reset by resetLocal.
	fBelow eval.Value
	fAbove eval.Value
	nodes  eval.Value
	ops    []task.OpID
	onPath map[S]struct{}

	// driver-owned incumbent, read and written across probes.
	solutionCost       eval.Value
	solutionPath       []task.OpID
	solutionLowerBound eval.Value

	stats *Statistics
}

// newProbe constructs a probe with no incumbent recorded yet.
func newProbe[S comparable](t task.Task[S], h eval.Evaluator[S], pathChecking bool, stats *Statistics) *probe[S] {
	p := &probe[S]{
		t:                  t,
		h:                  h,
		pathChecking:       pathChecking,
		solutionCost:       eval.Inf,
		solutionLowerBound: noLowerBound,
		stats:              stats,
	}
	if pathChecking {
		p.onPath = make(map[S]struct{})
	}

	return p
}

// resetLocal clears the DFS-local state that spec.md §3 says is reset at
// every probe. Incumbent fields are untouched: the caller sets them
// before run when the driver needs to seed a new value.
func (p *probe[S]) resetLocal() {
	p.fBelow = 0
	p.fAbove = eval.Inf
	p.nodes = 0
	p.ops = p.ops[:0]
}

// run executes one bounded DFS probe from initial under (costLimit, nodeLimit).
func (p *probe[S]) run(initial S, costLimit, nodeLimit eval.Value) {
	p.resetLocal()
	if p.pathChecking {
		p.onPath[initial] = struct{}{}
		defer delete(p.onPath, initial)
	}
	p.dfs(initial, 0, costLimit, nodeLimit)
}

// dfs implements the nine priority-ordered checks of spec.md §4.D. The
// first matching condition fires; there is no fallthrough.
func (p *probe[S]) dfs(state S, g, costLimit, nodeLimit eval.Value) {
	// 1. Compute f = g + h, saturating.
	p.stats.Evaluated++
	f := g.Add(p.h.H(state))

	// 2. Early-stop on tight optimum.
	if p.solutionCost == p.solutionLowerBound {
		return
	}

	// 3. Cost cutoff above.
	if f > costLimit {
		p.fAbove = eval.Min(p.fAbove, f)

		return
	}

	// 4. Bounded by incumbent.
	if f >= p.solutionCost {
		p.fBelow = p.solutionCost

		return
	}

	// 5. Track explored frontier.
	p.fBelow = eval.Max(p.fBelow, f)

	// 6. Node cutoff.
	if p.nodes >= nodeLimit {
		return
	}

	// 7. Goal.
	if p.t.IsGoal(state) {
		p.solutionCost = f
		p.solutionPath = append([]task.OpID(nil), p.ops...)

		return
	}

	// 8. Expand: generate applicable operators in deterministic order.
	ops := p.t.ApplicableOps(state)
	p.stats.Generated += int64(len(ops))
	for _, op := range ops {
		succ := p.t.Apply(state, op)
		if p.pathChecking {
			if _, dup := p.onPath[succ]; dup {
				continue
			}
			p.onPath[succ] = struct{}{}
		}

		p.ops = append(p.ops, op)
		p.dfs(succ, g.Add(eval.FromInt64(p.t.Cost(state, op))), costLimit, nodeLimit)
		p.ops = p.ops[:len(p.ops)-1]

		if p.pathChecking {
			delete(p.onPath, succ)
		}
	}

	// 9. This call reached step 8: count one node expansion.
	p.nodes++
	p.stats.Expanded++
}

// result maps the probe's terminal scratch state to the (lo, hi) pair
// IBEX intersects into its interval, per spec.md §4.F "Probe return mapping".
func (p *probe[S]) result(nodeLimit eval.Value) (eval.Value, eval.Value) {
	switch {
	case p.nodes >= nodeLimit:
		return 0, p.fBelow
	case p.fBelow >= p.solutionCost:
		return p.solutionCost, p.solutionCost
	default:
		return p.fAbove, eval.Inf
	}
}
