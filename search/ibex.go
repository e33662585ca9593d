package search

import (
	"github.com/katalvlaran/ibex/eval"
	"github.com/katalvlaran/ibex/task"
)

// interval is the (lo, hi) cost bracket of spec.md §3.
type interval struct {
	lo, hi eval.Value
}

// intersect implements spec.md §4.F's `∩((a,b),(c,d))`: returns the
// tighter of the two intervals, or the (0, 0) sentinel if they are
// disjoint (which the §3 invariants say never happens for a correct probe).
func intersect(a, b interval) interval {
	lo := eval.Max(a.lo, b.lo)
	hi := eval.Min(a.hi, b.hi)
	if lo > hi {
		return interval{0, 0}
	}

	return interval{lo, hi}
}

// pow2 returns 2^delta as an eval.Value, saturating at Inf instead of
// overflowing for large delta.
func pow2(delta int) eval.Value {
	if delta >= 62 {
		return eval.Inf
	}

	return eval.Value(int64(1) << uint(delta))
}

// ibexConfig holds IBEX's construction-time options.
type ibexConfig struct {
	c1           int64
	c2           int64
	forceIDAStar bool
}

// IBEXOption configures an IBEX driver at construction time.
type IBEXOption func(*ibexConfig)

// WithC1 sets the lower budget multiplier (default 2). Must be >= 2.
func WithC1(c1 int64) IBEXOption {
	return func(c *ibexConfig) { c.c1 = c1 }
}

// WithC2 sets the upper budget multiplier (default 8). Must be >= c1.
func WithC2(c2 int64) IBEXOption {
	return func(c *ibexConfig) { c.c2 = c2 }
}

// WithForceIDAStar seeds the driver so every outer iteration falls
// through phase 1's budget check immediately, degenerating IBEX into
// IDA*. Testing/comparison hook, not a correctness switch (spec.md §4.F).
func WithForceIDAStar(enabled bool) IBEXOption {
	return func(c *ibexConfig) { c.forceIDAStar = enabled }
}

// IBEX is the interval-based iterative-deepening driver of spec.md §4.F:
// it maintains a cost interval bracketing the optimum and alternates
// exponential- and binary-search probes under a doubling node budget.
type IBEX[S comparable] struct {
	t            task.Task[S]
	h            eval.Evaluator[S]
	c1, c2       int64
	forceIDAStar bool
	stats        Statistics
}

// NewIBEX validates its arguments and returns a ready driver.
func NewIBEX[S comparable](t task.Task[S], h eval.Evaluator[S], opts ...IBEXOption) (*IBEX[S], error) {
	if t == nil {
		return nil, ErrNilTask
	}
	if h == nil {
		return nil, ErrNilEvaluator
	}

	cfg := ibexConfig{c1: 2, c2: 8}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.c1 < 2 {
		return nil, ErrInvalidC1
	}
	if cfg.c2 < cfg.c1 {
		return nil, ErrInvalidC2
	}

	return &IBEX[S]{t: t, h: h, c1: cfg.c1, c2: cfg.c2, forceIDAStar: cfg.forceIDAStar}, nil
}

// Run executes the IBEX state machine of spec.md §4.F to completion:
// START → OUTER → (EXP → BIN)* → CLOSE, repeating OUTER until
// solution_cost == i.lo, then returns SOLVED or FAILED.
func (ib *IBEX[S]) Run() Result {
	ib.stats = Statistics{}
	s0 := ib.t.InitialState()

	iv := interval{lo: ib.h.H(s0), hi: eval.Inf}
	budget := eval.Value(0)

	p := newProbe[S](ib.t, ib.h, false, &ib.stats)

	for p.solutionCost > iv.lo {
		ib.stats.Iterations++

		// Phase 1 — baseline probe.
		p.solutionLowerBound = iv.lo
		iv.hi = eval.Inf
		p.run(s0, iv.lo, eval.Inf)
		lo, hi := p.result(eval.Inf)
		iv = intersect(iv, interval{lo, hi})

		c1budget := eval.Value(ib.c1).Mul(int64(budget))
		if p.nodes >= c1budget || ib.forceIDAStar {
			budget = p.nodes
			ib.stats.Checkpoints = append(ib.stats.Checkpoints, Checkpoint{Bound: iv.lo, Nodes: p.nodes})

			continue
		}

		// Phase 2 — exponential search.
		c2budget := eval.Value(ib.c2).Mul(int64(budget))
		delta := 0
		for iv.hi != iv.lo && p.nodes < c1budget {
			nextCost := iv.lo.Add(pow2(delta))
			delta++
			p.solutionLowerBound = iv.lo
			p.run(s0, nextCost, c2budget)
			lo, hi = p.result(c2budget)
			iv = intersect(iv, interval{lo, hi})
			ib.stats.Phase2Probes++
		}

		// Phase 3 — binary search.
		for iv.hi != iv.lo && !(c1budget <= p.nodes && p.nodes < c2budget) {
			nextCost := (iv.lo + iv.hi) / 2
			p.solutionLowerBound = iv.lo
			p.run(s0, nextCost, c2budget)
			lo, hi = p.result(c2budget)
			iv = intersect(iv, interval{lo, hi})
			ib.stats.Phase3Probes++
		}

		// End of outer iteration.
		budget = eval.Max(p.nodes, c1budget)
		ib.stats.Checkpoints = append(ib.stats.Checkpoints, Checkpoint{Bound: iv.lo, Nodes: p.nodes})
	}

	if p.solutionCost.IsInf() {
		return Result{Outcome: Failed}
	}

	return Result{Outcome: Solved, Plan: task.Plan{Ops: p.solutionPath, Cost: int64(p.solutionCost)}}
}

// Statistics returns the counters accumulated by the most recent Run.
func (ib *IBEX[S]) Statistics() Statistics { return ib.stats }
