// Package search implements the bounded DFS kernel and the IDA* and IBEX
// drivers built on it (spec.md components C–F).
package search

import (
	"github.com/katalvlaran/ibex/eval"
	"github.com/katalvlaran/ibex/task"
)

// idastarConfig holds IDAStar's construction-time options.
type idastarConfig struct {
	pathChecking bool
}

// IDAStarOption configures an IDAStar driver at construction time.
type IDAStarOption func(*idastarConfig)

// WithPathChecking enables on-path duplicate suppression: a successor
// already present on the current DFS path is skipped instead of
// recursed into. Default false. Enable it for tasks with zero-cost
// cycles (spec.md §4.E, §8 scenario 5); leave it off otherwise, since it
// adds a per-node cost linear in the current depth.
func WithPathChecking(enabled bool) IDAStarOption {
	return func(c *idastarConfig) { c.pathChecking = enabled }
}

// IDAStar is iterative-deepening A*: it raises a single cost bound until
// a probe reports a goal, guaranteeing optimality under a consistent
// admissible heuristic (spec.md §4.E).
type IDAStar[S comparable] struct {
	t            task.Task[S]
	h            eval.Evaluator[S]
	pathChecking bool
	stats        Statistics
}

// NewIDAStar validates its arguments and returns a ready driver. Per
// spec.md §7, a missing task or evaluator is a configuration error and
// fails here rather than at Run.
func NewIDAStar[S comparable](t task.Task[S], h eval.Evaluator[S], opts ...IDAStarOption) (*IDAStar[S], error) {
	if t == nil {
		return nil, ErrNilTask
	}
	if h == nil {
		return nil, ErrNilEvaluator
	}

	cfg := idastarConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &IDAStar[S]{t: t, h: h, pathChecking: cfg.pathChecking}, nil
}

// Run executes the IDA* loop of spec.md §4.E to completion and returns
// SOLVED with an optimal plan or FAILED.
func (s *IDAStar[S]) Run() Result {
	s.stats = Statistics{}
	s0 := s.t.InitialState()
	bound := s.h.H(s0)
	p := newProbe[S](s.t, s.h, s.pathChecking, &s.stats)

	for {
		s.stats.Iterations++
		p.run(s0, bound, eval.Inf)
		s.stats.Checkpoints = append(s.stats.Checkpoints, Checkpoint{Bound: bound, Nodes: p.nodes})

		if !p.solutionCost.IsInf() {
			return Result{Outcome: Solved, Plan: task.Plan{Ops: p.solutionPath, Cost: int64(p.solutionCost)}}
		}
		if p.fAbove.IsInf() {
			return Result{Outcome: Failed}
		}
		bound = p.fAbove
	}
}

// Statistics returns the counters accumulated by the most recent Run.
func (s *IDAStar[S]) Statistics() Statistics { return s.stats }
