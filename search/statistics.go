package search

import "github.com/katalvlaran/ibex/eval"

// Checkpoint records the interval/bound and node-expansion count at the
// end of one outer iteration (one bound raise for IDA*, one budget
// update for IBEX). Checkpoints are diagnostic only; per spec.md's
// design notes, statistics are "not part of the correctness contract."
type Checkpoint struct {
	// Bound is the cost limit the iteration probed at (IDA*), or the
	// interval lower bound `i.lo` after the iteration (IBEX).
	Bound eval.Value

	// Nodes is the node-expansion count of the last probe in the iteration.
	Nodes eval.Value
}

// Statistics aggregates the counters a driver accumulates over a full
// run: states evaluated (heuristic calls), states generated (successor
// states produced by ApplicableOps), states expanded (nodes whose
// children were fully enumerated), outer iterations, and a per-iteration
// checkpoint trail.
type Statistics struct {
	Evaluated   int64
	Generated   int64
	Expanded    int64
	Iterations  int64
	Checkpoints []Checkpoint

	// Phase2Probes and Phase3Probes count IBEX's exponential-search and
	// binary-search probes respectively (spec.md §4.F phases 2 and 3).
	// Both stay 0 for IDA*, which has no such phases.
	Phase2Probes int64
	Phase3Probes int64
}
