package heuristics

import "github.com/katalvlaran/ibex/eval"

// Blind is the trivial admissible evaluator: h ≡ 0. It is consistent by
// construction, so any driver using it degrades to uniform-cost search —
// used by spec.md §8 scenario 3 to exercise IDA*'s bound-raising loop
// without heuristic guidance.
type Blind[S comparable] struct{}

// H always returns 0.
func (Blind[S]) H(S) eval.Value { return 0 }
