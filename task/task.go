// Package task defines the state-transition contract that the search
// packages are built against. A Task never appears inside the search
// core except through this interface: everything the core knows about a
// concrete planning domain — graph traversal, grid movement, tour
// construction — flows through InitialState, IsGoal, ApplicableOps,
// Apply, and Cost.
//
// The state type S is left to the caller and constrained only to be
// comparable, so it can be used as a map key for path-membership checks.
// Implementations must make ApplicableOps return operators in a stable,
// repeatable order for a given state: the search core relies on that
// determinism for reproducible traces (see search.WithPathChecking).
package task

// OpID names an operator local to whatever Task produced it. It carries
// no meaning outside that Task; two Tasks are free to reuse the same ID
// for unrelated operators.
type OpID string

// Task models a deterministic, finite-branching state-transition system
// with a single initial state and a cost function. It has no notion of
// "current state" of its own: every method takes the state it operates
// on as an explicit argument, so a single Task value can be shared
// across concurrent searches.
type Task[S comparable] interface {
	// InitialState returns the state a search starts from.
	InitialState() S

	// IsGoal reports whether state satisfies the task's goal condition.
	IsGoal(state S) bool

	// ApplicableOps returns the operators applicable in state, in a
	// stable order. An empty slice means state is a dead end.
	ApplicableOps(state S) []OpID

	// Apply returns the state reached by applying op in state. op must
	// be one of the operators returned by ApplicableOps(state); behavior
	// is undefined otherwise.
	Apply(state S, op OpID) S

	// Cost returns the non-negative cost of applying op in state.
	Cost(state S, op OpID) int64
}

// Plan is a solution: a sequence of operators applied from the initial
// state, together with its total cost.
type Plan struct {
	// Ops is the operator sequence from the initial state to a goal.
	Ops []OpID

	// Cost is the sum of task.Cost(state, op) along Ops.
	Cost int64
}

// Empty reports whether the plan carries no operators.
func (p Plan) Empty() bool { return len(p.Ops) == 0 }
