package search

import "github.com/katalvlaran/ibex/task"

// Outcome is the terminal state of a driver run. IN_PROGRESS from
// spec.md §6 is internal-only and never observed here: Run blocks until
// the search reaches Solved or Failed.
type Outcome int

const (
	// Failed means the task has no plan reachable within the search.
	Failed Outcome = iota

	// Solved means Plan holds a certified cost-optimal solution.
	Solved
)

// String renders the outcome for logging.
func (o Outcome) String() string {
	if o == Solved {
		return "SOLVED"
	}

	return "FAILED"
}

// Result is what a driver's Run returns: an outcome and, if Solved, the plan.
type Result struct {
	Outcome Outcome
	Plan    task.Plan
}

// IsSolved reports whether the result carries a plan.
func (r Result) IsSolved() bool { return r.Outcome == Solved }
