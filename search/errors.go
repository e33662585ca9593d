package search

import "errors"

// Sentinel errors returned by the driver constructors. Per spec.md's
// error-handling design, configuration errors fail at construction time
// and the search never starts.
var (
	// ErrNilTask indicates a nil Task was passed to a driver constructor.
	ErrNilTask = errors.New("search: task is nil")

	// ErrNilEvaluator indicates a nil Evaluator was passed to a driver constructor.
	ErrNilEvaluator = errors.New("search: evaluator is nil")

	// ErrInvalidC1 indicates c1 < 2 was requested for IBEX.
	ErrInvalidC1 = errors.New("search: c1 must be >= 2")

	// ErrInvalidC2 indicates c2 < c1 was requested for IBEX.
	ErrInvalidC2 = errors.New("search: c2 must be >= c1")
)
