package core

import "errors"

// Error values surfaced by the simulation core.

var (
	// ErrInvalidProcessSpec indicates a process with a negative arrival
	// time or a non-positive burst time.
	ErrInvalidProcessSpec = errors.New("invalid process spec")

	// ErrCapacityExceeded indicates that the process count exceeds the
	// configured table capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrEmptyInput indicates a metric computation over zero processes.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidQuantum indicates a non-positive round robin time quantum.
	ErrInvalidQuantum = errors.New("invalid time quantum")

	// ErrInvariantViolation indicates broken admission or completion
	// bookkeeping inside a run: a process scheduled twice, completed with
	// CPU time left, or an idle clock with no future arrival while
	// processes remain. Runs abort instead of reporting wrong numbers.
	ErrInvariantViolation = errors.New("simulation invariant violation")
)

// IsInputError returns true if the error was caused by the caller's input
// rather than by a defect inside the simulation.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidProcessSpec) ||
		errors.Is(err, ErrCapacityExceeded) ||
		errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrInvalidQuantum)
}
