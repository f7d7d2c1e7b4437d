package bmssp

import "errors"

// Sentinel errors surfaced by NewSolver and Solve (spec.md §7, "invalid
// input: fail fast before any work").
var (
	// ErrNilGraph indicates a nil graph.View was passed to NewSolver.
	ErrNilGraph = errors.New("bmssp: graph is nil")

	// ErrEmptyGraph indicates a graph with n == 0.
	ErrEmptyGraph = errors.New("bmssp: graph has no vertices")

	// ErrSourceRange indicates a source vertex id outside [0, n).
	ErrSourceRange = errors.New("bmssp: source out of range")
)

// invariantViolation panics with a diagnostic naming the breached invariant.
// Per spec.md §7, invariant violations are internal bugs: not recoverable,
// never retried, and distinct from the ordinary error returns above.
func invariantViolation(tag, detail string) {
	panic("bmssp: invariant " + tag + " violated: " + detail)
}
