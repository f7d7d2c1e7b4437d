package refdijkstra

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrNilGraph indicates a nil graph.View was passed to Solve.
	ErrNilGraph = errors.New("refdijkstra: graph is nil")

	// ErrSourceRange indicates a source vertex id outside [0, n).
	ErrSourceRange = errors.New("refdijkstra: source out of range")
)
