package graph

import "errors"

// Sentinel errors returned by NewBuilder and Builder.AddEdge.
var (
	// ErrNoVertices indicates a graph was built with n <= 0.
	ErrNoVertices = errors.New("graph: n must be >= 1")

	// ErrVertexRange indicates an edge endpoint fell outside [0, n).
	ErrVertexRange = errors.New("graph: vertex id out of range")

	// ErrNegativeWeight indicates an edge weight was negative.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")

	// ErrNonFiniteWeight indicates an edge weight was NaN or +/-Inf.
	ErrNonFiniteWeight = errors.New("graph: edge weight must be finite")
)
