package graphgen

import "errors"

var (
	// ErrTooFewVertices is returned when n is smaller than a generator's
	// minimum vertex count.
	ErrTooFewVertices = errors.New("graphgen: too few vertices")

	// ErrInvalidWeightRange is returned when minWeight > maxWeight.
	ErrInvalidWeightRange = errors.New("graphgen: invalid weight range")
)
