package graphgen

import (
	"fmt"

	"github.com/cx-elchanan-arbiv/BreakingtheSorting/graph"
)

// Grid builds a rows x cols orthogonal grid with 4-directional connectivity:
// every cell gets an edge to each in-bounds neighbor (right, down, left,
// up), each with an independently sampled weight. Vertex ids are assigned
// in row-major order, idx(r, c) = r*cols + c.
func Grid(rows, cols int, opts ...Option) (*graph.View, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", ErrTooFewVertices, rows, cols)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := rows * cols
	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	idx := func(r, c int) int { return r*cols + c }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := b.AddEdge(idx(r, c), idx(r, c+1), cfg.randomWeight()); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := b.AddEdge(idx(r, c), idx(r+1, c), cfg.randomWeight()); err != nil {
					return nil, err
				}
			}
			if c > 0 {
				if err := b.AddEdge(idx(r, c), idx(r, c-1), cfg.randomWeight()); err != nil {
					return nil, err
				}
			}
			if r > 0 {
				if err := b.AddEdge(idx(r, c), idx(r-1, c), cfg.randomWeight()); err != nil {
					return nil, err
				}
			}
		}
	}

	return b.Build()
}
