package graphgen

import (
	"fmt"

	"github.com/cx-elchanan-arbiv/BreakingtheSorting/graph"
)

// RandomSparse builds an n-vertex graph with m directed edges: a random
// spanning tree over a shuffled vertex permutation guarantees every vertex
// is reachable from the root, then the remaining m-(n-1) edges are sampled
// uniformly at random among non-duplicate, non-self-loop pairs.
//
// If m is too small to cover the spanning tree, the graph is just the tree.
// Sampling gives up after 10*m attempts in total rather than looping forever
// on a near-complete graph.
func RandomSparse(n, m int, opts ...Option) (*graph.View, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, err
	}

	perm := cfg.rng.Perm(n)
	present := make(map[[2]int]bool, m)

	for i := 1; i < n; i++ {
		parent := perm[cfg.rng.Intn(i)]
		child := perm[i]
		if err := b.AddEdge(parent, child, cfg.randomWeight()); err != nil {
			return nil, err
		}
		present[[2]int{parent, child}] = true
	}

	remaining := m - (n - 1)
	attempts := 0
	maxAttempts := m * 10
	for remaining > 0 && attempts < maxAttempts {
		u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
		attempts++
		if u == v || present[[2]int{u, v}] {
			continue
		}
		if err := b.AddEdge(u, v, cfg.randomWeight()); err != nil {
			return nil, err
		}
		present[[2]int{u, v}] = true
		remaining--
	}

	return b.Build()
}

// RandomWithDegree is RandomSparse with the edge count expressed as an
// average out-degree: m = round(n * avgDegree).
func RandomWithDegree(n int, avgDegree float64, opts ...Option) (*graph.View, error) {
	m := int(float64(n)*avgDegree + 0.5)
	return RandomSparse(n, m, opts...)
}

// Complete builds the dense directed graph on n vertices: every ordered
// pair (u, v) with u != v gets an edge with an independently sampled
// weight.
func Complete(n int, opts ...Option) (*graph.View, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if err := b.AddEdge(u, v, cfg.randomWeight()); err != nil {
				return nil, err
			}
		}
	}

	return b.Build()
}
