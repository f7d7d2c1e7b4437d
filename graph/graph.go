package graph

import (
	"fmt"
	"math"
)

// Edge is a single out-edge: a destination vertex and its non-negative weight.
type Edge struct {
	To     int
	Weight float64
}

// View is an immutable, read-only directed graph with integer vertex ids in
// [0, N()). It is safe for concurrent use by any number of readers: nothing
// in this package ever mutates a View after Build returns it.
type View struct {
	out [][]Edge
	m   int
}

// N returns the number of vertices.
func (g *View) N() int { return len(g.out) }

// M returns the number of directed edges.
func (g *View) M() int { return g.m }

// Neighbors returns the out-edges of v in the order they were added. The
// caller must not mutate the returned slice.
func (g *View) Neighbors(v int) []Edge { return g.out[v] }

// Builder accumulates edges for a fixed vertex count and produces a frozen
// View. It is not safe for concurrent use; build a graph from one goroutine.
type Builder struct {
	out [][]Edge
	m   int
}

// NewBuilder returns a Builder for n vertices, n must be >= 1.
func NewBuilder(n int) (*Builder, error) {
	if n < 1 {
		return nil, ErrNoVertices
	}
	return &Builder{out: make([][]Edge, n)}, nil
}

// AddEdge appends a directed edge u->v with the given weight. Parallel edges
// and self-loops are both permitted at this layer; callers that want "the
// minimum-weight parallel edge wins" semantics (spec boundary behavior) get
// that naturally because every algorithm here relaxes with <=, so the last
// relaxation to win is whichever offers the smaller distance regardless of
// how many parallel copies exist.
func (b *Builder) AddEdge(u, v int, w float64) error {
	if u < 0 || u >= len(b.out) || v < 0 || v >= len(b.out) {
		return fmt.Errorf("%w: edge %d->%d, n=%d", ErrVertexRange, u, v, len(b.out))
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: edge %d->%d weight=%v", ErrNonFiniteWeight, u, v, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d->%d weight=%v", ErrNegativeWeight, u, v, w)
	}
	b.out[u] = append(b.out[u], Edge{To: v, Weight: w})
	b.m++

	return nil
}

// Build freezes the accumulated edges into a View. The Builder remains
// usable afterward, but further AddEdge calls do not affect any View already
// returned (each call to Build snapshots the current adjacency slices).
func (b *Builder) Build() (*View, error) {
	out := make([][]Edge, len(b.out))
	for i, edges := range b.out {
		out[i] = append([]Edge(nil), edges...)
	}

	return &View{out: out, m: b.m}, nil
}
