// Package graph defines View, the immutable, read-only directed-graph
// representation shared by every algorithm in this module.
//
// A View has a fixed vertex count N and a fixed ordered out-edge list per
// vertex, built once at construction and never mutated afterward. This is a
// deliberately narrower contract than a general-purpose mutable graph type:
// BMSSP and its helpers only ever read topology, so View carries no locks,
// no vertex metadata, and no edge-removal path.
//
// Vertex ids are integers in [0, N). Edge weights are finite float64 values
// that must be >= 0; AddEdge validates each edge as it is added, so the
// algorithms in bmssp, pivot, and refdijkstra never need to re-check it.
//
// Construction:
//
//	b, err := graph.NewBuilder(n)
//	err = b.AddEdge(u, v, w) // repeatable; validates; out-edges keep insertion order
//	g, err := b.Build()      // freezes a copy of the adjacency
//
// Complexity: AddEdge is O(1) amortized; Build is O(n + m) (it copies every
// adjacency slice); Neighbors(v) is O(1) (returns the stored slice, not a
// copy).
package graph
