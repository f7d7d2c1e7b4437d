package refdijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/cx-elchanan-arbiv/BreakingtheSorting/graph"
)

// Options configures Solve. The zero value runs an unbounded Dijkstra with
// no predecessor tracking.
type Options struct {
	ReturnPath  bool
	MaxDistance float64
}

// Option is a functional option, following the dijkstra.Option idiom this
// package is adapted from.
type Option func(*Options)

// WithReturnPath requests a predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration: vertices whose distance would exceed max
// are never relaxed. Panics if max < 0.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic("refdijkstra: MaxDistance must be non-negative")
	}
	return func(o *Options) { o.MaxDistance = max }
}

func defaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// heapItem is a (vertex, distance) pair in the lazy-decrease-key heap.
type heapItem struct {
	v    int
	dist float64
}

type minHeap []heapItem

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Solve computes shortest distances from source to every vertex of g,
// relaxing with the same <= tie-break rule as the core packages so that
// predecessor choices match when compared directly.
//
// Returns dist (math.Inf(1) for unreachable vertices) and, if
// WithReturnPath was given, pred (-1 for source and unreachable vertices).
func Solve(g *graph.View, source int, opts ...Option) (dist []float64, pred []int, err error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.N()
	if source < 0 || source >= n {
		return nil, nil, fmt.Errorf("%w: source=%d, n=%d", ErrSourceRange, source, n)
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist = make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	if cfg.ReturnPath {
		pred = make([]int, n)
		for i := range pred {
			pred[i] = -1
		}
	}

	visited := make([]bool, n)
	h := &minHeap{{v: source, dist: 0}}
	heap.Init(h)

	for h.Len() > 0 {
		item := heap.Pop(h).(heapItem)
		u, d := item.v, item.dist
		if visited[u] {
			continue
		}
		if d > cfg.MaxDistance {
			break
		}
		visited[u] = true

		for _, e := range g.Neighbors(u) {
			newDist := dist[u] + e.Weight
			if newDist > cfg.MaxDistance {
				continue
			}
			if newDist > dist[e.To] {
				continue
			}
			dist[e.To] = newDist
			if pred != nil {
				pred[e.To] = u
			}
			heap.Push(h, heapItem{v: e.To, dist: newDist})
		}
	}

	return dist, pred, nil
}
