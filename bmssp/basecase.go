package bmssp

import (
	"container/heap"

	"github.com/cx-elchanan-arbiv/BreakingtheSorting/graph"
	"github.com/cx-elchanan-arbiv/BreakingtheSorting/sssp"
)

// heapItem is a (vertex, distance) pair in the base-case priority queue. The
// base case uses the same lazy-decrease-key pattern as refdijkstra: push a
// fresh entry whenever a distance improves rather than mutating in place,
// and ignore stale entries when popped.
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

// baseCase is BMSSP's level-0 recursion (spec.md §4.3): a capped Dijkstra
// from the single source frontier provides, relaxing only edges whose
// tentative value remains < bound, stopping once k+1 distinct vertices have
// been settled or the heap empties.
//
// Precondition: len(frontier) == 1 (validated, not silently widened -- the
// recursion's pull-bounding is expected to guarantee this, but a caller bug
// here is an invariant violation, not a value to silently coerce).
func baseCase(g *graph.View, st *sssp.State, k int, bound float64, frontier []int) (float64, []int) {
	if len(frontier) != 1 {
		invariantViolation("base-case-singleton", "BMSSP level 0 requires |S| == 1")
	}
	x := frontier[0]

	h := &minHeap{{v: x, dist: st.Dist[x]}}
	heap.Init(h)

	settled := make([]int, 0, k+1)
	settledSet := make(map[int]bool, k+1)

	for h.Len() > 0 && len(settled) < k+1 {
		item := heap.Pop(h).(heapItem)
		u := item.v
		if settledSet[u] {
			continue // stale lazy-decrease-key entry
		}
		if item.dist > st.Dist[u] {
			continue // superseded by a later, better relaxation
		}

		settledSet[u] = true
		settled = append(settled, u)
		st.Complete[u] = true

		for _, e := range g.Neighbors(u) {
			st.RelaxCount++
			// Unlike pivot.Find and the main BMSSP loop, the base case gates
			// the distance update itself on bound, not just the resulting
			// classification -- spec.md §4.3 says relax "only edges whose
			// tentative value remains < B", matching the original's
			// `d_hat[u]+w <= d_hat[v] && d_hat[u]+w < B` base-case guard.
			cand := st.Dist[u] + e.Weight
			if cand <= st.Dist[e.To] && cand < bound {
				st.Dist[e.To] = cand
				st.Pred[e.To] = u
				heap.Push(h, heapItem{v: e.To, dist: cand})
			}
		}
	}

	if len(settled) <= k {
		return bound, settled
	}

	maxDist := 0.0
	for _, v := range settled {
		if st.Dist[v] > maxDist {
			maxDist = st.Dist[v]
		}
	}

	result := make([]int, 0, len(settled))
	for _, v := range settled {
		if st.Dist[v] < maxDist {
			result = append(result, v)
		}
	}

	return maxDist, result
}
