package bmssp

import (
	"math"

	"github.com/cx-elchanan-arbiv/BreakingtheSorting/blockqueue"
	"github.com/cx-elchanan-arbiv/BreakingtheSorting/graph"
	"github.com/cx-elchanan-arbiv/BreakingtheSorting/pivot"
	"github.com/cx-elchanan-arbiv/BreakingtheSorting/sssp"
)

// run is the BMSSP recursion of spec.md §4.3. level ranges [0, params.LMax];
// bound is the current upper bound B; frontier is S, non-empty, with
// dist[s] < bound for every s. It returns a tightened bound B' <= B and the
// set U of vertices now finalized with dist < B'.
func run(g *graph.View, st *sssp.State, params sssp.Params, level int, bound float64, frontier []int) (float64, []int) {
	if level == 0 {
		return baseCase(g, st, params.K, bound, frontier)
	}

	n := g.N()
	p, w := pivot.Find(g, st, params.K, bound, frontier)
	if len(p) == 0 {
		return bound, w
	}

	m := params.BlockCapacity(level, n)
	sizeLimit := params.SizeLimit(level, n)

	d := blockqueue.New(m, bound, sizeLimit)
	for _, x := range p {
		if st.Dist[x] < bound {
			d.Insert(x, st.Dist[x])
		}
	}

	bPrime := initialBound(st, p)

	u := make([]int, 0, sizeLimit)
	uSet := make(map[int]bool, sizeLimit)

	for len(u) < sizeLimit && !d.Empty() {
		sKeys, bi := d.Pull()
		if len(sKeys) == 0 {
			break
		}

		var ui []int
		bPrime, ui = run(g, st, params, level-1, bi, sKeys)

		for _, v := range ui {
			if !uSet[v] {
				uSet[v] = true
				u = append(u, v)
			}
		}

		k := make([]blockqueue.Pair, 0)
		for _, uu := range ui {
			for _, e := range g.Neighbors(uu) {
				st.RelaxCount++
				dp := st.Dist[uu] + e.Weight
				if dp > st.Dist[e.To] {
					continue
				}
				st.Dist[e.To] = dp
				st.Pred[e.To] = uu

				switch {
				case dp >= bi && dp < bound:
					d.Insert(e.To, dp)
				case dp >= bPrime && dp < bi:
					k = append(k, blockqueue.Pair{Key: e.To, Value: dp})
				}
				// else dp < bPrime: v will enter U via its own upstream call.
			}
		}

		for _, x := range sKeys {
			if st.Dist[x] >= bPrime && st.Dist[x] < bi {
				k = append(k, blockqueue.Pair{Key: x, Value: st.Dist[x]})
			}
		}
		d.BatchPrepend(k)
	}

	if bPrime > bound {
		bPrime = bound
	}
	for _, x := range w {
		if st.Dist[x] < bPrime && !uSet[x] {
			uSet[x] = true
			u = append(u, x)
		}
	}

	return bPrime, u
}

// initialBound computes B'_0 (spec.md §4.3 step 4): the minimum dist among
// complete pivots, or dist[p[0]] if none of the pivots are complete.
func initialBound(st *sssp.State, p []int) float64 {
	best := math.Inf(1)
	for _, x := range p {
		if st.Complete[x] && st.Dist[x] < best {
			best = st.Dist[x]
		}
	}
	if math.IsInf(best, 1) {
		return st.Dist[p[0]]
	}

	return best
}
