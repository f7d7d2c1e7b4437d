package pivot

import (
	"github.com/cx-elchanan-arbiv/BreakingtheSorting/graph"
	"github.com/cx-elchanan-arbiv/BreakingtheSorting/sssp"
)

// Find runs k rounds of bounded Bellman-Ford relaxation from frontier S,
// then prunes S down to the pivot set P whose shortest-path subtree within
// the touched set W has at least k vertices. It returns (P, W) with
// W superseteq S and P subseteq S, as required by spec.md §4.2.
//
// frontier must be non-empty; every vertex in it must already satisfy
// dist[s] < bound (the caller's contract, not re-validated here since BMSSP
// establishes it by construction).
func Find(g *graph.View, st *sssp.State, k int, bound float64, frontier []int) (p, w []int) {
	inW := make(map[int]bool, len(frontier)*2)
	for _, s := range frontier {
		inW[s] = true
	}

	prevWave := append([]int(nil), frontier...)

	for i := 0; i < k; i++ {
		var wave []int
		seenThisWave := make(map[int]bool)
		for _, u := range prevWave {
			for _, e := range g.Neighbors(u) {
				st.RelaxCount++
				newDist, changed := st.Relax(u, e.To, e.Weight)
				if !changed {
					continue
				}
				if newDist < bound && !seenThisWave[e.To] {
					seenThisWave[e.To] = true
					wave = append(wave, e.To)
				}
			}
		}

		for _, v := range wave {
			inW[v] = true
		}

		if len(inW) > k*len(frontier) {
			// Early exit (spec.md §9): correctness-preserving, not just an
			// optimization. Skip the subtree-size test entirely.
			return append([]int(nil), frontier...), setToSlice(inW)
		}

		prevWave = wave
	}

	wSlice := setToSlice(inW)
	p = pivotsFromForest(st, frontier, inW, k)

	for _, v := range wSlice {
		st.Complete[v] = true
	}

	return p, wSlice
}

func setToSlice(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}

	return out
}

// pivotsFromForest builds the predecessor forest restricted to W, computes
// subtree sizes rooted at each frontier vertex via an iterative post-order
// traversal (no recursion, so no stack-depth risk on deep chains), and
// returns the frontier vertices whose subtree has at least k members.
func pivotsFromForest(st *sssp.State, frontier []int, inW map[int]bool, k int) []int {
	children := make(map[int][]int, len(inW))
	for v := range inW {
		par := st.Pred[v]
		if par >= 0 && inW[par] {
			children[par] = append(children[par], v)
		}
	}

	subtreeSize := make(map[int]int, len(frontier))
	for _, root := range frontier {
		subtreeSize[root] = iterativeSubtreeSize(root, children)
	}

	var p []int
	for _, s := range frontier {
		if subtreeSize[s] >= k {
			p = append(p, s)
		}
	}
	if len(p) == 0 && len(frontier) > 0 {
		p = []int{frontier[0]}
	}

	return p
}

// iterativeSubtreeSize computes the size of the subtree rooted at root using
// an explicit stack, visiting each node's children before totaling its size
// (post-order), avoiding recursion depth proportional to chain length.
func iterativeSubtreeSize(root int, children map[int][]int) int {
	type frame struct {
		node    int
		childIx int
	}

	size := map[int]int{}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		idx := len(stack) - 1
		node, childIx := stack[idx].node, stack[idx].childIx
		kids := children[node]
		if childIx < len(kids) {
			stack[idx].childIx++
			stack = append(stack, frame{node: kids[childIx]})
			continue
		}

		total := 1
		for _, c := range kids {
			total += size[c]
		}
		size[node] = total
		stack = stack[:idx]
	}

	return size[root]
}
