package graphgen

import (
	"fmt"
	"sort"

	"github.com/cx-elchanan-arbiv/BreakingtheSorting/graph"
)

// ScaleFree builds an n-vertex Barabasi-Albert-style network: the first m0
// vertices start fully connected (both directions), then each remaining
// vertex attaches to edgesPerNode existing vertices chosen with probability
// proportional to their current degree, linking both directions so degree
// accumulates correctly for later preferential-attachment rounds.
//
// Real social and infrastructure networks exhibit this degree distribution,
// so it exercises the recursion differently than the uniform-random
// families above: a small number of high-degree hubs dominate pivot
// selection.
func ScaleFree(n, m0, edgesPerNode int, opts ...Option) (*graph.View, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	}
	if m0 > n {
		m0 = n
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, err
	}

	degrees := make([]int, n)
	for u := 0; u < m0; u++ {
		for v := u + 1; v < m0; v++ {
			if err := b.AddEdge(u, v, cfg.randomWeight()); err != nil {
				return nil, err
			}
			if err := b.AddEdge(v, u, cfg.randomWeight()); err != nil {
				return nil, err
			}
		}
	}
	for i := 0; i < m0; i++ {
		degrees[i] = m0 - 1
	}

	for newNode := m0; newNode < n; newNode++ {
		targets := map[int]bool{}
		totalDegree := 0
		for i := 0; i < newNode; i++ {
			totalDegree += degrees[i]
		}
		want := edgesPerNode
		if want > newNode {
			want = newNode
		}

		for len(targets) < want {
			if totalDegree == 0 {
				// No edges yet among the first newNode vertices: fall back
				// to uniform choice so the loop still terminates.
				targets[cfg.rng.Intn(newNode)] = true
				continue
			}
			r := cfg.rng.Float64() * float64(totalDegree)
			cumsum := 0.0
			for i := 0; i < newNode; i++ {
				cumsum += float64(degrees[i])
				if cumsum >= r {
					targets[i] = true
					break
				}
			}
		}

		// Add edges in ascending target order so the weight sequence drawn
		// from the RNG does not depend on map iteration order.
		ordered := make([]int, 0, len(targets))
		for target := range targets {
			ordered = append(ordered, target)
		}
		sort.Ints(ordered)
		for _, target := range ordered {
			if err := b.AddEdge(newNode, target, cfg.randomWeight()); err != nil {
				return nil, err
			}
			if err := b.AddEdge(target, newNode, cfg.randomWeight()); err != nil {
				return nil, err
			}
			degrees[newNode]++
			degrees[target]++
		}
	}

	return b.Build()
}
