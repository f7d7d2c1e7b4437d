package graphgen_test

import (
	"testing"

	"github.com/cx-elchanan-arbiv/BreakingtheSorting/graphgen"
)

func TestRandomSparse_Deterministic(t *testing.T) {
	g1, err := graphgen.RandomSparse(20, 40, graphgen.WithSeed(7))
	if err != nil {
		t.Fatalf("RandomSparse: %v", err)
	}
	g2, err := graphgen.RandomSparse(20, 40, graphgen.WithSeed(7))
	if err != nil {
		t.Fatalf("RandomSparse: %v", err)
	}
	if g1.M() != g2.M() {
		t.Fatalf("M() differs across identical seeds: %d vs %d", g1.M(), g2.M())
	}
	for v := 0; v < g1.N(); v++ {
		a, b := g1.Neighbors(v), g2.Neighbors(v)
		if len(a) != len(b) {
			t.Fatalf("vertex %d: neighbor count differs: %d vs %d", v, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("vertex %d edge %d differs: %+v vs %+v", v, i, a[i], b[i])
			}
		}
	}
}

func TestRandomSparse_TreeOnlyWhenMIsNMinusOne(t *testing.T) {
	n := 30
	g, err := graphgen.RandomSparse(n, n-1, graphgen.WithSeed(1))
	if err != nil {
		t.Fatalf("RandomSparse: %v", err)
	}
	if g.M() != n-1 {
		t.Fatalf("M() = %d, want %d (tree only, no extra edges requested)", g.M(), n-1)
	}
}

func TestRandomWithDegree_EdgeCountScalesWithDegree(t *testing.T) {
	g, err := graphgen.RandomWithDegree(50, 4.0, graphgen.WithSeed(3))
	if err != nil {
		t.Fatalf("RandomWithDegree: %v", err)
	}
	if g.M() < 49 {
		t.Fatalf("M() = %d, want at least the spanning tree's 49 edges", g.M())
	}
}

func TestComplete_EveryOrderedPairConnected(t *testing.T) {
	n := 6
	g, err := graphgen.Complete(n)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if g.M() != n*(n-1) {
		t.Fatalf("M() = %d, want %d", g.M(), n*(n-1))
	}
	for v := 0; v < n; v++ {
		if len(g.Neighbors(v)) != n-1 {
			t.Fatalf("vertex %d has %d out-edges, want %d", v, len(g.Neighbors(v)), n-1)
		}
	}
}

func TestGrid_InteriorCellHasFourNeighbors(t *testing.T) {
	g, err := graphgen.Grid(4, 4, graphgen.WithSeed(9))
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	// vertex at (1,1) -> idx 1*4+1 = 5, interior cell.
	if got := len(g.Neighbors(5)); got != 4 {
		t.Fatalf("interior cell neighbors = %d, want 4", got)
	}
	// corner cell (0,0) -> idx 0, only right+down.
	if got := len(g.Neighbors(0)); got != 2 {
		t.Fatalf("corner cell neighbors = %d, want 2", got)
	}
}

func TestGrid_RejectsNonPositiveDimensions(t *testing.T) {
	if _, err := graphgen.Grid(0, 5); err == nil {
		t.Fatal("Grid(0, 5): want error, got nil")
	}
}

func TestScaleFree_EveryNewNodeReachesInitialCore(t *testing.T) {
	g, err := graphgen.ScaleFree(40, 3, 2, graphgen.WithSeed(11))
	if err != nil {
		t.Fatalf("ScaleFree: %v", err)
	}
	for v := 3; v < 40; v++ {
		if len(g.Neighbors(v)) == 0 {
			t.Fatalf("vertex %d has no out-edges, want at least one preferential attachment", v)
		}
	}
}

func TestWithWeightRange_BoundsGeneratedWeights(t *testing.T) {
	g, err := graphgen.Complete(5, graphgen.WithSeed(2), graphgen.WithWeightRange(3, 3))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	for v := 0; v < g.N(); v++ {
		for _, e := range g.Neighbors(v) {
			if e.Weight != 3 {
				t.Fatalf("edge weight = %v, want fixed 3 from degenerate [3,3] range", e.Weight)
			}
		}
	}
}

func TestWithWeightRange_PanicsOnInvertedRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("WithWeightRange(5, 1): want panic, got none")
		}
	}()
	graphgen.WithWeightRange(5, 1)
}
