package refdijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cx-elchanan-arbiv/BreakingtheSorting/graph"
	"github.com/cx-elchanan-arbiv/BreakingtheSorting/refdijkstra"
)

func buildGraph(t *testing.T, n int, edges [][3]float64) *graph.View {
	t.Helper()
	b, err := graph.NewBuilder(n)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	for _, e := range edges {
		if err := b.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	return g
}

func TestSolve_ChainGraph(t *testing.T) {
	g := buildGraph(t, 4, [][3]float64{{0, 1, 1}, {1, 2, 2}, {2, 3, 3}})
	dist, _, err := refdijkstra.Solve(g, 0)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	want := []float64{0, 1, 3, 6}
	for i, w := range want {
		if dist[i] != w {
			t.Errorf("dist[%d] = %v, want %v", i, dist[i], w)
		}
	}
}

func TestSolve_Unreachable(t *testing.T) {
	g := buildGraph(t, 4, [][3]float64{{0, 1, 1}})
	dist, _, err := refdijkstra.Solve(g, 0)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !math.IsInf(dist[2], 1) || !math.IsInf(dist[3], 1) {
		t.Fatalf("dist = %v, want unreachable vertices at +Inf", dist)
	}
}

func TestSolve_ReturnPath(t *testing.T) {
	g := buildGraph(t, 3, [][3]float64{{0, 1, 1}, {1, 2, 1}})
	_, pred, err := refdijkstra.Solve(g, 0, refdijkstra.WithReturnPath())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if pred[0] != -1 || pred[1] != 0 || pred[2] != 1 {
		t.Fatalf("pred = %v, want [-1 0 1]", pred)
	}
}

func TestSolve_SourceOutOfRange(t *testing.T) {
	g := buildGraph(t, 2, nil)
	_, _, err := refdijkstra.Solve(g, 5)
	if !errors.Is(err, refdijkstra.ErrSourceRange) {
		t.Fatalf("Solve(5) = %v, want ErrSourceRange", err)
	}
}

func TestSolve_NilGraph(t *testing.T) {
	_, _, err := refdijkstra.Solve(nil, 0)
	if !errors.Is(err, refdijkstra.ErrNilGraph) {
		t.Fatalf("Solve(nil) = %v, want ErrNilGraph", err)
	}
}

func TestSolve_ParallelEdgesMinWins(t *testing.T) {
	g := buildGraph(t, 2, [][3]float64{{0, 1, 5}, {0, 1, 2}})
	dist, _, err := refdijkstra.Solve(g, 0)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if dist[1] != 2 {
		t.Fatalf("dist[1] = %v, want 2 (minimum of parallel edges)", dist[1])
	}
}

func TestSolve_SelfLoopNeverShortens(t *testing.T) {
	g := buildGraph(t, 1, [][3]float64{{0, 0, 7}})
	dist, _, err := refdijkstra.Solve(g, 0)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if dist[0] != 0 {
		t.Fatalf("dist[0] = %v, want 0", dist[0])
	}
}
