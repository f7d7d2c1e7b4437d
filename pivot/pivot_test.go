package pivot_test

import (
	"math"
	"testing"

	"github.com/cx-elchanan-arbiv/BreakingtheSorting/graph"
	"github.com/cx-elchanan-arbiv/BreakingtheSorting/pivot"
	"github.com/cx-elchanan-arbiv/BreakingtheSorting/sssp"
)

func starGraph(t *testing.T, n int) *graph.View {
	t.Helper()
	b, _ := graph.NewBuilder(n)
	for i := 1; i < n; i++ {
		if err := b.AddEdge(0, i, float64(i)); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	g, _ := b.Build()

	return g
}

func TestFind_WContainsFrontier(t *testing.T) {
	g := starGraph(t, 10)
	st := sssp.NewState(10)
	st.Dist[0] = 0

	_, w := pivot.Find(g, st, 3, math.Inf(1), []int{0})

	found := map[int]bool{}
	for _, v := range w {
		found[v] = true
	}
	if !found[0] {
		t.Fatal("W must contain the frontier vertex 0")
	}
}

func TestFind_PivotSubsetOfFrontier(t *testing.T) {
	g := starGraph(t, 20)
	st := sssp.NewState(20)
	st.Dist[0] = 0

	p, _ := pivot.Find(g, st, 2, math.Inf(1), []int{0})

	if len(p) == 0 {
		t.Fatal("P must never be empty")
	}
	for _, x := range p {
		if x != 0 {
			t.Fatalf("P = %v, want subset of frontier {0}", p)
		}
	}
}

func TestFind_MarksWComplete(t *testing.T) {
	// k=5 keeps |W| = 5 from exceeding k*|S|, so Find takes the full
	// pivot-selection path (the early exit returns before marking).
	g := starGraph(t, 5)
	st := sssp.NewState(5)
	st.Dist[0] = 0

	_, w := pivot.Find(g, st, 5, math.Inf(1), []int{0})

	for _, v := range w {
		if !st.Complete[v] {
			t.Fatalf("vertex %d in W must be marked complete", v)
		}
	}
}

func TestFind_BoundExcludesFarVertices(t *testing.T) {
	// With a tight bound, distant star leaves must not enter W.
	g := starGraph(t, 5) // edges 0->i weight i, i=1..4
	st := sssp.NewState(5)
	st.Dist[0] = 0

	_, w := pivot.Find(g, st, 2, 2.5, []int{0})

	found := map[int]bool{}
	for _, v := range w {
		found[v] = true
	}
	if found[3] || found[4] {
		t.Fatalf("W = %v, want vertices with weight 3/4 excluded by bound 2.5", w)
	}
}

func TestFind_EarlyExitReturnsFullFrontierAsPivots(t *testing.T) {
	// A wide star with tiny k forces |W| > k*|S| quickly, triggering the
	// spec's correctness-preserving early exit (P := S).
	g := starGraph(t, 50)
	st := sssp.NewState(50)
	st.Dist[0] = 0

	p, _ := pivot.Find(g, st, 2, math.Inf(1), []int{0})
	if len(p) != 1 || p[0] != 0 {
		t.Fatalf("P = %v, want {0} via early exit", p)
	}
}
