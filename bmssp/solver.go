package bmssp

import (
	"fmt"
	"math"

	"github.com/cx-elchanan-arbiv/BreakingtheSorting/graph"
	"github.com/cx-elchanan-arbiv/BreakingtheSorting/sssp"
)

// Result is the outcome of Solver.Solve (spec.md §6).
type Result struct {
	Distances    []float64
	Predecessors []int
	Source       int
}

// Solver is the module's public entry point: NewSolver binds a read-only
// graph.View, and Solve computes single-source shortest paths from it. Each
// Solve call allocates a fresh sssp.State, so one Solver can be reused for
// successive Solve calls. The only thing a Solver keeps between calls is the
// relaxation count of the last Solve, which Solve writes without
// synchronization; concurrent Solve calls on one Solver are therefore not
// safe.
type Solver struct {
	g       *graph.View
	params  sssp.Params
	relaxes uint64
}

// NewSolver validates g and derives the k/t/L_max parameters once.
func NewSolver(g *graph.View) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.N() == 0 {
		return nil, ErrEmptyGraph
	}

	return &Solver{g: g, params: sssp.DeriveParams(g.N())}, nil
}

// Solve computes shortest-path distances and a predecessor tree from source
// (spec.md §4.4, §6). Preconditions: 0 <= source < g.N().
//
// Postconditions: Distances[source] == 0; for every reachable v,
// Distances[v] is the true shortest-path distance and Predecessors[v] names
// a parent in a valid shortest-path tree; for unreachable v, Distances[v] is
// +Inf and Predecessors[v] == -1.
func (s *Solver) Solve(source int) (Result, error) {
	n := s.g.N()
	if source < 0 || source >= n {
		return Result{}, fmt.Errorf("%w: source=%d, n=%d", ErrSourceRange, source, n)
	}

	st := sssp.NewState(n)
	st.Dist[source] = 0
	st.Complete[source] = true

	for _, e := range s.g.Neighbors(source) {
		if st.Dist[source]+e.Weight < st.Dist[e.To] {
			st.Dist[e.To] = st.Dist[source] + e.Weight
			st.Pred[e.To] = source
		}
	}

	run(s.g, st, s.params, s.params.LMax, math.Inf(1), []int{source})
	s.relaxes = st.RelaxCount

	return Result{
		Distances:    st.Dist,
		Predecessors: st.Pred,
		Source:       source,
	}, nil
}

// RelaxationCount returns the total number of edge-relaxation attempts made
// by the most recent Solve call, mirroring the original implementation's
// relaxation counter (SPEC_FULL.md §8). It is a benchmarking diagnostic, not
// part of the correctness contract.
func (s *Solver) RelaxationCount() uint64 { return s.relaxes }
