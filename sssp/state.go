package sssp

import "math"

// State is the tentative-distance array d-hat, predecessor array, and
// completion flags shared by every BMSSP activation within one Solve call.
type State struct {
	Dist     []float64
	Pred     []int
	Complete []bool

	// RelaxCount totals every edge visited during a relaxation attempt,
	// successful or not, across pivot.Find, bmssp.run, and the base case.
	// It mirrors NewSSSP::getRelaxationCount() from the original
	// implementation and exists purely as a diagnostic for benchmarking.
	RelaxCount uint64
}

// NewState allocates a fresh State for n vertices: every distance is +Inf,
// every predecessor is -1, and nothing is complete.
func NewState(n int) *State {
	dist := make([]float64, n)
	pred := make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		pred[i] = -1
	}

	return &State{Dist: dist, Pred: pred, Complete: make([]bool, n)}
}

// Relax applies the spec's tie-breaking relaxation rule (<=, not <): if
// dist[u]+w is no larger than the current dist[v], it wins, keeping the
// predecessor edge deterministic when paths tie. It reports whether the
// distance actually changed, which callers use to decide whether to push v
// onward.
func (s *State) Relax(u, v int, w float64) (newDist float64, changed bool) {
	cand := s.Dist[u] + w
	if cand <= s.Dist[v] {
		s.Dist[v] = cand
		s.Pred[v] = u

		return cand, true
	}

	return s.Dist[v], false
}
