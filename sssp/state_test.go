package sssp_test

import (
	"math"
	"testing"

	"github.com/cx-elchanan-arbiv/BreakingtheSorting/sssp"
)

func TestNewState_Defaults(t *testing.T) {
	st := sssp.NewState(3)
	for i := 0; i < 3; i++ {
		if !math.IsInf(st.Dist[i], 1) {
			t.Errorf("Dist[%d] = %v, want +Inf", i, st.Dist[i])
		}
		if st.Pred[i] != -1 {
			t.Errorf("Pred[%d] = %d, want -1", i, st.Pred[i])
		}
		if st.Complete[i] {
			t.Errorf("Complete[%d] = true, want false", i)
		}
	}
}

func TestState_RelaxTieBreakUsesLatest(t *testing.T) {
	st := sssp.NewState(3)
	st.Dist[0] = 0
	st.Dist[1] = 0
	st.Dist[2] = math.Inf(1)

	if _, changed := st.Relax(0, 2, 5); !changed {
		t.Fatal("first relax should apply")
	}
	if st.Pred[2] != 0 {
		t.Fatalf("Pred[2] = %d, want 0", st.Pred[2])
	}
	// Equal-weight path from vertex 1: <= means the later relaxation wins.
	if _, changed := st.Relax(1, 2, 5); !changed {
		t.Fatal("tied relax should still apply (<=)")
	}
	if st.Pred[2] != 1 {
		t.Fatalf("Pred[2] = %d, want 1 (later-visited wins on tie)", st.Pred[2])
	}
}

func TestState_RelaxRejectsWorse(t *testing.T) {
	st := sssp.NewState(2)
	st.Dist[0] = 0
	st.Dist[1] = 1
	if _, changed := st.Relax(0, 1, 5); changed {
		t.Fatal("relax with worse candidate must not apply")
	}
	if st.Dist[1] != 1 {
		t.Fatalf("Dist[1] = %v, want unchanged 1", st.Dist[1])
	}
}
