package palette

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/distinct/internal/colour"
)

func greyRamp(k int) CandidateSet {
	colours := make([]colour.RGB, k)
	for i := range colours {
		v := float64(i) / float64(k)
		colours[i] = colour.RGB{R: v, G: v, B: v}
	}
	return CandidateSet{Colours: colours, Origin: OriginUser}
}

func TestPlanBudgetKeepsSmallSets(t *testing.T) {
	set := greyRamp(10)

	got, err := planBudget(set, 0)
	if err != nil {
		t.Fatalf("planBudget failed: %v", err)
	}
	if diff := cmp.Diff(set.Colours, got.Colours); diff != "" {
		t.Errorf("set changed under default cap:\n%s", diff)
	}
}

func TestPlanBudgetSubsamplesDeterministically(t *testing.T) {
	set := greyRamp(10)

	// 128 bytes holds a 4x4 matrix of 8-byte cells.
	got, err := planBudget(set, 128)
	if err != nil {
		t.Fatalf("planBudget failed: %v", err)
	}

	// Uniform stride over the original order: indices i*10/4.
	want := []colour.RGB{
		set.Colours[0], set.Colours[2], set.Colours[5], set.Colours[7],
	}
	if diff := cmp.Diff(want, got.Colours); diff != "" {
		t.Errorf("subsample mismatch (-want +got):\n%s", diff)
	}

	again, err := planBudget(set, 128)
	if err != nil {
		t.Fatalf("second planBudget failed: %v", err)
	}
	if diff := cmp.Diff(got.Colours, again.Colours); diff != "" {
		t.Errorf("subsample not reproducible:\n%s", diff)
	}
}

func TestPlanBudgetDegenerateCeiling(t *testing.T) {
	if _, err := planBudget(greyRamp(3), 7); !errors.Is(err, ErrMemoryBudgetExceeded) {
		t.Errorf("error = %v, want ErrMemoryBudgetExceeded", err)
	}

	// Eight bytes is exactly one cell: a single candidate fits.
	got, err := planBudget(greyRamp(3), 8)
	if err != nil {
		t.Fatalf("planBudget failed: %v", err)
	}
	if len(got.Colours) != 1 {
		t.Errorf("effective count = %d, want 1", len(got.Colours))
	}
}

func TestPlanBudgetAppliesDefaultCap(t *testing.T) {
	got, err := planBudget(greyRamp(maxCandidates+500), 0)
	if err != nil {
		t.Fatalf("planBudget failed: %v", err)
	}
	if len(got.Colours) != maxCandidates {
		t.Errorf("effective count = %d, want %d", len(got.Colours), maxCandidates)
	}
}
