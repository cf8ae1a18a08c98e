package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToDimacsLit(t *testing.T) {
	if got, want := toDimacsLit(PositiveLiteral(0)), int32(1); got != want {
		t.Errorf("toDimacsLit(p0) = %d, want %d", got, want)
	}
	if got, want := toDimacsLit(NegativeLiteral(2)), int32(-3); got != want {
		t.Errorf("toDimacsLit(n2) = %d, want %d", got, want)
	}
}

func TestToDimacsLits(t *testing.T) {
	got := toDimacsLits([]Literal{PositiveLiteral(0), NegativeLiteral(1)})
	want := []int32{1, -2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("toDimacsLits() mismatch (-want +got):\n%s", diff)
	}
}

func TestUnitStep(t *testing.T) {
	step := unitStep(NegativeLiteral(0))
	if step.Redundant {
		t.Errorf("Redundant = true, want false for a unit step")
	}
	if want := []int32{-1}; cmp.Diff(want, step.Clause) != "" {
		t.Errorf("Clause = %v, want %v", step.Clause, want)
	}
}

func TestLearntStep(t *testing.T) {
	short := learntStep([]Literal{PositiveLiteral(0), NegativeLiteral(1)}, []uint64{7})
	if short.Redundant {
		t.Errorf("Redundant = true for a 2-literal learnt clause, want false")
	}

	long := learntStep([]Literal{PositiveLiteral(0), NegativeLiteral(1), PositiveLiteral(2)}, nil)
	if !long.Redundant {
		t.Errorf("Redundant = false for a 3-literal learnt clause, want true")
	}
	if want := []int32{1, -2, 3}; cmp.Diff(want, long.Clause) != "" {
		t.Errorf("Clause = %v, want %v", long.Clause, want)
	}
}

func TestModelStep(t *testing.T) {
	assigns := make([]LBool, 6) // 3 variables
	assigns[PositiveLiteral(0)], assigns[NegativeLiteral(0)] = True, False
	assigns[PositiveLiteral(1)], assigns[NegativeLiteral(1)] = False, True
	// variable 2 left unassigned

	step := modelStep(assigns)
	want := []int32{1, -2}
	if diff := cmp.Diff(want, step.Model); diff != "" {
		t.Errorf("Model mismatch (-want +got):\n%s", diff)
	}
}

func TestPoison(t *testing.T) {
	s := newTestSolver(1)

	testErr := errTest{}
	s.poison(testErr)
	if s.sinkErr != testErr {
		t.Errorf("sinkErr = %v, want %v", s.sinkErr, testErr)
	}
}

type errTest struct{}

func (errTest) Error() string { return "test poison error" }
