package sat

import "testing"

func TestEnqueueAssumption_Unassigned(t *testing.T) {
	s := newTestSolver(2)
	s.PushAssumption(PositiveLiteral(0))

	if outcome := s.enqueueAssumption(); outcome != assumptionEnqueued {
		t.Fatalf("enqueueAssumption = %v, want assumptionEnqueued", outcome)
	}
	if s.decisionLevel() != 1 {
		t.Errorf("decisionLevel() = %d, want 1 (a fresh decision level)", s.decisionLevel())
	}
	if len(s.assumeMarks) != 1 || !s.assumeMarks[0].madeLevel {
		t.Errorf("assumeMarks = %+v, want one entry with madeLevel=true", s.assumeMarks)
	}
}

func TestEnqueueAssumption_AlreadyImplied(t *testing.T) {
	s := newTestSolver(2)
	s.binary.add(NegativeLiteral(0), PositiveLiteral(1)) // ¬p0 v p1

	s.newDecisionLevel()
	s.enqueue(PositiveLiteral(0), decisionReason)
	s.Propagate() // forces p1 true at the same level

	s.PushAssumption(PositiveLiteral(1))
	if outcome := s.enqueueAssumption(); outcome != assumptionEnqueued {
		t.Fatalf("enqueueAssumption = %v, want assumptionEnqueued", outcome)
	}
	if s.decisionLevel() != 1 {
		t.Errorf("decisionLevel() = %d, an already-true assumption must not open a level", s.decisionLevel())
	}
	if len(s.assumeMarks) != 1 || s.assumeMarks[0].madeLevel {
		t.Errorf("assumeMarks = %+v, want one entry with madeLevel=false", s.assumeMarks)
	}
}

func TestEnqueueAssumption_ConflictComputesFailedCore(t *testing.T) {
	s := newTestSolver(2)
	s.binary.add(NegativeLiteral(0), PositiveLiteral(1)) // ¬p0 v p1
	s.PushAssumption(PositiveLiteral(0))
	s.PushAssumption(NegativeLiteral(1))

	if outcome := s.enqueueAssumption(); outcome != assumptionEnqueued {
		t.Fatalf("first enqueueAssumption = %v, want assumptionEnqueued", outcome)
	}
	if _, hasConflict := s.Propagate(); hasConflict {
		t.Fatalf("unexpected conflict during propagation")
	}

	outcome := s.enqueueAssumption()
	if outcome != assumptionConflict {
		t.Fatalf("second enqueueAssumption = %v, want assumptionConflict", outcome)
	}

	want := []Literal{PositiveLiteral(0)}
	got := s.FailedAssumptions()
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("FailedAssumptions() = %v, want %v", got, want)
	}
}

func TestClearAssumptions(t *testing.T) {
	s := newTestSolver(2)
	s.PushAssumption(PositiveLiteral(0))
	s.enqueueAssumption()

	s.ClearAssumptions()

	if len(s.assumptions) != 0 {
		t.Errorf("assumptions has %d entries after ClearAssumptions, want 0", len(s.assumptions))
	}
	if s.decisionLevel() != 0 {
		t.Errorf("decisionLevel() = %d after ClearAssumptions, want 0", s.decisionLevel())
	}
	if s.state != StateUnknown {
		t.Errorf("state = %v after ClearAssumptions, want StateUnknown", s.state)
	}
}
