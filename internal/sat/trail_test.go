package sat

import "testing"

func TestSolver_EnqueueAndUndo(t *testing.T) {
	s := newTestSolver(2)

	s.newDecisionLevel()
	if ok := s.enqueue(PositiveLiteral(0), decisionReason); !ok {
		t.Fatalf("enqueue of a fresh literal returned false")
	}
	if s.LitValue(PositiveLiteral(0)) != True {
		t.Errorf("LitValue(p0) = %s, want true", s.LitValue(PositiveLiteral(0)))
	}
	if s.LitValue(NegativeLiteral(0)) != False {
		t.Errorf("LitValue(n0) = %s, want false", s.LitValue(NegativeLiteral(0)))
	}
	if s.level[0] != 1 {
		t.Errorf("level[0] = %d, want 1", s.level[0])
	}

	// enqueueing the same literal again reports success without changing
	// anything (already true).
	if ok := s.enqueue(PositiveLiteral(0), unitReason); !ok {
		t.Errorf("re-enqueue of an already-true literal returned false")
	}

	// enqueueing the opposite literal is a conflicting assignment.
	if ok := s.enqueue(NegativeLiteral(0), unitReason); ok {
		t.Errorf("enqueue of the opposite literal returned true, want false")
	}

	s.cancelOneLevel()
	if s.LitValue(PositiveLiteral(0)) != Unknown {
		t.Errorf("LitValue(p0) after cancelOneLevel = %s, want unknown", s.LitValue(PositiveLiteral(0)))
	}
	if s.decisionLevel() != 0 {
		t.Errorf("decisionLevel() = %d after cancelOneLevel, want 0", s.decisionLevel())
	}
}

func TestSolver_UndoThroughRollsBackAssumeMarks(t *testing.T) {
	s := newTestSolver(2)

	s.PushAssumption(PositiveLiteral(0))
	s.PushAssumption(PositiveLiteral(1))

	if outcome := s.enqueueAssumption(); outcome != assumptionEnqueued {
		t.Fatalf("first enqueueAssumption = %v, want assumptionEnqueued", outcome)
	}
	if outcome := s.enqueueAssumption(); outcome != assumptionEnqueued {
		t.Fatalf("second enqueueAssumption = %v, want assumptionEnqueued", outcome)
	}
	if s.decisionLevel() != 2 {
		t.Fatalf("decisionLevel() = %d after two assumptions, want 2", s.decisionLevel())
	}
	if s.assumeLevels != 2 {
		t.Fatalf("assumeLevels = %d, want 2", s.assumeLevels)
	}
	if s.assumptionPos != 2 {
		t.Fatalf("assumptionPos = %d, want 2", s.assumptionPos)
	}

	// Backtracking past both assumption-created levels must roll
	// assumptionPos and assumeLevels back so a future enqueueAssumption call
	// reconsiders both assumptions instead of treating them as drained.
	s.undoThrough(0)

	if s.assumeLevels != 0 {
		t.Errorf("assumeLevels = %d after undoThrough(0), want 0", s.assumeLevels)
	}
	if s.assumptionPos != 0 {
		t.Errorf("assumptionPos = %d after undoThrough(0), want 0", s.assumptionPos)
	}
	if len(s.assumeMarks) != 0 {
		t.Errorf("assumeMarks has %d entries after undoThrough(0), want 0", len(s.assumeMarks))
	}

	if outcome := s.enqueueAssumption(); outcome != assumptionEnqueued {
		t.Errorf("enqueueAssumption after undoThrough(0) = %v, want assumptionEnqueued", outcome)
	}
}

func TestSolver_UndoThroughPartialAssumeRollback(t *testing.T) {
	s := newTestSolver(2)

	s.PushAssumption(PositiveLiteral(0))
	s.PushAssumption(PositiveLiteral(1))
	s.enqueueAssumption()
	s.enqueueAssumption()

	// Backtracking to level 1 undoes only the second assumption's level.
	s.undoThrough(1)

	if s.assumeLevels != 1 {
		t.Errorf("assumeLevels = %d after undoThrough(1), want 1", s.assumeLevels)
	}
	if s.assumptionPos != 1 {
		t.Errorf("assumptionPos = %d after undoThrough(1), want 1", s.assumptionPos)
	}
	if s.LitValue(PositiveLiteral(0)) != True {
		t.Errorf("first assumption's literal was undone by a partial backtrack")
	}
}
