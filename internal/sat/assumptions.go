package sat

// assumptionOutcome is the result of draining one assumption.
type assumptionOutcome uint8

const (
	assumptionEnqueued assumptionOutcome = iota
	assumptionConflict
	assumptionDone
)

// PushAssumption appends lit to the assumption stack. It takes
// effect on the next ConflictStep call; assumptions already consumed by an
// in-progress search are not retroactively affected.
func (s *Solver) PushAssumption(lit Literal) {
	s.assumptions = append(s.assumptions, lit)
}

// ClearAssumptions empties the assumption stack and backtracks to decision
// level 0, returning the solver to Unknown unless it is permanently Unsat.
func (s *Solver) ClearAssumptions() {
	s.assumptions = s.assumptions[:0]
	s.assumptionPos = 0
	s.assumeLevels = 0
	s.assumeMarks = s.assumeMarks[:0]
	if s.state != StateUnsat {
		s.undoThrough(0)
		s.state = StateUnknown
		s.sinkErr = nil
	}
}

// assumeMark records enough state to undo one consumed assumption when the
// trail backtracks past the level it was consumed at (see undoThrough in
// trail.go). pos is the assumptionPos to restore; afterLevel is
// s.decisionLevel() as it stood immediately after this assumption was
// consumed (equal to the level beforehand when the assumption was already
// implied and created no level of its own, one higher when it did).
type assumeMark struct {
	pos        int
	afterLevel int
	madeLevel  bool
}

// enqueueAssumption drains one assumption off the stack. Propagation always runs before this is called in a given
// find-conflict iteration, so an assumption contradicted by any derivation
// so far — including one made by an earlier assumption in the same batch —
// is already reflected in LitValue by the time we look at it here.
func (s *Solver) enqueueAssumption() assumptionOutcome {
	if s.assumptionPos >= len(s.assumptions) {
		return assumptionDone
	}
	lit := s.assumptions[s.assumptionPos]
	pos := s.assumptionPos
	s.assumptionPos++

	switch s.LitValue(lit) {
	case True:
		// Already implied; consistent, nothing new to assign. Still marked,
		// since whatever implied it may itself be undone later.
		s.assumeMarks = append(s.assumeMarks, assumeMark{pos: pos, afterLevel: s.decisionLevel()})
		return assumptionEnqueued
	case False:
		s.failedCore = s.computeFailedCore(lit)
		return assumptionConflict
	default:
		s.newDecisionLevel()
		s.assumeLevels++
		s.enqueue(lit, assumptionReason)
		s.assumeMarks = append(s.assumeMarks, assumeMark{pos: pos, afterLevel: s.decisionLevel(), madeLevel: true})
		return assumptionEnqueued
	}
}

// FailedAssumptions returns the subset of pushed assumptions sufficient to
// derive UNSAT, valid once State() == UnsatUnderAssumptions.
func (s *Solver) FailedAssumptions() []Literal {
	return s.failedCore
}

// computeFailedCore implements the standard incremental-SAT analyzeFinal
// technique:
// walk the trail backwards from ¬lit, marking antecedent variables exactly
// as analyze does, but without stopping at the first UIP — continue until
// every marked variable is either a decision-level-0 fact or itself one of
// the pushed assumption literals, and collect those assumption literals.
func (s *Solver) computeFailedCore(lit Literal) []Literal {
	s.seenVar.Clear()
	s.seenVar.Add(lit.VarID())

	var core []Literal
	for i := len(s.trail) - 1; i >= 0; i-- {
		v := s.trail[i].VarID()
		if !s.seenVar.Contains(v) {
			continue
		}

		r := s.reason[v]
		if r.kind == reasonAssumption {
			core = append(core, s.trail[i])
			continue
		}
		if s.level[v] == 0 {
			continue
		}

		switch r.kind {
		case reasonBinary:
			s.seenVar.Add(r.other.VarID())
		case reasonLong:
			for _, q := range s.arena.get(r.clause).literals[1:] {
				s.seenVar.Add(q.VarID())
			}
		}
	}

	// lit can conflict with a fact the base formula already forces at level
	// 0, with no assumption in the chain at all (the walk above never finds
	// a reasonAssumption entry). The core is then lit itself: no other
	// assumption is responsible, this one alone is unsatisfiable with the
	// formula.
	if len(core) == 0 {
		core = append(core, lit)
	}
	return core
}
