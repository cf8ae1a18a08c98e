package sat

// reasonKind tags the shape of a Reason: a decision literal has
// no antecedent at all, a unit fact has an empty antecedent, a binary or long
// antecedent is the clause (minus the assigned literal) that forced it, and
// an assumption is a caller-supplied literal treated like a decision but
// tracked separately so the failed-assumption core can tell them apart from
// ordinary search decisions.
type reasonKind uint8

const (
	reasonDecision reasonKind = iota
	reasonUnit
	reasonBinary
	reasonLong
	reasonAssumption
)

// Reason is the per-assigned-variable antecedent. It is a
// tagged variant carrying either a clause handle or a literal, never a back
// pointer, which keeps the implication graph acyclic by construction: a
// reason's antecedent literals are always assigned strictly earlier on the
// trail than the literal they justify.
type Reason struct {
	kind    reasonKind
	other   Literal  // valid when kind == reasonBinary
	clause  ClauseID // valid when kind == reasonLong
}

var (
	decisionReason   = Reason{kind: reasonDecision}
	unitReason       = Reason{kind: reasonUnit}
	assumptionReason = Reason{kind: reasonAssumption}
)

func binaryReason(other Literal) Reason {
	return Reason{kind: reasonBinary, other: other}
}

// assignment + trail: the current partial assignment and the
// chronological stack of assigned literals grouped by decision level.
//
// These fields live directly on Solver (see solver.go) rather than in a
// separate exported type: the driver is organized as disjoint, explicitly
// scoped sub-components, which in idiomatic Go is most naturally a set of
// fields that each method only touches the subset of, not a wrapper type
// that would just have to be threaded back through every call alongside the
// clause database and watchlists it needs to mutate in the same step.

// LitValue returns the current truth value of literal l.
func (s *Solver) LitValue(l Literal) LBool {
	return s.assigns[l]
}

// VarValue returns the current truth value of variable v's positive literal.
func (s *Solver) VarValue(v int) LBool {
	return s.assigns[PositiveLiteral(v)]
}

func (s *Solver) isTrue(l Literal) bool       { return s.assigns[l] == True }
func (s *Solver) isFalse(l Literal) bool      { return s.assigns[l] == False }
func (s *Solver) isUnassigned(v int) bool     { return s.assigns[PositiveLiteral(v)] == Unknown }

func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// enqueue assigns l to true with the given reason at the current decision
// level. It returns false if l's variable was already assigned the opposite
// value (a conflicting assignment) and true otherwise (including when l was
// already assigned true).
func (s *Solver) enqueue(l Literal, reason Reason) bool {
	switch s.LitValue(l) {
	case False:
		return false
	case True:
		return true
	default:
		v := l.VarID()
		s.assigns[l] = True
		s.assigns[l.Opposite()] = False
		s.level[v] = s.decisionLevel()
		s.reason[v] = reason
		s.trail = append(s.trail, l)
		s.propQueue.Push(l)
		s.order.Remove(v)
		return true
	}
}

// newDecisionLevel opens a new decision level without assigning anything
// yet; callers enqueue the level's first literal immediately after.
func (s *Solver) newDecisionLevel() {
	s.trailLim = append(s.trailLim, len(s.trail))
}

// undoOne pops the last trail entry, clearing its assignment and reporting
// its polarity back to the decision heuristic for phase saving.
func (s *Solver) undoOne() {
	l := s.trail[len(s.trail)-1]
	v := l.VarID()
	lastValue := s.VarValue(v)

	s.order.Reinsert(v, lastValue)

	s.assigns[l] = Unknown
	s.assigns[l.Opposite()] = Unknown
	s.reason[v] = Reason{}
	s.level[v] = -1

	s.trail = s.trail[:len(s.trail)-1]
}

// cancelOneLevel undoes every assignment made at the current decision level.
func (s *Solver) cancelOneLevel() {
	n := len(s.trail) - s.trailLim[len(s.trailLim)-1]
	for ; n != 0; n-- {
		s.undoOne()
	}
	s.trailLim = s.trailLim[:len(s.trailLim)-1]
}

// undoThrough pops the trail's tail until no decision level above target
// remains, then rolls the assumption cursor back over any
// assumption whose consumption happened above target, so enqueueAssumption
// reconsiders it instead of treating it as already drained.
func (s *Solver) undoThrough(target int) {
	for s.decisionLevel() > target {
		s.cancelOneLevel()
	}
	for len(s.assumeMarks) > 0 {
		m := s.assumeMarks[len(s.assumeMarks)-1]
		if m.afterLevel <= target {
			break
		}
		s.assumeMarks = s.assumeMarks[:len(s.assumeMarks)-1]
		s.assumptionPos = m.pos
		if m.madeLevel {
			s.assumeLevels--
		}
	}
}
