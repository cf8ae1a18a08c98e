package sat

// proveUnits is the proof-stream half of the Simplifier Hook: any level-0 literal that
// reached the trail since the last call is reported to the proof sink as a
// unit AtClause step *before* the caller is allowed to react to a
// propagation conflict from the same pass, so a concurrent top-level
// conflict never swallows the units that led to it.
//
// It returns whether any new unit was found.
func (s *Solver) proveUnits() bool {
	found := false
	for ; s.provenUnits < len(s.trail) && s.level[s.trail[s.provenUnits].VarID()] == 0; s.provenUnits++ {
		lit := s.trail[s.provenUnits]
		if err := s.proof.AddStep(true, unitStep(lit)); err != nil {
			s.poison(err)
			return found
		}
		found = true
	}
	return found
}

// simplify is the Simplifier Hook: invoked only
// when propagation discovered new top-level units, it strengthens the
// clause database using those units. Deeper inprocessing (subsumption,
// vivification, ...) is explicitly out of scope past this hook point.
func (s *Solver) simplify() {
	if s.decisionLevel() != 0 {
		return
	}

	j := 0
	for _, id := range s.learnts {
		c := s.arena.get(id)
		if c.isDeleted() {
			continue
		}
		if simplifyClause(s, c) {
			if !s.locked(id) {
				s.deleteClause(id)
				continue
			}
		}
		s.learnts[j] = id
		j++
	}
	s.learnts = s.learnts[:j]

	j = 0
	for _, id := range s.original {
		c := s.arena.get(id)
		if c.isDeleted() {
			continue
		}
		if simplifyClause(s, c) {
			if !s.locked(id) {
				s.deleteClause(id)
				continue
			}
		}
		s.original[j] = id
		j++
	}
	s.original = s.original[:j]
}
