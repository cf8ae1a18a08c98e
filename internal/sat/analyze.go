package sat

import "hash/fnv"

// analysisResult is what the Conflict Analyzer hands back to
// the driver: the learned clause (first literal is the asserting UIP), the
// backtrack target level, and the data the proof step needs.
type analysisResult struct {
	learnt         []Literal
	backtrackLevel int
	lbd            int
	hashes         []uint64
}

// explain returns the antecedent literals (already negated, ready to be
// resolved into the learned clause) of the reason behind literal l's
// assignment, or of the conflicting clause itself when l == noLiteral.
func (s *Solver) explain(conflict Conflict, r Reason, l Literal) []Literal {
	if l == noLiteral {
		if conflict.isBinary {
			s.tmpReason = append(s.tmpReason[:0], conflict.binary[0].Opposite(), conflict.binary[1].Opposite())
			return s.tmpReason
		}
		c := s.arena.get(conflict.long)
		s.bumpClauseActivity(c)
		return explainLong(c, noLiteral, s.tmpReason)
	}

	switch r.kind {
	case reasonBinary:
		s.tmpReason = append(s.tmpReason[:0], r.other.Opposite())
		return s.tmpReason
	case reasonLong:
		c := s.arena.get(r.clause)
		s.bumpClauseActivity(c)
		return explainLong(c, l, s.tmpReason)
	default: // reasonUnit, reasonDecision, reasonAssumption: no antecedent
		return s.tmpReason[:0]
	}
}

// analyze performs first-UIP resolution starting from the
// conflicting clause, walking the trail backwards and resolving against each
// marked literal's reason until exactly one literal at the conflict's
// decision level remains. That literal's negation becomes the learned
// clause's asserting literal.
func (s *Solver) analyze(conflict Conflict) analysisResult {
	nImplicationPoints := 0
	backtrackLevel := 0

	s.tmpLearnts = append(s.tmpLearnts[:0], noLiteral) // slot 0 reserved for the UIP
	s.seenVar.Clear()
	s.tmpHashes = s.tmpHashes[:0]

	nextIdx := len(s.trail) - 1
	l := noLiteral
	reason := Reason{}

	for {
		explained := s.explain(conflict, reason, l)
		if h := s.hashOfReason(conflict, reason, l); h != 0 {
			s.tmpHashes = append(s.tmpHashes, h)
		}

		for _, q := range explained {
			v := q.VarID()
			if s.seenVar.Contains(v) {
				continue
			}
			s.seenVar.Add(v)

			if s.level[v] == s.decisionLevel() {
				nImplicationPoints++
				continue
			}
			s.tmpLearnts = append(s.tmpLearnts, q.Opposite())
			if lvl := s.level[v]; lvl > backtrackLevel {
				backtrackLevel = lvl
			}
		}

		for {
			l = s.trail[nextIdx]
			nextIdx--
			v := l.VarID()
			reason = s.reason[v]
			if s.seenVar.Contains(v) {
				break
			}
		}

		nImplicationPoints--
		if nImplicationPoints <= 0 {
			break
		}
	}

	s.tmpLearnts[0] = l.Opposite()

	s.minimize()

	return analysisResult{
		learnt:         append([]Literal(nil), s.tmpLearnts...),
		backtrackLevel: backtrackLevel,
		lbd:            s.computeLBD(s.tmpLearnts),
		hashes:         append([]uint64(nil), s.tmpHashes...),
	}
}

// minimize applies self-subsuming resolution: a tail
// literal can be dropped if every literal of its own reason is already
// subsumed by literals already in the learned clause.
func (s *Solver) minimize() {
	kept := s.tmpLearnts[:1]
	for _, l := range s.tmpLearnts[1:] {
		if !s.redundant(l) {
			kept = append(kept, l)
		}
	}
	s.tmpLearnts = kept
}

// redundant reports whether literal l (already negated into the learned
// clause, i.e. its variable's reason is what we inspect) is implied by the
// literals already marked seen, and can therefore be dropped from the
// learned clause.
func (s *Solver) redundant(l Literal) bool {
	v := l.VarID()
	r := s.reason[v]
	switch r.kind {
	case reasonDecision, reasonAssumption, reasonUnit:
		return false
	case reasonBinary:
		return s.seenVar.Contains(r.other.VarID())
	case reasonLong:
		c := s.arena.get(r.clause)
		for _, q := range c.literals[1:] {
			if !s.seenVar.Contains(q.VarID()) {
				return false
			}
		}
		return true
	}
	return false
}

// computeLBD is the Literal Block Distance: the number of
// distinct decision levels represented among a clause's literals. Lower is
// better for a learnt clause's long-term survival odds in ReduceDB.
func (s *Solver) computeLBD(literals []Literal) int {
	s.seenLevel.Clear()
	n := 0
	for _, l := range literals {
		lvl := s.level[l.VarID()]
		if !s.seenLevel.Contains(lvl) {
			s.seenLevel.Add(lvl)
			n++
		}
	}
	return n
}

// hashOfReason computes a cheap checksum of the antecedent clause consumed
// at this resolution step, over its literals in their current order (which
// watch moves can change), threaded through to the proof step's
// propagation_hashes.
func (s *Solver) hashOfReason(conflict Conflict, r Reason, l Literal) uint64 {
	h := fnv.New64a()
	switch {
	case l == noLiteral && conflict.isBinary:
		writeLiterals(h, conflict.binary[:])
	case l == noLiteral:
		writeLiterals(h, s.arena.get(conflict.long).literals)
	case r.kind == reasonBinary:
		writeLiterals(h, []Literal{l, r.other})
	case r.kind == reasonLong:
		writeLiterals(h, s.arena.get(r.clause).literals)
	default:
		return 0
	}
	return h.Sum64()
}

func writeLiterals(h interface{ Write([]byte) (int, error) }, literals []Literal) {
	for _, l := range literals {
		v := uint32(l)
		h.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
	}
}
