package sat

import "strings"

// newLongClause registers a long (>=3 literal) clause with the arena and
// watches its first two literals. Callers must have already normalized
// literals (deduped, checked for tautology, checked against the current
// assignment) — see Solver.AddClause and Solver.installLearnt.
func (s *Solver) newLongClause(literals []Literal, redundant bool) ClauseID {
	if redundant {
		// Move the literal with the highest decision level into the second
		// watched slot. In a learnt clause literals[0] is the unassigned
		// asserting literal, so the watches become that literal and the
		// false literal most likely to become unassigned first on
		// backtrack. When no literal is assigned, the order is kept.
		maxLevel, swapAt := -1, -1
		for i, l := range literals {
			if lvl := s.level[l.VarID()]; lvl > maxLevel {
				maxLevel, swapAt = lvl, i
			}
		}
		if swapAt >= 0 {
			literals[swapAt], literals[1] = literals[1], literals[swapAt]
		}
	}

	id := s.arena.alloc(literals, redundant)
	c := s.arena.get(id)
	s.watch(id, c.literals[0].Opposite(), c.literals[1])
	s.watch(id, c.literals[1].Opposite(), c.literals[0])
	return id
}

// locked reports whether clause id is currently the reason for its first
// literal's assignment — a locked clause must never be deleted, since the
// trail's implication graph still points at it.
func (s *Solver) locked(id ClauseID) bool {
	c := s.arena.get(id)
	r := s.reason[c.literals[0].VarID()]
	return r.kind == reasonLong && r.clause == id
}

// deleteClause removes clause id from the watchlists of its first two
// literals and tombstones it in the arena. The caller must ensure the clause
// is not locked.
func (s *Solver) deleteClause(id ClauseID) {
	c := s.arena.get(id)
	s.unwatch(id, c.literals[0].Opposite())
	s.unwatch(id, c.literals[1].Opposite())
	s.arena.tombstone(id)
}

// simplifyClause drops literals that are false at the root level and reports
// whether the clause is now satisfied (and can therefore be deleted outright).
func simplifyClause(s *Solver, c *Clause) bool {
	j := 0
	for _, l := range c.literals {
		switch s.LitValue(l) {
		case True:
			return true
		case False:
			// discard
		default:
			c.literals[j] = l
			j++
		}
	}
	c.literals = c.literals[:j]
	return false
}

// propagateClause is invoked when literal l (the negation of one of the
// clause's watched literals) has just become true. It returns false on
// conflict, true otherwise (clause satisfied, or a new watch was found, or
// the remaining literal was successfully enqueued).
func propagateClause(s *Solver, id ClauseID, l Literal) bool {
	c := s.arena.get(id)

	// Make literals[0] the slot that would need to be asserted; literals[1]
	// becomes the slot that was just falsified.
	opp := l.Opposite()
	if c.literals[0] == opp {
		c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
	}

	if s.LitValue(c.literals[0]) == True {
		s.watch(id, l, c.literals[0])
		return true
	}

	if c.prevPos >= len(c.literals) {
		c.prevPos = 2
	}
	for i := c.prevPos; i < len(c.literals); i++ {
		if s.LitValue(c.literals[i]) != False {
			c.prevPos = i
			c.literals[1], c.literals[i] = c.literals[i], c.literals[1]
			s.watch(id, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}
	for i := 2; i < c.prevPos && i < len(c.literals); i++ {
		if s.LitValue(c.literals[i]) != False {
			c.prevPos = i
			c.literals[1], c.literals[i] = c.literals[i], c.literals[1]
			s.watch(id, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}

	// All other literals are false: the first literal must become true, or
	// this clause is the conflict.
	s.watch(id, l, c.literals[0])
	return s.enqueue(c.literals[0], Reason{kind: reasonLong, clause: id})
}

// explainLong returns the antecedent literals (negated) of a long clause's
// reason, either for the full conflicting clause (l == noLiteral) or for the
// reason a specific literal was assigned (l == clause.literals[0]).
func explainLong(c *Clause, l Literal, out []Literal) []Literal {
	out = out[:0]
	if l == noLiteral {
		for _, q := range c.literals {
			out = append(out, q.Opposite())
		}
		return out
	}
	for _, q := range c.literals[1:] {
		out = append(out, q.Opposite())
	}
	return out
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	var sb strings.Builder
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
