package sat

// Conflict identifies what caused a propagation conflict: either a binary
// clause (represented by its two literals, both false) or a long clause in
// the arena.
type Conflict struct {
	isBinary bool
	binary   [2]Literal
	long     ClauseID
}

// Propagate is the Propagator: it drains the propagation
// queue, applying BCP over the binary index and the two-watched-literal
// index, until either the queue is empty (quiescence) or a clause is found
// with every literal false.
//
// On conflict, the conflicting clause is left untouched in the database and
// the trail retains every implication leading up to it, so the analyzer can
// walk back over it.
func (s *Solver) Propagate() (Conflict, bool) {
	for s.propQueue.Size() > 0 {
		l := s.propQueue.Pop()

		if conflict, ok := s.propagateBinary(l); ok {
			s.propQueue.Clear()
			return conflict, true
		}

		if conflict, ok := s.propagateWatched(l); ok {
			s.propQueue.Clear()
			return conflict, true
		}
	}
	return Conflict{}, false
}

// propagateBinary scans ℓ's binary list: for each (¬ℓ ∨ ℓ′),
// a false ℓ′ is a conflict and an unassigned ℓ′ is forced true.
func (s *Solver) propagateBinary(l Literal) (Conflict, bool) {
	for _, partner := range s.binary.of(l) {
		switch s.LitValue(partner) {
		case False:
			return Conflict{isBinary: true, binary: [2]Literal{l.Opposite(), partner}}, true
		case Unknown:
			s.enqueue(partner, binaryReason(l.Opposite()))
		}
	}
	return Conflict{}, false
}

// propagateWatched scans l's watchlist: a clause is registered under the key
// X = (one of its two watched literals).Opposite(), so it surfaces here
// exactly when l == X, i.e. when that watched literal has just gone false.
func (s *Solver) propagateWatched(l Literal) (Conflict, bool) {
	s.tmpWatchers = append(s.tmpWatchers[:0], s.watches.byLiteral[l]...)
	s.watches.byLiteral[l] = s.watches.byLiteral[l][:0]

	for i, w := range s.tmpWatchers {
		if s.LitValue(w.guard) == True {
			s.watches.byLiteral[l] = append(s.watches.byLiteral[l], w)
			continue
		}

		if propagateClause(s, w.clause, l) {
			continue
		}

		// Conflict: restore the remaining (unprocessed) watchers and report.
		s.watches.byLiteral[l] = append(s.watches.byLiteral[l], s.tmpWatchers[i+1:]...)
		return Conflict{long: w.clause}, true
	}
	return Conflict{}, false
}
