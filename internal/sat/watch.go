package sat

// watcher is a Watchlist entry: a long clause watching this
// literal's negation, plus a blocking literal whose truth would satisfy the
// clause without needing to load it from the arena at all.
type watcher struct {
	clause ClauseID
	guard  Literal
}

// watchlists is the two-watched-literal index: from each
// literal l to the long clauses watching ¬l, which are visited once l
// becomes true.
type watchlists struct {
	byLiteral [][]watcher
}

func (w *watchlists) expand() {
	w.byLiteral = append(w.byLiteral, nil, nil)
}

func (s *Solver) watch(id ClauseID, on Literal, guard Literal) {
	s.watches.byLiteral[on] = append(s.watches.byLiteral[on], watcher{clause: id, guard: guard})
}

func (s *Solver) unwatch(id ClauseID, on Literal) {
	ws := s.watches.byLiteral[on]
	j := 0
	for i := range ws {
		if ws[i].clause != id {
			ws[j] = ws[i]
			j++
		}
	}
	s.watches.byLiteral[on] = ws[:j]
}
