package sat

// binaryIndex is the Clause Database's binary-clause store:
// for each literal l, the list of literals l' such that the binary clause
// (¬l ∨ l') exists, i.e. the literals forced true once l becomes true.
// Binary clauses carry no activity/lbd/redundant metadata:
// a 2-literal clause is never worth keeping-but-unproductive the way a long
// learnt clause can be, so there is nothing to track.
type binaryIndex struct {
	partners [][]Literal
}

func (b *binaryIndex) expand() {
	b.partners = append(b.partners, nil, nil)
}

// add registers clause (a ∨ b) in both directions. Duplicate binary clauses
// are tolerated: adding the same pair twice just means propagation will scan
// the duplicated partner twice, which cannot cause a literal to be enqueued
// twice since Solver.enqueue is idempotent on an already-assigned literal.
func (b *binaryIndex) add(a, c Literal) {
	b.partners[a.Opposite()] = append(b.partners[a.Opposite()], c)
	b.partners[c.Opposite()] = append(b.partners[c.Opposite()], a)
}

func (b *binaryIndex) of(l Literal) []Literal {
	return b.partners[l]
}
