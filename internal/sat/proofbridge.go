package sat

import "github.com/cdclgo/solver/internal/proof"

// toDimacsLit converts the core's packed Literal into the signed-DIMACS
// convention internal/proof uses, keeping that package independent of this
// one's encoding.
func toDimacsLit(l Literal) int32 {
	v := int32(l.VarID()) + 1
	if l.IsPositive() {
		return v
	}
	return -v
}

func toDimacsLits(literals []Literal) []int32 {
	out := make([]int32, len(literals))
	for i, l := range literals {
		out[i] = toDimacsLit(l)
	}
	return out
}

func unitStep(lit Literal) proof.Step {
	return proof.Step{
		Redundant: false,
		Clause:    []int32{toDimacsLit(lit)},
	}
}

func learntStep(learnt []Literal, hashes []uint64) proof.Step {
	return proof.Step{
		Redundant:         len(learnt) > 2,
		Clause:            toDimacsLits(learnt),
		PropagationHashes: hashes,
	}
}

func modelStep(assigns []LBool) proof.Step {
	model := make([]int32, 0, len(assigns)/2)
	for v := 0; v < len(assigns)/2; v++ {
		switch assigns[PositiveLiteral(v)] {
		case True:
			model = append(model, int32(v+1))
		case False:
			model = append(model, -int32(v+1))
		}
	}
	return proof.Step{Model: model}
}

// poison marks the solver unusable after a fatal proof-sink write failure
//. Every subsequent ConflictStep call becomes a no-op until the
// caller calls Reset.
func (s *Solver) poison(err error) {
	s.sinkErr = err
}
