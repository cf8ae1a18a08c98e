// Package proof defines the Proof Recorder contract: an
// external sink the solver core emits ordered steps to. The core never
// interprets a step, it only ever produces one of two kinds: a learned (or
// unit) clause, or — on a satisfying assignment — a model.
//
// Literals here use the plain signed-DIMACS convention (variable v, 1-based,
// negated for the negative literal) rather than the core's packed internal
// Literal encoding, so that this package stays independent of internal/sat
// and a caller-supplied Recorder never needs to import it.
package proof

// Step is one entry of the proof stream.
type Step struct {
	// AtClause fields. Redundant is true for learned clauses longer than a
	// binary clause; unit and binary clauses installed by the driver are
	// reported the same way, with Redundant left false, since a 2-literal
	// clause carries no redundancy bookkeeping of its own to report.
	Redundant bool
	Clause    []int32

	// PropagationHashes identifies, for a checker, the antecedent clauses
	// resolved together to derive Clause.
	PropagationHashes []uint64

	// Model is set instead of Clause for a Model step: the full list of
	// signed literals making up a satisfying assignment.
	Model []int32
}

// IsModel reports whether this step carries a model rather than a clause.
func (s Step) IsModel() bool {
	return s.Model != nil
}

// Recorder is the external proof sink. AddStep is called once per step, in
// the exact order the steps were produced; a non-nil error is fatal to the
// current solve.
type Recorder interface {
	// AddStep records step. checkable indicates the step can be verified by
	// resolution against PropagationHashes without replaying the whole
	// search (every AtClause step emitted by this module sets it true).
	AddStep(checkable bool, step Step) error

	// WantsModels reports whether the solver should emit a Model step when
	// it finds a satisfying assignment.
	WantsModels() bool
}

// NopRecorder discards every step. It is the default sink: most callers of
// the core only want the satisfiability verdict and the assignment, not a
// checkable proof.
type NopRecorder struct{}

func (NopRecorder) AddStep(bool, Step) error { return nil }
func (NopRecorder) WantsModels() bool        { return false }
