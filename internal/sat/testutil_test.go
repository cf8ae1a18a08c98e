package sat

import "github.com/cdclgo/solver/internal/proof"

// newTestSolver returns a freshly constructed Solver with n variables, no
// proof recorder and no conflict or time limit, for tests that exercise the
// core data structures directly rather than through AddClause/Solve.
func newTestSolver(n int) *Solver {
	s := NewSolver(Options{
		ClauseActivityDecay:   0.999,
		VariableActivityDecay: 0.95,
		MaxConflicts:          -1,
		Timeout:               -1,
	})
	for i := 0; i < n; i++ {
		s.AddVariable()
	}
	return s
}

// recordingProof is a proof.Recorder that keeps every step it is handed, for
// assertions on what the driver emits.
type recordingProof struct {
	steps []proof.Step
}

func (r *recordingProof) AddStep(_ bool, step proof.Step) error {
	r.steps = append(r.steps, step)
	return nil
}

func (r *recordingProof) WantsModels() bool { return true }
