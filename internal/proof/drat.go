package proof

import (
	"fmt"
	"io"
)

// StreamRecorder is a textual, DRAT-inspired encoder: each AtClause step is
// written as its signed literals followed by "0", and each Model step (when
// WantsModels is true) is written as a "v "-prefixed line in the same
// convention SAT competition solvers use for their own stdout output. A
// byte-exact DRAT/LRAT encoder is out of scope; this is a typical encoder
// sized for this module's own consumers rather than for interoperating with
// a specific external checker binary.
type StreamRecorder struct {
	w      io.Writer
	models bool
}

// NewStreamRecorder returns a Recorder writing to w. If models is true, Model
// steps are written out as well as AtClause steps.
func NewStreamRecorder(w io.Writer, models bool) *StreamRecorder {
	return &StreamRecorder{w: w, models: models}
}

func (r *StreamRecorder) WantsModels() bool { return r.models }

func (r *StreamRecorder) AddStep(_ bool, step Step) error {
	if step.IsModel() {
		if !r.models {
			return nil
		}
		return r.writeLine('v', step.Model)
	}
	return r.writeLine(0, step.Clause)
}

func (r *StreamRecorder) writeLine(prefix byte, literals []int32) error {
	if prefix != 0 {
		if _, err := fmt.Fprintf(r.w, "%c", prefix); err != nil {
			return err
		}
	}
	for _, l := range literals {
		if _, err := fmt.Fprintf(r.w, " %d", l); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.w, " 0")
	return err
}
