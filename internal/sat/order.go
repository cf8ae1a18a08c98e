package sat

import "github.com/rhartert/yagh"

// VarOrder is the Decision Heuristic: a VSIDS-style priority
// queue over unassigned variables, with saved-phase polarity. It uses a yagh
// binary heap keyed on negated activity, so the minimum-first heap pops the
// highest-activity variable.
type VarOrder struct {
	heap *yagh.IntMap[float64]

	activities []float64
	actInc     float64
	actDecay   float64

	phases      []LBool
	phaseSaving bool
}

// NewVarOrder returns an empty VarOrder. Variables must be registered with
// AddVar before they can be selected.
func NewVarOrder(decay float64, phaseSaving bool) *VarOrder {
	return &VarOrder{
		heap:        yagh.New[float64](0),
		actInc:      1,
		actDecay:    decay,
		phaseSaving: phaseSaving,
	}
}

// AddVar registers a new variable with zero initial activity and a default
// negative phase, used until a real phase has been saved for it.
func (vo *VarOrder) AddVar() {
	v := len(vo.activities)
	vo.activities = append(vo.activities, 0)
	vo.phases = append(vo.phases, False)
	vo.heap.GrowBy(1)
	vo.heap.Put(v, 0)
}

// Remove takes variable v out of the candidate set — called when v is
// assigned (by decision, propagation, or assumption). It is a no-op if v has
// already been removed, since Select already pops a decision's variable
// before Solver.enqueue runs for it.
func (vo *VarOrder) Remove(v int) {
	if vo.heap.Contains(v) {
		vo.heap.Remove(v)
	}
}

// Reinsert puts v back into the candidate set after it is unassigned by a
// backtrack, saving its last value as the next decision's phase if phase
// saving is enabled.
func (vo *VarOrder) Reinsert(v int, lastValue LBool) {
	if vo.phaseSaving {
		vo.phases[v] = lastValue
	}
	vo.heap.Put(v, -vo.activities[v])
}

// Bump increases v's activity, rescaling every activity (and the shared
// increment) if it would otherwise overflow — the standard VSIDS trick for
// keeping relative importance stable across millions of conflicts.
func (vo *VarOrder) Bump(v int) {
	vo.activities[v] += vo.actInc
	if vo.heap.Contains(v) {
		vo.heap.Put(v, -vo.activities[v])
	}
	if vo.activities[v] > 1e100 {
		vo.rescale()
	}
}

// Decay shrinks the relative weight of old bumps by growing the increment
// instead of shrinking every activity, the same amortized trick bump_clause
// activity decay uses for clauses.
func (vo *VarOrder) Decay() {
	vo.actInc /= vo.actDecay
	if vo.actInc > 1e100 {
		vo.rescale()
	}
}

func (vo *VarOrder) rescale() {
	vo.actInc *= 1e-100
	for v, a := range vo.activities {
		vo.activities[v] = a * 1e-100
		if vo.heap.Contains(v) {
			vo.heap.Put(v, -vo.activities[v])
		}
	}
}

// Select pops the highest-activity unassigned variable and reports its
// saved-phase literal. It reports false iff no candidate
// remains, meaning every variable is already assigned.
func (vo *VarOrder) Select() (Literal, bool) {
	for {
		next, ok := vo.heap.Pop()
		if !ok {
			return 0, false
		}
		v := next.Elem
		if vo.phases[v] == True {
			return PositiveLiteral(v), true
		}
		return NegativeLiteral(v), true
	}
}
