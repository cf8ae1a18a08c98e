package sat

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/cdclgo/solver/internal/proof"
)

// State is the solver's overall status. Sat, Unsat and
// UnsatUnderAssumptions are terminal: once reached, ConflictStep is
// idempotent until the caller calls Reset or ClearAssumptions.
type State uint8

const (
	StateUnknown State = iota
	StateSat
	StateUnsat
	StateUnsatUnderAssumptions
)

func (st State) String() string {
	switch st {
	case StateSat:
		return "SAT"
	case StateUnsat:
		return "UNSAT"
	case StateUnsatUnderAssumptions:
		return "UNSAT (under assumptions)"
	default:
		return "UNKNOWN"
	}
}

// Options configures a Solver.
type Options struct {
	ClauseActivityDecay float64
	VariableActivityDecay float64
	PhaseSaving         bool
	ProofModels         bool
	LearntSizeLimit     int // not read by NewSolver; see Solver.LearntSizeLimit
	MaxConflicts        int64
	Timeout             time.Duration
	Proof               proof.Recorder
	Stats               io.Writer
}

var DefaultOptions = Options{
	ClauseActivityDecay:   0.999,
	VariableActivityDecay: 0.95,
	PhaseSaving:           false,
	ProofModels:           false,
	LearntSizeLimit:       0, // not read; the threshold is derived from NumConstraints()
	MaxConflicts:          -1,
	Timeout:               -1,
}

// Solver is the Driver's context: one aggregate value
// owning a set of disjoint sub-components. Each file in this package only
// touches the subset of fields its component owns, a single struct with
// scoped sub-borrows in place of separate cross-referencing objects.
type Solver struct {
	// Clause database: long clauses live in the arena, addressed by
	// ClauseID; binary clauses live in their own index with no metadata.
	arena     clauseArena
	binary    binaryIndex
	original  []ClauseID // long original clauses, for Simplify
	learnts   []ClauseID // long learnt clauses, for Simplify/ReduceDB
	clauseInc          float64
	clauseActivityDecay float64

	// Watchlists.
	watches watchlists

	// Decision heuristic.
	order *VarOrder

	// Assignment & Trail.
	assigns  []LBool
	trail    []Literal
	trailLim []int
	reason   []Reason
	level    []int
	propQueue *Queue[Literal]

	// Assumption Enqueuer + failed-assumption core.
	assumptions   []Literal
	assumptionPos int
	assumeLevels  int
	assumeMarks   []assumeMark
	failedCore    []Literal

	// Simplifier hook bookkeeping.
	provenUnits int

	// Proof Recorder.
	proof proof.Recorder

	// Solver state.
	state   State
	sinkErr error

	// Search statistics.
	TotalConflicts  int64
	TotalRestarts   int64
	TotalIterations int64
	startTime       time.Time
	stats           io.Writer

	hasStopCond bool
	maxConflict int64
	timeout     time.Duration

	// Readable result once State() == Sat.
	Model []bool

	// Scratch buffers, reused across calls to avoid per-conflict allocation
	//.
	seenVar     *ResetSet
	seenLevel   *ResetSet
	tmpWatchers []watcher
	tmpLearnts  []Literal
	tmpReason   []Literal
	tmpHashes   []uint64
}

// NewSolver returns a Solver configured with opts. A nil opts.Proof defaults
// to proof.NopRecorder{}.
func NewSolver(opts Options) *Solver {
	rec := opts.Proof
	if rec == nil {
		rec = proof.NopRecorder{}
	}
	s := &Solver{
		clauseInc:   1,
		order:       NewVarOrder(opts.VariableActivityDecay, opts.PhaseSaving),
		propQueue:   NewQueue[Literal](128),
		proof:       rec,
		stats:       opts.Stats,
		maxConflict: opts.MaxConflicts,
		timeout:     opts.Timeout,
		seenVar:     &ResetSet{},
		seenLevel:   &ResetSet{},
	}
	s.clauseActivityDecay = opts.ClauseActivityDecay
	if opts.MaxConflicts >= 0 || opts.Timeout >= 0 {
		s.hasStopCond = true
	}
	return s
}

// NewDefaultSolver returns a solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

func (s *Solver) NumVariables() int   { return len(s.assigns) / 2 }
func (s *Solver) NumAssigns() int     { return len(s.trail) }
func (s *Solver) NumConstraints() int { return len(s.original) }
func (s *Solver) NumLearnts() int     { return len(s.learnts) }
func (s *Solver) State() State        { return s.state }

// AddVariable introduces a new solver variable and returns its dense index.
func (s *Solver) AddVariable() int {
	v := s.NumVariables()
	s.watches.expand()
	s.binary.expand()
	s.reason = append(s.reason, Reason{})
	s.level = append(s.level, -1)
	s.assigns = append(s.assigns, Unknown, Unknown)
	s.seenVar.Expand()
	s.seenLevel.Expand()
	s.order.AddVar()
	return v
}

// AddClause loads an original clause. It must be
// called at decision level 0. Tautologies and duplicate literals are
// removed; an empty clause (after simplification, or as given) sets the
// solver to Unsat immediately.
func (s *Solver) AddClause(literals []Literal) error {
	if s.decisionLevel() != 0 {
		return fmt.Errorf("sat: AddClause called at decision level %d, must be 0", s.decisionLevel())
	}

	lits, ok := normalizeClause(s, literals)
	if !ok {
		return nil // tautology: clause is trivially satisfied, nothing to add
	}

	switch len(lits) {
	case 0:
		s.state = StateUnsat
	case 1:
		s.enqueue(lits[0], unitReason)
	case 2:
		s.binary.add(lits[0], lits[1])
	default:
		id := s.newLongClause(lits, false)
		s.original = append(s.original, id)
	}
	return nil
}

// normalizeClause removes duplicate literals, detects tautologies, and
// drops literals already false at the root level.
func normalizeClause(s *Solver, literals []Literal) ([]Literal, bool) {
	lits := append([]Literal(nil), literals...)
	seen := map[Literal]struct{}{}

	size := len(lits)
	for i := size - 1; i >= 0; i-- {
		if _, ok := seen[lits[i].Opposite()]; ok {
			return nil, false // tautology
		}
		if _, ok := seen[lits[i]]; ok {
			size--
			lits[i], lits[size] = lits[size], lits[i]
			continue
		}
		seen[lits[i]] = struct{}{}

		switch s.LitValue(lits[i]) {
		case True:
			return nil, false // already satisfied
		case False:
			size--
			lits[i], lits[size] = lits[size], lits[i]
		}
	}
	return lits[:size], true
}

// Reset clears every terminal state (including permanent Unsat), the
// assumption stack and the failed-assumption core, and backtracks to level 0.
// Loaded and learnt clauses and level-0 assignments are kept, so a reset
// Solver still holds the formula it was given.
func (s *Solver) Reset() {
	s.undoThrough(0)
	s.state = StateUnknown
	s.sinkErr = nil
	s.assumptions = s.assumptions[:0]
	s.assumptionPos = 0
	s.assumeLevels = 0
	s.assumeMarks = s.assumeMarks[:0]
	s.failedCore = nil
}

// Restart backtracks to decision level 0 and returns the solver to
// StateUnknown, so a caller that just got StateSat back from Solve can add a
// blocking clause (AddClause requires decision level 0) and search for
// another model without losing the learnt clause database built up so far.
func (s *Solver) Restart() {
	s.undoThrough(0)
	if s.state != StateUnsat {
		s.state = StateUnknown
	}
}

func (s *Solver) shouldStop() bool {
	if !s.hasStopCond {
		return false
	}
	if s.maxConflict >= 0 && s.maxConflict <= s.TotalConflicts {
		return true
	}
	if s.timeout >= 0 && s.timeout <= time.Since(s.startTime) {
		return true
	}
	return false
}

// bumpClauseActivity raises a learnt (redundant) long clause's activity,
// rescaling every learnt clause's activity if it would otherwise overflow.
// Original clauses are left unchanged.
func (s *Solver) bumpClauseActivity(c *Clause) {
	if !c.isRedundant() {
		return
	}
	c.activity += s.clauseInc
	if c.activity > 1e100 {
		s.clauseInc *= 1e-100
		for _, id := range s.learnts {
			s.arena.get(id).activity *= 1e-100
		}
	}
}

func (s *Solver) decayClauseActivity() {
	s.clauseInc /= s.clauseActivityDecay
}

// ConflictStep is the Driver: advance the search by one unit
// of work. Preconditions: State() == Unknown, or this call is a no-op.
func (s *Solver) ConflictStep() {
	if s.state != StateUnknown || s.sinkErr != nil {
		return
	}

	s.TotalIterations++

	conflict, found, assumeConflict := s.findConflict()
	if s.sinkErr != nil {
		return
	}

	if assumeConflict {
		s.state = StateUnsatUnderAssumptions
		return
	}

	if !found {
		if s.proof.WantsModels() {
			if err := s.proof.AddStep(true, modelStep(s.assigns)); err != nil {
				s.poison(err)
				return
			}
		}
		s.saveModel()
		s.state = StateSat
		return
	}

	s.TotalConflicts++

	// A conflict with no decision (or assumption) on the trail at all can't
	// go through the ordinary analyze path below: first-UIP resolution would
	// keep resolving level-0 antecedents and hand back a "unit" learned
	// clause whose literal is already assigned the opposite value — trying
	// to install that is a no-op that would silently leave the solver stuck
	// in StateUnknown instead of terminating. The formula itself (independent
	// of any learned clause) is unsatisfiable here, which is exactly what
	// the empty clause means, so emit that directly.
	if s.decisionLevel() == 0 && s.assumeLevels == 0 {
		if err := s.proof.AddStep(true, learntStep(nil, nil)); err != nil {
			s.poison(err)
			return
		}
		s.state = StateUnsat
		return
	}

	result := s.analyze(conflict)

	s.decayClauseActivity()
	s.order.Decay()

	s.undoThrough(result.backtrackLevel)

	if err := s.proof.AddStep(true, learntStep(result.learnt, result.hashes)); err != nil {
		s.poison(err)
		return
	}

	s.installLearnt(result)
}

// installLearnt dispatches the learned clause to the unit / binary / long
// installation policy and enqueues its asserting literal.
func (s *Solver) installLearnt(result analysisResult) {
	learnt := result.learnt

	switch len(learnt) {
	case 0:
		s.state = StateUnsat
	case 1:
		s.enqueue(learnt[0], unitReason)
	case 2:
		s.binary.add(learnt[0], learnt[1])
		s.enqueue(learnt[0], binaryReason(learnt[1]))
	default:
		id := s.newLongClause(learnt, true)
		c := s.arena.get(id)
		c.lbd = uint32(result.lbd)
		s.bumpClauseActivity(c)
		s.learnts = append(s.learnts, id)
		s.enqueue(learnt[0], Reason{kind: reasonLong, clause: id})
	}
}

// findConflict is the find-conflict inner loop. found==false
// && assumeConflict==false means every variable is assigned with no
// conflict: a satisfying model. The one exception is a failed proof write,
// which returns early with sinkErr set.
func (s *Solver) findConflict() (conflict Conflict, found bool, assumeConflict bool) {
	for {
		c, hasConflict := s.Propagate()

		newUnit := s.proveUnits()
		if s.sinkErr != nil {
			return Conflict{}, false, false
		}

		if hasConflict {
			return c, true, false
		}

		if newUnit {
			s.simplify()
		}

		switch s.enqueueAssumption() {
		case assumptionEnqueued:
			continue
		case assumptionConflict:
			return Conflict{}, false, true
		}

		if lit, ok := s.order.Select(); ok {
			s.newDecisionLevel()
			s.enqueue(lit, decisionReason)
			continue
		}

		return Conflict{}, false, false
	}
}

func (s *Solver) saveModel() {
	model := make([]bool, s.NumVariables())
	for v := range model {
		model[v] = s.VarValue(v) == True
	}
	s.Model = model
}

// Solve runs ConflictStep to completion, restarting and reducing the clause
// database on a growing schedule. It returns StateUnknown if a stop condition
// is hit or the proof sink fails first. This is ambient convenience on top of
// the core driver, which otherwise only exposes a single atomic step.
func (s *Solver) Solve() State {
	if s.startTime.IsZero() {
		s.startTime = time.Now()
	}

	numConflicts := int64(100)
	numLearnts := s.LearntSizeLimit()

	for s.state == StateUnknown && s.sinkErr == nil {
		s.TotalRestarts++
		before := s.TotalConflicts

		for s.state == StateUnknown && s.sinkErr == nil && s.TotalConflicts-before <= numConflicts {
			if s.shouldStop() {
				return s.state
			}
			s.ConflictStep()

			if s.decisionLevel() == 0 && int64(s.NumLearnts()-s.NumAssigns()) >= numLearnts {
				s.ReduceDB()
			}
		}

		// Restart. The only queued literal at this point is the last learnt
		// clause's asserting literal, which the backtrack undoes.
		if s.state == StateUnknown && s.decisionLevel() > 0 {
			s.undoThrough(0)
			s.propQueue.Clear()
		}

		numConflicts += numConflicts / 10
		numLearnts += numLearnts / 20

		if s.shouldStop() {
			break
		}
	}

	s.printSearchStats()
	return s.state
}

// LearntSizeLimit returns the initial ReduceDB threshold: a third of
// NumConstraints(), or 100 when that is zero. Options.LearntSizeLimit is not
// consulted.
func (s *Solver) LearntSizeLimit() int64 {
	if n := s.NumConstraints() / 3; n > 0 {
		return int64(n)
	}
	return 100
}

// ReduceDB is the clause-DB reduction policy: sort learnt clauses by activity, keep whichever of the
// lowest-activity half is locked, drop the rest below a computed threshold.
func (s *Solver) ReduceDB() {
	if len(s.learnts) == 0 {
		return
	}
	lim := s.clauseInc / float64(len(s.learnts))

	sort.Slice(s.learnts, func(i, j int) bool {
		return s.arena.get(s.learnts[i]).activity < s.arena.get(s.learnts[j]).activity
	})

	i, j := 0, 0
	for ; i < len(s.learnts)/2; i++ {
		id := s.learnts[i]
		if s.locked(id) {
			s.learnts[j] = id
			j++
		} else {
			s.deleteClause(id)
		}
	}
	for ; i < len(s.learnts); i++ {
		id := s.learnts[i]
		c := s.arena.get(id)
		if !s.locked(id) && c.activity < lim && !c.isProtected() {
			s.deleteClause(id)
		} else {
			s.learnts[j] = id
			j++
		}
	}
	s.learnts = s.learnts[:j]
}

func (s *Solver) printSearchStats() {
	if s.stats == nil {
		return
	}
	fmt.Fprintf(
		s.stats,
		"c %14.3fs %14d %14d %14d %14d\n",
		time.Since(s.startTime).Seconds(),
		s.TotalIterations,
		s.TotalConflicts,
		s.TotalRestarts,
		len(s.learnts))
}
