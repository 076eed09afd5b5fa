package solver

import (
	"fmt"
	"time"

	"github.com/ericr/tuesday/config"
	"github.com/ericr/tuesday/lit"
	"github.com/ericr/tuesday/order"
	"github.com/ericr/tuesday/tribool"
	"github.com/sirupsen/logrus"
)

const (
	VersionMajor = 1
	VersionMinor = 0
)

// Solver decides satisfiability of a CNF formula with a DPLL search over
// two-watched-literal unit propagation, pure-literal elimination and a static
// occurrence-count branching order. All search-time mutation of the formula,
// the assignment vector and the watch table goes through the trail, which is
// the sole undo mechanism.
type Solver struct {
	// config is the solver's configuration.
	config *config.Config
	// logger is the solver's logger.
	logger *logrus.Logger

	// Formula Fields

	// numVars is the number of variables, 1..numVars.
	numVars int
	// clauses is the formula's clause store.
	clauses []*Clause

	// Propagation Fields

	// watches holds, per dense literal index, the clause indices currently
	// watching that literal.
	watches [][]int
	// propQ is the propagation queue.
	propQ *lit.Queue

	// Assignment Fields

	// assigns contains the current assignments indexed by 1-based variable;
	// index 0 is unused.
	assigns []tribool.Tribool
	// trail is the undo log of reversible effects in chronological order.
	trail []undoEntry
	// order is the static branching order.
	order *order.Order
	// model stores the assignments of the most recent SAT verdict.
	model []tribool.Tribool

	// Deadline Fields

	// start is the monotonic start timestamp.
	start time.Time
	// budget is the wall-clock budget for the search.
	budget time.Duration

	// Stats Fields

	// propagations counts literals taken off the propagation queue.
	propagations int
	// decisions counts branching variables chosen.
	decisions int
	// pureAssigns counts assignments made by the pure-literal pass.
	pureAssigns int
}

// New returns a new initialized solver.
func New(c *config.Config) *Solver {
	s := &Solver{
		config:  c,
		logger:  c.Logger,
		clauses: []*Clause{},
		watches: [][]int{},
		propQ:   lit.NewQueue(),
		assigns: []tribool.Tribool{tribool.Undef},
		start:   time.Now(),
		budget:  c.Budget(),
	}
	s.order = order.New(&s.assigns)

	return s
}

// Version returns the version of the solver.
func Version() string {
	return fmt.Sprintf("%d.%d", VersionMajor, VersionMinor)
}

// Grow ensures the solver tracks at least n variables. Variables referenced
// by AddClause grow the solver implicitly; Grow covers headers that declare
// variables no clause mentions.
func (s *Solver) Grow(n int) {
	for s.numVars < n {
		s.numVars++
		s.assigns = append(s.assigns, tribool.Undef)
	}
}

// AddClause adds a new clause to the solver. Literal order is preserved
// exactly as given.
func (s *Solver) AddClause(ps []int) {
	lits := make([]lit.Lit, 0, len(ps))

	for _, p := range ps {
		l := lit.NewFromInt(p)
		s.Grow(l.Var())
		lits = append(lits, l)
	}
	s.clauses = append(s.clauses, newClause(s, lits))
}

// Solve decides the formula, returning Sat, Unsat or Timeout. The subsumption
// pre-processor, the watch table and the branching order are (re)built before
// the search starts; all search effects are rewound before returning, so the
// verdict and the model are the only observables.
func (s *Solver) Solve() Result {
	s.logger.Debugf("Solving: %d vars, %d clauses", s.numVars, len(s.clauses))

	s.model = nil
	s.removeSupersets()
	s.initWatches()
	s.order.Init(s.occurrenceCounts())

	res := s.dpll(0)
	if res == Sat {
		s.model = append([]tribool.Tribool(nil), s.assigns...)
	}
	s.rewindTo(0)

	s.logger.Debugf("Verdict %s: %d propagations, %d decisions, %d pure assignments",
		res, s.propagations, s.decisions, s.pureAssigns)

	return res
}

// Answer returns the most recent model as signed DIMACS integers sorted by
// variable id. Variables the search left unassigned are reported false. The
// result is nil unless the last Solve returned Sat.
func (s *Solver) Answer() []int {
	if s.model == nil {
		return nil
	}
	ps := make([]int, 0, s.numVars)

	for v := 1; v < len(s.model); v++ {
		if s.model[v].True() {
			ps = append(ps, v)
		} else {
			ps = append(ps, -v)
		}
	}
	return ps
}

// initWatches populates the watch table: the first literal of every clause,
// and the second too for clauses of size two or more. Size-0 clauses are
// registered nowhere. The initial population precedes the search and is not
// logged on the trail.
func (s *Solver) initWatches() {
	s.watches = make([][]int, 2*s.numVars)
	for i := range s.watches {
		s.watches[i] = []int{}
	}
	for ci, c := range s.clauses {
		if c.Len() == 0 {
			continue
		}
		s.watches[c.lits[0].Index()] = append(s.watches[c.lits[0].Index()], ci)
		if c.Len() >= 2 {
			s.watches[c.lits[1].Index()] = append(s.watches[c.lits[1].Index()], ci)
		}
	}
}

// litValue returns p's value under the current assignments.
func (s *Solver) litValue(p lit.Lit) tribool.Tribool {
	if p == lit.Undef {
		return tribool.Undef
	}
	if p.Sign() {
		return s.assigns[p.Var()].Not()
	}
	return s.assigns[p.Var()]
}

// deadlineExceeded returns true once the elapsed time exceeds the budget.
func (s *Solver) deadlineExceeded() bool {
	return time.Since(s.start) >= s.budget
}

// NVars returns the number of variables.
func (s *Solver) NVars() int {
	return s.numVars
}

// NClauses returns the number of clauses, post-subsumption once Solve has run.
func (s *Solver) NClauses() int {
	return len(s.clauses)
}

// NPropagations returns the number of propagations that have occurred.
func (s *Solver) NPropagations() int {
	return s.propagations
}

// NDecisions returns the number of branching decisions made.
func (s *Solver) NDecisions() int {
	return s.decisions
}

// NPureAssignments returns the number of pure-literal assignments made.
func (s *Solver) NPureAssignments() int {
	return s.pureAssigns
}
