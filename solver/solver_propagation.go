package solver

import (
	"github.com/ericr/tuesday/lit"
	"github.com/ericr/tuesday/tribool"
)

// propagate runs two-watched-literal unit propagation to quiescence,
// returning false on conflict. The unit of work is a literal: the queue is
// seeded from clauses that are one unassigned literal away from being
// falsified, and every forced assignment enqueues the forced literal.
// Duplicate enqueues are tolerated; a literal whose variable is already
// assigned is a no-op on the next pop. On conflict the queue is drained and
// the trail is left consistent for the caller to rewind.
func (s *Solver) propagate() bool {
	if !s.seedUnits() {
		s.propQ.Clear()
		return false
	}

	for s.propQ.Size() > 0 {
		p := s.propQ.Dequeue()
		s.propagations++

		if s.litValue(p).Undef() {
			s.force(p)
		}

		// Visit every clause watching the negation of p.
		np := p.Not()
		idx := np.Index()

		for i := 0; i < len(s.watches[idx]); i++ {
			ci := s.watches[idx][i]
			c := s.clauses[ci]

			if c.satisfied {
				continue
			}
			other, found := s.otherWatcher(c, ci, np)
			if !found {
				// No co-watcher: a unit clause. Falsified means conflict;
				// otherwise give the literal another pass.
				if c.allFalse() {
					s.propQ.Clear()
					return false
				}
				s.propQ.Insert(np)
				continue
			}
			if s.litValue(other).True() {
				continue
			}
			if s.relocateWatcher(c, ci, np, other) {
				continue
			}
			// No replacement watcher: the co-watcher is forced.
			if s.litValue(other).Undef() {
				s.force(other)
				s.propQ.Insert(other)
			} else {
				s.propQ.Clear()
				return false
			}
		}
	}
	return true
}

// seedUnits enqueues, for every unsatisfied clause with exactly one
// unassigned literal and no satisfying literal, the literal the clause needs
// set true. A live size-0 clause is an immediate conflict.
func (s *Solver) seedUnits() bool {
	for _, c := range s.clauses {
		if c.satisfied {
			continue
		}
		if c.Len() == 0 {
			return false
		}
		unit := lit.Undef
		unassigned := 0
		satisfied := false

		for _, p := range c.lits {
			switch {
			case s.litValue(p).True():
				satisfied = true
			case s.litValue(p).Undef():
				if unassigned == 0 {
					unit = p
				}
				unassigned++
			}
			if satisfied {
				break
			}
		}
		if !satisfied && unassigned == 1 {
			s.propQ.Insert(unit)
		}
	}
	return true
}

// force assigns p's variable so that p evaluates true, logs the assignment,
// and marks satisfied every unsatisfied clause currently watching p.
func (s *Solver) force(p lit.Lit) {
	s.assigns[p.Var()] = tribool.NewFromBool(!p.Sign())
	s.pushAssignment(p.Var())
	s.satisfyWatching(p)
}

// satisfyWatching raises the satisfied flag on every unsatisfied clause in
// p's watch list, logging each flip.
func (s *Solver) satisfyWatching(p lit.Lit) {
	for _, ci := range s.watches[p.Index()] {
		c := s.clauses[ci]
		if !c.satisfied {
			c.satisfied = true
			s.pushClauseSatisfy(ci)
		}
	}
}

// otherWatcher rediscovers the co-watcher of c alongside np: the first
// literal of c, distinct from np, whose watch list contains c's index.
func (s *Solver) otherWatcher(c *Clause, ci int, np lit.Lit) (lit.Lit, bool) {
	for _, m := range c.lits {
		if m == np {
			continue
		}
		for _, watched := range s.watches[m.Index()] {
			if watched == ci {
				return m, true
			}
		}
	}
	return lit.Undef, false
}

// relocateWatcher moves c's np watcher to the first literal that is neither
// np nor the co-watcher and is unassigned or already satisfying. Returns
// false when no such literal exists.
func (s *Solver) relocateWatcher(c *Clause, ci int, np, other lit.Lit) bool {
	for _, n := range c.lits {
		if n == np || n == other {
			continue
		}
		if v := s.litValue(n); v.Undef() || v.True() {
			s.watchRemove(np.Index(), ci)
			s.watchAdd(n.Index(), ci)
			return true
		}
	}
	return false
}
