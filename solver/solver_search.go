package solver

import "github.com/ericr/tuesday/tribool"

// dpll is the recursive search driver. Each invocation polls the deadline,
// checkpoints the trail, runs propagation and the pure-literal pass, sweeps
// clause satisfaction, and branches on the next unassigned variable trying
// false before true. The polarity order is fixed for reproducibility.
func (s *Solver) dpll(depth int) Result {
	if s.deadlineExceeded() {
		return Timeout
	}

	cp := s.checkpoint()

	if !s.propagate() {
		s.rewindTo(cp)
		return Unsat
	}
	if !s.pureLiteralPass() {
		s.rewindTo(cp)
		return Unsat
	}

	// Sweep for clauses satisfied under the current assignments whose flag
	// was never raised (the propagator only flips flags on watched literals).
	// A live clause with every literal falsified refutes this branch; the
	// caller owns the rewind in that case.
	allSatisfied := true
	dead := false

	for ci, c := range s.clauses {
		if c.satisfied {
			continue
		}
		if c.hasTrueLiteral() {
			c.satisfied = true
			s.pushClauseSatisfy(ci)
			continue
		}
		allSatisfied = false
		if c.allFalse() {
			dead = true
		}
	}
	if dead {
		return Unsat
	}
	if allSatisfied {
		return Sat
	}

	v := s.order.Choose()
	if v == 0 {
		return Unsat
	}
	s.decisions++

	// The inner checkpoint lets the second branch reuse the propagation and
	// pure-literal work above, which is valid for either polarity of v.
	cp2 := s.checkpoint()

	s.assume(v, tribool.False)
	if r := s.dpll(depth + 1); r != Unsat {
		return r
	}
	s.rewindTo(cp2)

	s.assume(v, tribool.True)
	r := s.dpll(depth + 1)
	if r == Unsat {
		s.rewindTo(cp)
	}
	return r
}

// assume assigns v the given value, logs it, and raises the satisfied flag on
// every clause the assignment newly satisfies.
func (s *Solver) assume(v int, val tribool.Tribool) {
	s.assigns[v] = val
	s.pushAssignment(v)
	s.satisfyNewlyTrue()
}

// satisfyNewlyTrue sweeps all clauses and marks satisfied those with a true
// literal under the current assignments.
func (s *Solver) satisfyNewlyTrue() {
	for ci, c := range s.clauses {
		if c.satisfied {
			continue
		}
		if c.hasTrueLiteral() {
			c.satisfied = true
			s.pushClauseSatisfy(ci)
		}
	}
}
