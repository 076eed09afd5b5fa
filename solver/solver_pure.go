package solver

import "github.com/ericr/tuesday/tribool"

// pureLiteralPass assigns every unassigned variable that occurs with a single
// polarity among unsatisfied clauses, then marks satisfied every unsatisfied
// clause containing a pure variable. Pure assignments cannot falsify a
// clause, so the pass reports ok unconditionally; it still runs between
// propagation and branching because shrinking the live clause set prunes the
// search.
func (s *Solver) pureLiteralPass() bool {
	seenPos := make([]bool, s.numVars+1)
	seenNeg := make([]bool, s.numVars+1)

	for _, c := range s.clauses {
		if c.satisfied {
			continue
		}
		for _, p := range c.lits {
			if !s.assigns[p.Var()].Undef() {
				continue
			}
			if p.Sign() {
				seenNeg[p.Var()] = true
			} else {
				seenPos[p.Var()] = true
			}
		}
	}

	pure := make([]bool, s.numVars+1)
	for v := 1; v <= s.numVars; v++ {
		if !s.assigns[v].Undef() {
			continue
		}
		if seenPos[v] != seenNeg[v] {
			pure[v] = true
			s.assigns[v] = tribool.NewFromBool(seenPos[v])
			s.pushAssignment(v)
			s.pureAssigns++
		}
	}

	// The pure polarity matches every occurrence, so polarity needs no
	// re-check here.
	for ci, c := range s.clauses {
		if c.satisfied {
			continue
		}
		for _, p := range c.lits {
			if pure[p.Var()] {
				c.satisfied = true
				s.pushClauseSatisfy(ci)
				break
			}
		}
	}
	return true
}
