package solver

import (
	"strings"

	"github.com/ericr/tuesday/lit"
)

// Clause is a CNF clause. The literal vector is fixed at construction and
// never reordered; the satisfied flag is mutated only through the trail.
type Clause struct {
	solver    *Solver
	lits      []lit.Lit
	satisfied bool
}

// newClause returns a new clause owned by s.
func newClause(s *Solver, lits []lit.Lit) *Clause {
	return &Clause{
		solver: s,
		lits:   lits,
	}
}

// hasTrueLiteral returns true if some literal is satisfied under the current
// assignments.
func (c *Clause) hasTrueLiteral() bool {
	for _, p := range c.lits {
		if c.solver.litValue(p).True() {
			return true
		}
	}
	return false
}

// allFalse returns true if every literal is falsified under the current
// assignments. An empty clause is vacuously all-false.
func (c *Clause) allFalse() bool {
	for _, p := range c.lits {
		if !c.solver.litValue(p).False() {
			return false
		}
	}
	return true
}

// asInts returns the clause's literals as signed DIMACS integers.
func (c *Clause) asInts() []int {
	ps := make([]int, 0, len(c.lits))

	for _, p := range c.lits {
		ps = append(ps, p.Int())
	}
	return ps
}

// asStrings returns a clause as an array of strings.
func (c *Clause) asStrings() []string {
	litStrs := []string{}

	for _, p := range c.lits {
		litStrs = append(litStrs, p.String())
	}
	return litStrs
}

// String implements the Stringer interface.
func (c *Clause) String() string {
	return strings.Join(c.asStrings(), ",")
}

// Len returns the length of the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}
