package lit

import "fmt"

const Undef = Lit(-1)

// Lit is a literal represented by an integer. The sign is kept in the least
// significant bit and the variable in the remaining bits, so a literal and its
// negation are adjacent and the integer value doubles as a dense index over
// (variable, polarity) pairs in 0..2N-1. That index keys the watch table.
//
// An unknown literal is denoted as -1.
type Lit int

// New returns a new literal for the 1-based variable v, negated when neg is
// true.
func New(v int, neg bool) Lit {
	l := Lit((v - 1) << 1)
	if neg {
		l |= 1
	}
	return l
}

// NewFromInt returns the literal denoted by a signed DIMACS integer: k means
// variable k, -k means variable k negated.
func NewFromInt(i int) Lit {
	if i < 0 {
		return New(-i, true)
	}
	return New(i, false)
}

// Not negates a literal.
func (l Lit) Not() Lit {
	return l ^ 1
}

// Sign returns true if the literal is negative.
func (l Lit) Sign() bool {
	return l&1 == 1
}

// Var returns the literal's 1-based variable.
func (l Lit) Var() int {
	return int(l>>1) + 1
}

// Index returns the dense (variable, polarity) index of the literal.
func (l Lit) Index() int {
	return int(l)
}

// Int returns the literal as a signed DIMACS integer.
func (l Lit) Int() int {
	if l.Sign() {
		return -l.Var()
	}
	return l.Var()
}

// String implements the Stringer interface.
func (l Lit) String() string {
	if l.Sign() {
		return fmt.Sprintf("~%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}
