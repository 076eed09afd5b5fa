package order

import (
	"sort"

	"github.com/ericr/tuesday/tribool"
)

// Order assists with static variable ordering: variables sorted by descending
// occurrence count, ties broken by ascending id. The permutation is computed
// once and never changes during search.
type Order struct {
	vars    []int
	assigns *[]tribool.Tribool
}

// New returns a new Order over the given assignment vector.
func New(assigns *[]tribool.Tribool) *Order {
	return &Order{
		vars:    []int{},
		assigns: assigns,
	}
}

// Init builds the permutation from occurrence counts. counts is indexed by
// 1-based variable id; index 0 is unused.
func (o *Order) Init(counts []int) {
	o.vars = make([]int, 0, len(counts)-1)
	for v := 1; v < len(counts); v++ {
		o.vars = append(o.vars, v)
	}
	sort.SliceStable(o.vars, func(i, j int) bool {
		vi, vj := o.vars[i], o.vars[j]
		if counts[vi] != counts[vj] {
			return counts[vi] > counts[vj]
		}
		return vi < vj
	})
}

// Choose returns the first unassigned variable in the permutation, or 0 when
// every variable is assigned.
func (o *Order) Choose() int {
	a := *o.assigns

	for _, v := range o.vars {
		if a[v].Undef() {
			return v
		}
	}
	return 0
}

// Len returns the number of ordered variables.
func (o *Order) Len() int {
	return len(o.vars)
}
