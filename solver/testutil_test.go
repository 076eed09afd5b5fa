package solver

import (
	"testing"

	"github.com/ericr/tuesday/config"
	"github.com/ericr/tuesday/tribool"
	"github.com/stretchr/testify/require"
)

// newTestSolver returns a solver over numVars variables with the given
// clauses added, before any preprocessing.
func newTestSolver(numVars int, clauses [][]int) *Solver {
	s := New(config.New())
	s.Grow(numVars)

	for _, clause := range clauses {
		s.AddClause(clause)
	}
	return s
}

// prepared returns a solver ready for search: watch table populated and
// branching order built. Subsumption is deliberately skipped so tests see the
// clauses exactly as given.
func prepared(numVars int, clauses [][]int) *Solver {
	s := newTestSolver(numVars, clauses)
	s.initWatches()
	s.order.Init(s.occurrenceCounts())

	return s
}

// snapshot captures every piece of state the trail is responsible for.
type snapshot struct {
	assigns   []tribool.Tribool
	satisfied []bool
	watches   [][]int
}

func takeSnapshot(s *Solver) snapshot {
	snap := snapshot{
		assigns:   append([]tribool.Tribool(nil), s.assigns...),
		satisfied: make([]bool, len(s.clauses)),
		watches:   make([][]int, len(s.watches)),
	}
	for i, c := range s.clauses {
		snap.satisfied[i] = c.satisfied
	}
	for i, list := range s.watches {
		cp := make([]int, len(list))
		copy(cp, list)
		snap.watches[i] = cp
	}
	return snap
}

// requireSnapshot asserts the solver's trail-governed state is bit-identical
// to a previously taken snapshot.
func requireSnapshot(t *testing.T, s *Solver, snap snapshot) {
	t.Helper()

	require.Equal(t, snap.assigns, s.assigns)
	for i, c := range s.clauses {
		require.Equal(t, snap.satisfied[i], c.satisfied, "clause %d satisfied flag", i)
	}
	require.Equal(t, snap.watches, s.watches)
}

// requireWatchInvariant asserts that every unsatisfied clause of size >= 2 is
// registered in exactly two watch lists keyed by two distinct literals drawn
// from its own vector, and every unsatisfied unit clause in exactly one.
func requireWatchInvariant(t *testing.T, s *Solver) {
	t.Helper()

	for ci, c := range s.clauses {
		if c.satisfied || c.Len() == 0 {
			continue
		}
		keys := []int{}
		for idx, list := range s.watches {
			for _, w := range list {
				if w == ci {
					keys = append(keys, idx)
				}
			}
		}
		own := func(idx int) bool {
			for _, p := range c.lits {
				if p.Index() == idx {
					return true
				}
			}
			return false
		}
		if c.Len() == 1 {
			require.Len(t, keys, 1, "unit clause %d", ci)
			require.True(t, own(keys[0]), "unit clause %d watches foreign literal", ci)
			continue
		}
		require.Len(t, keys, 2, "clause %d", ci)
		require.NotEqual(t, keys[0], keys[1], "clause %d watches one literal twice", ci)
		require.True(t, own(keys[0]) && own(keys[1]), "clause %d watches foreign literal", ci)
	}
}

// requireModelSatisfies asserts every clause contains a literal true under
// the answer.
func requireModelSatisfies(t *testing.T, clauses [][]int, answer []int) {
	t.Helper()

	trueLits := map[int]bool{}
	for _, p := range answer {
		trueLits[p] = true
	}
	for i, clause := range clauses {
		satisfied := false
		for _, p := range clause {
			if trueLits[p] {
				satisfied = true
				break
			}
		}
		require.True(t, satisfied, "clause %d not satisfied by model %v", i, answer)
	}
}
