package solver

import "github.com/samber/lo"

// removeSupersets runs the subsumption pre-processor: clause i is removable
// when some other clause j, not itself already marked, is no larger and j's
// signed-literal set is a subset of i's. Marked clauses are compacted in place, preserving the order
// of the survivors. Pairwise subsumption is quadratic but runs once, before
// the watch table and the branching order are built.
func (s *Solver) removeSupersets() {
	keys := lo.Map(s.clauses, func(c *Clause, _ int) []int {
		return c.asInts()
	})
	removable := make([]bool, len(s.clauses))

	for i := range s.clauses {
		if removable[i] {
			continue
		}
		for j := range s.clauses {
			if i == j || removable[j] {
				continue
			}
			if len(keys[i]) >= len(keys[j]) && lo.Every(keys[i], keys[j]) {
				removable[i] = true
				break
			}
		}
	}

	n := 0
	for i, c := range s.clauses {
		if !removable[i] {
			s.clauses[n] = c
			n++
		}
	}
	removed := len(s.clauses) - n
	s.clauses = s.clauses[:n]

	if removed > 0 {
		s.logger.Debugf("Subsumption removed %d clauses", removed)
	}
}
