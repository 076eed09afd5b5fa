package solver

// occurrenceCounts returns, per 1-based variable, the number of literal
// appearances across the post-subsumption formula, counting both polarities.
func (s *Solver) occurrenceCounts() []int {
	counts := make([]int, s.numVars+1)

	for _, c := range s.clauses {
		for _, p := range c.lits {
			counts[p.Var()]++
		}
	}
	return counts
}
