package solver

import "github.com/objectx/bullsat/lit"

// analyze derives the 1-UIP learnt clause and backjump level from a
// conflicting clause (spec.md §4.5). Preconditions: the trail is
// non-empty, the current decision level D >= 1, and every literal of
// conflict evaluates False.
//
// Cross-checked against original_source/bullsat.hpp's analyze(): both
// traverse the trail backwards by index without popping it — the trail
// itself is left untouched here; backjumpTo does the actual undoing
// afterward. The teacher's analyze (solver_analysis.go) instead calls
// undoOne() while walking, folding part of the backtrack into analysis
// itself; this implementation follows the spec's cleaner separation of
// concerns instead.
func (s *Solver) analyze(conflict *Clause) ([]lit.Lit, int) {
	d := s.decisionLevel()
	if d == 0 {
		s.assertf("analyze called at decision level 0")
	}

	seen := make([]bool, len(s.assigns))
	counter := 0
	learnt := []lit.Lit{lit.Undef} // position 0 reserved for the asserting literal

	resolve := func(c *Clause, from int) {
		for j := from; j < c.Len(); j++ {
			q := c.At(j)
			v := q.Var()
			if seen[v] {
				continue
			}
			seen[v] = true
			if s.level[v] < d {
				learnt = append(learnt, q)
			} else {
				counter++
			}
		}
	}
	resolve(conflict, 0)
	if counter < 1 {
		s.assertf("analyze: conflict clause has no level-%d literal", d)
	}

	var uip lit.Lit
	for i := len(s.trail) - 1; ; i-- {
		p := s.trail[i]
		if !seen[p.Var()] {
			continue
		}
		counter--
		if counter == 0 {
			uip = p
			break
		}
		r := s.reason[p.Var()]
		if r == nil {
			s.assertf("analyze: non-UIP level-%d literal %s has no reason clause", d, p)
		}
		if r.At(0) != p {
			s.assertf("analyze: reason clause's first literal does not match %s", p)
		}
		resolve(r, 1)
	}

	learnt[0] = uip.Negation()

	backjumpLevel := 0
	for _, q := range learnt[1:] {
		if lvl := s.level[q.Var()]; lvl > backjumpLevel {
			backjumpLevel = lvl
		}
	}
	return learnt, backjumpLevel
}
