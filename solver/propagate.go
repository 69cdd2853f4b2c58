package solver

// propagate advances the propagation cursor to the end of the trail,
// performing unit propagation via the two-watched-literal scheme (spec.md
// §4.4). It returns the conflict clause if one is found; otherwise it
// returns nil and leaves I3 holding.
//
// This walks the trail directly via s.cursor rather than draining a
// separate propagation queue — see DESIGN.md's Propagator entry for why
// that departs from the teacher's buffered-queue version.
func (s *Solver) propagate() *Clause {
	for s.cursor < len(s.trail) {
		p := s.trail[s.cursor]
		s.cursor++

		ws := s.watches[p]
		i := 0
		for i < len(ws) {
			c := ws[i]

			// Normalize so the false (negated-p) watch sits at position 1.
			if c.lits[0] == p.Negation() {
				c.lits[0], c.lits[1] = c.lits[1], c.lits[0]
			}

			if s.litValue(c.lits[0]).IsTrue() {
				// Already satisfied; keep the current watch.
				i++
				continue
			}

			relocated := false
			for k := 2; k < c.Len(); k++ {
				if !s.litValue(c.lits[k]).IsFalse() {
					c.lits[1], c.lits[k] = c.lits[k], c.lits[1]

					// Swap-with-last, truncate; don't advance i — the slot
					// just received the former last element.
					n := len(ws) - 1
					ws[i] = ws[n]
					ws = ws[:n]

					c.addWatcher(s, c.lits[1].Negation())
					relocated = true
					break
				}
			}
			if relocated {
				continue
			}

			// c.lits[1] is False and c.lits[2:] are all False.
			if s.litValue(c.lits[0]).IsFalse() {
				// Conflict: every literal of c evaluates False.
				s.watches[p] = ws
				s.cursor = len(s.trail)
				return c
			}
			// c.lits[0] is Undefined: c is unit under the assignment.
			s.enqueue(c.lits[0], c)
			s.propagations++
			i++
		}
		s.watches[p] = ws
	}
	return nil
}
