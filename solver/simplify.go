package solver

// simplifyDB is called once at the start of Solve and simplifies the
// learnt-clause database at decision level 0: any learnt clause already
// satisfied at level 0 is detached and dropped, and the rest have their
// False literals trimmed. Returns false if propagation surfaces a
// top-level conflict (spec.md §4.6 implies Solve detects UNSAT at level 0
// via propagate/analyze; this is the level-0 fast path before the first
// decision is even made).
//
// Clause-database reduction (the teacher's reduceDB, driven by clause
// activity) is out of scope (spec.md §1) and is not carried forward — the
// only learnt clauses ever removed are those satisfied at level 0, which
// stay satisfied for the rest of the search.
func (s *Solver) simplifyDB() bool {
	if s.propagate() != nil {
		return false
	}
	j := 0
	for i := 0; i < len(s.learnts); i++ {
		if s.learnts[i].simplify(s) {
			s.learnts[i].detach(s)
		} else {
			s.learnts[j] = s.learnts[i]
			j++
		}
	}
	s.learnts = s.learnts[:j]
	return true
}
