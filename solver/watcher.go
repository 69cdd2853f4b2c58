package solver

import "github.com/objectx/bullsat/lit"

// growTo ensures the per-variable assignment tables cover variable v,
// growing the variable universe as needed (spec.md §4.3: "add_input_clause
// grows the variable space to cover every literal in C").
func (s *Solver) growTo(v lit.Var) {
	for lit.Var(len(s.assigns)) <= v {
		s.assigns = append(s.assigns, false)
		s.level = append(s.level, -1)
		s.reason = append(s.reason, nil)
	}
}

// attach builds and registers a clause of size >= 2 in the watcher index
// and the appropriate clause sequence (spec.md §4.3). Clause *C* ends up in
// exactly the watcher lists of ¬C[0] and ¬C[1] (I2).
func (s *Solver) attach(lits []lit.Lit, learnt bool) *Clause {
	c := newClause(s, lits, learnt)
	if learnt {
		s.learnts = append(s.learnts, c)
	} else {
		s.constrs = append(s.constrs, c)
	}
	return c
}

// addInputClause grows the variable space to cover every literal in lits,
// then either settles a top-level unit fact (len == 1) or attaches the
// clause (len >= 2).
//
// A unit fact is settled against the current level-0 assignment rather
// than enqueued unconditionally: two unit clauses over the same variable
// (spec.md §8 scenario 3, `{x0}, {¬x0}`) are valid external input and
// must surface as Unsat from Solve, not as an enqueue precondition
// violation. So litValue(lits[0]) decides the outcome — Undef enqueues
// as before, True is already satisfied and dropped, and False marks the
// solver permanently unsatisfiable (s.unsat) for Solve to report.
func (s *Solver) addInputClause(lits []lit.Lit) {
	if len(lits) == 0 {
		s.assertf("addInputClause requires at least 1 literal")
	}
	for _, l := range lits {
		s.growTo(l.Var())
	}
	if s.unsat {
		return
	}
	if len(lits) == 1 {
		v := s.litValue(lits[0])
		switch {
		case v.IsFalse():
			s.unsat = true
		case v.IsUndef():
			s.enqueue(lits[0], nil)
		}
		return
	}
	s.attach(lits, false)
}
