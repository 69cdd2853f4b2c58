package solver

import "github.com/objectx/bullsat/lit"

// assertf reports a violated precondition. spec.md §7 classifies these as
// programming errors ("adding a literal with negative variable index,
// enqueuing an already-assigned variable, backjumping past a level that
// was never reached, calling analyze at decision level 0") that the
// implementation must detect "at least in a debug mode." Logged through
// logrus with structured fields before panicking, rather than a bare
// panic(string), so a host running with logging attached gets the
// violated invariant in its log stream as well as the panic trace.
func (s *Solver) assertf(format string, args ...interface{}) {
	s.logger.WithField("component", "solver").Panicf(format, args...)
}

// checkInvariants re-checks P1–P4 (spec.md §8) after propagate/analyze/
// backjump, when Solver.Debug is set; P3 is checked only when the
// propagation cursor has reached the end of the trail. P5 is not checked
// here. With Debug off it returns immediately: these checks are
// O(vars + clauses) and are a correctness net during development, not
// part of the core's runtime contract.
func (s *Solver) checkInvariants() {
	if !s.debug {
		return
	}
	s.checkP1()
	s.checkP2()
	if s.cursor >= len(s.trail) {
		s.checkP3()
	}
	s.checkP4()
}

// checkP1: for every variable v, level[v] is defined iff v appears on the
// trail.
func (s *Solver) checkP1() {
	onTrail := make([]bool, len(s.assigns))
	for _, p := range s.trail {
		onTrail[p.Var()] = true
	}
	for v := range s.assigns {
		hasLevel := s.level[v] >= 0
		if hasLevel != onTrail[v] {
			s.assertf("P1 violated: var %d level-defined=%v on-trail=%v", v, hasLevel, onTrail[v])
		}
	}
}

// checkP2: every attached clause of size >= 2 sits in exactly the watcher
// lists of ¬C[0] and ¬C[1].
func (s *Solver) checkP2() {
	check := func(c *Clause) {
		for _, w := range []int{0, 1} {
			p := c.lits[w].Negation()
			found := false
			for _, other := range s.watches[p] {
				if other == c {
					found = true
					break
				}
			}
			if !found {
				s.assertf("P2 violated: clause %s not watched at %s", c, p)
			}
		}
	}
	for _, c := range s.constrs {
		check(c)
	}
	for _, c := range s.learnts {
		check(c)
	}
}

// checkP3: when propagate has reached the end of the trail, every attached
// clause is either satisfied or has both watched literals non-False.
func (s *Solver) checkP3() {
	check := func(c *Clause) {
		satisfied := false
		for i := 0; i < c.Len(); i++ {
			if s.litValue(c.lits[i]).IsTrue() {
				satisfied = true
				break
			}
		}
		if satisfied {
			return
		}
		if s.litValue(c.lits[0]).IsFalse() || s.litValue(c.lits[1]).IsFalse() {
			s.assertf("P3 violated: clause %s has a false watched literal with no satisfied literal", c)
		}
	}
	for _, c := range s.constrs {
		check(c)
	}
	for _, c := range s.learnts {
		check(c)
	}
}

// checkP4: every propagated literal's reason clause R has R[0] equal to
// that literal and every other literal of R False at the time checked.
func (s *Solver) checkP4() {
	for v := range s.assigns {
		r := s.reason[v]
		if r == nil {
			continue
		}
		p := r.At(0)
		if p.Var() != lit.Var(v) {
			s.assertf("P4 violated: reason clause's first literal is not the propagated variable %d", v)
		}
		for i := 1; i < r.Len(); i++ {
			if !s.litValue(r.At(i)).IsFalse() {
				s.assertf("P4 violated: reason clause %s has a non-false literal at position %d", r, i)
			}
		}
	}
}
