package solver

import "github.com/objectx/bullsat/lit"

// Solve runs the decide/propagate/analyze/backjump loop to completion and
// returns Sat or Unsat (spec.md §4.6). Unknown is reserved for future
// interruption support and is never returned by this implementation —
// Solve runs to completion without suspension points (spec.md §5, §6).
func (s *Solver) Solve() Status {
	if s.unsat {
		return Unsat
	}
	if !s.simplifyDB() {
		return Unsat
	}
	for {
		if conflict := s.propagate(); conflict != nil {
			s.conflicts++
			if s.decisionLevel() == 0 {
				return Unsat
			}

			learnt, level := s.analyze(conflict)
			s.backjumpTo(level)

			if len(learnt) == 1 {
				// A top-level fact was derived.
				s.enqueue(learnt[0], nil)
			} else {
				c := s.attach(learnt, true)
				s.enqueue(learnt[0], c)
			}
			s.checkInvariants()
			continue
		}
		s.checkInvariants()

		v, ok := s.pickBranchVar()
		if !ok {
			s.buildModel()
			return Sat
		}
		s.decisions++
		s.newDecision(lit.New(v, s.assigns[v]))
		s.checkInvariants()
	}
}

// pickBranchVar returns the first unassigned variable in increasing index
// order, or ok=false if every variable is assigned. The decision heuristic
// is deliberately trivial (spec.md §1): Solve takes the decision's polarity
// from s.assigns[v], i.e. whatever truth value the variable's slot last
// held (phase saving via the recycled assigns byte, spec.md §9), which is
// false for a variable that has never been assigned.
func (s *Solver) pickBranchVar() (v lit.Var, ok bool) {
	for i, lvl := range s.level {
		if lvl < 0 {
			return lit.Var(i), true
		}
	}
	return 0, false
}
