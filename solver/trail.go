package solver

import (
	"github.com/objectx/bullsat/lit"
	"github.com/objectx/bullsat/tribool"
)

// litValue evaluates p under the current assignment (spec.md §4.1 eval):
// Undefined if p's variable has no level, True iff the stored boolean for
// p's variable equals p's polarity, False otherwise.
//
// The stored boolean (s.assigns) is deliberately NOT reset when a variable
// is unassigned by backjumpTo — only its level is. That is spec.md §9's
// "recycled assigns byte": a freshly-unassigned variable keeps the truth
// value it last held, read back as its next decision's starting polarity
// (phase saving), exactly as original_source/bullsat.hpp's `assings`
// vector behaves.
func (s *Solver) litValue(p lit.Lit) tribool.Tribool {
	if s.level[p.Var()] < 0 {
		return tribool.Undef
	}
	return tribool.NewFromBool(s.assigns[p.Var()] == p.IsPositive())
}

// decisionLevel returns the level of the trail tail, or 0 if empty (I5).
func (s *Solver) decisionLevel() int {
	return s.curLevel
}

// enqueue records p as an assignment. Precondition: p.Var() is unassigned
// (spec.md §4.2) — violating it is a programming error (spec.md §7).
func (s *Solver) enqueue(p lit.Lit, reason *Clause) {
	if s.level[p.Var()] >= 0 {
		s.assertf("enqueue of already-assigned variable %d", p.Var())
	}
	s.assigns[p.Var()] = p.IsPositive()
	s.level[p.Var()] = s.curLevel
	s.reason[p.Var()] = reason
	s.trail = append(s.trail, p)
}

// newDecision increments the decision level and enqueues p with no reason.
// The increment is associated with p and every propagation before the next
// decision (spec.md §4.2).
//
// spec.md §9 pins down this ordering deliberately: increment the current
// decision level first, then enqueue at the new level. The ordering in
// original_source/bullsat.hpp's new_decision (enqueue, then bump the
// just-enqueued variable's level) only produces the same result because
// enqueue there writes the pre-increment level and the increment mutates
// it in place afterward — a fragile coupling this implementation avoids.
func (s *Solver) newDecision(p lit.Lit) {
	s.curLevel++
	s.enqueue(p, nil)
}

// backjumpTo pops trail entries whose level exceeds L, clearing each
// popped variable's level and reason (but not its stored truth value — see
// litValue), and resets the propagation cursor to the new trail length
// (spec.md §4.2).
//
// spec.md §9 fixes an off-by-one in original_source/bullsat.hpp's
// pop_queue_until, which leaves the cursor at len(trail)-1 (revisiting the
// last surviving literal). This sets it to len(trail) exactly: correct,
// if marginally more work is skipped, per the spec's explicit preference.
func (s *Solver) backjumpTo(L int) {
	if L > s.curLevel {
		s.assertf("backjumpTo level %d never reached (current %d)", L, s.curLevel)
	}
	for len(s.trail) > 0 {
		p := s.trail[len(s.trail)-1]
		if s.level[p.Var()] <= L {
			break
		}
		s.reason[p.Var()] = nil
		s.level[p.Var()] = -1
		s.trail = s.trail[:len(s.trail)-1]
	}
	s.curLevel = L
	s.cursor = len(s.trail)
}
