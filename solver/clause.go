package solver

import (
	"strings"

	"github.com/objectx/bullsat/lit"
)

// Clause is an ordered sequence of literals interpreted as their
// disjunction. Positions 0 and 1 are, after attachment, the watched
// literals (spec.md §3); propagation permutes the literals but never
// changes their set. Only simplify, at decision level 0, removes literals
// (those evaluating False).
//
// No clause deduplication, tautology removal, or literal sorting is
// performed (spec.md §4.1): duplicates and contradictions inside a single
// input clause are tolerated and handled naturally by propagation — a
// tautological clause is simply satisfied the instant either of its
// complementary literals is assigned.
type Clause struct {
	lits   []lit.Lit
	learnt bool
}

// newClause builds a Clause from lits and attaches it, returning the
// attached clause. Precondition: len(lits) >= 2 — unit and empty clauses
// are the caller's concern (addInputClause and Solve handle them before
// reaching here).
func newClause(s *Solver, lits []lit.Lit, learnt bool) *Clause {
	if len(lits) < 2 {
		panic("solver: newClause requires at least 2 literals")
	}
	c := &Clause{lits: lits, learnt: learnt}

	if learnt {
		// Watch the literal with the highest decision level in position 1,
		// alongside the asserting literal in position 0. Any choice of
		// second watch is correctness-preserving (the asserting literal
		// becomes true the moment it's enqueued, immediately satisfying the
		// clause regardless of position 1's value) but this one keeps the
		// watch meaningful across the very next backjump.
		idx := c.highestLevelIndex(s, 1)
		c.lits[1], c.lits[idx] = c.lits[idx], c.lits[1]
	}

	c.addWatcher(s, c.lits[0].Negation())
	c.addWatcher(s, c.lits[1].Negation())

	return c
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// At returns the literal at position i.
func (c *Clause) At(i int) lit.Lit {
	return c.lits[i]
}

// locked reports whether c is the reason for its own first literal's
// assignment — a locked clause must not be removed while attached.
func (c *Clause) locked(s *Solver) bool {
	return s.reason[c.lits[0].Var()] == c
}

// detach removes c from both of its watcher lists.
func (c *Clause) detach(s *Solver) {
	c.removeWatcher(s, c.lits[0].Negation())
	c.removeWatcher(s, c.lits[1].Negation())
}

// simplify drops literals that are False under the current (level-0)
// assignment, returning true if the clause is already satisfied (in which
// case it should be detached and discarded by the caller). Only ever
// called at decision level 0, between searches (solver.simplifyDB).
func (c *Clause) simplify(s *Solver) bool {
	j := 0
	for i := 0; i < c.Len(); i++ {
		v := s.litValue(c.lits[i])
		if v.IsTrue() {
			return true
		}
		if v.IsUndef() {
			c.lits[j] = c.lits[i]
			j++
		}
	}
	c.lits = c.lits[:j]
	return false
}

// highestLevelIndex returns the index, starting from `from`, of the literal
// assigned at the highest decision level.
func (c *Clause) highestLevelIndex(s *Solver, from int) int {
	best := from
	bestLevel := s.level[c.lits[from].Var()]
	for i := from + 1; i < c.Len(); i++ {
		if lvl := s.level[c.lits[i].Var()]; lvl > bestLevel {
			best = i
			bestLevel = lvl
		}
	}
	return best
}

// addWatcher registers c in p's watcher list.
func (c *Clause) addWatcher(s *Solver, p lit.Lit) {
	s.watches[p] = append(s.watches[p], c)
}

// removeWatcher drops c from p's watcher list via swap-with-last, per
// spec.md §4.4's step 2 ("remove C from ℓ's watcher list by swap-with-last
// then truncate").
func (c *Clause) removeWatcher(s *Solver, p lit.Lit) {
	ws := s.watches[p]
	for i, w := range ws {
		if w == c {
			n := len(ws) - 1
			ws[i] = ws[n]
			s.watches[p] = ws[:n]
			return
		}
	}
}

// String renders the clause as its literals joined by " ∨ ".
func (c *Clause) String() string {
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ∨ ")
}
