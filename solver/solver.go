// Package solver implements the CDCL core: the literal/clause model, the
// trail, the watcher index, two-watched-literal propagation, 1-UIP
// conflict analysis, and the decide/propagate/analyze/backjump search
// driver. It accepts clauses from any producer and exposes (Sat,
// assignment) or Unsat to any consumer — it has no notion of file formats,
// CLIs, or wire protocols (spec.md §1, §6).
package solver

import (
	"github.com/objectx/bullsat/config"
	"github.com/objectx/bullsat/lit"
	"github.com/sirupsen/logrus"
)

// Solver is a CDCL SAT solver core.
type Solver struct {
	logger *logrus.Logger
	debug  bool

	// Constraint database. Original clauses are retained for the lifetime
	// of the solver; learnt clauses are removed only by simplifyDB, when
	// satisfied at level 0. There is no activity-based reduction.
	constrs []*Clause
	learnts []*Clause

	// Watcher index: literal encoding -> clauses currently watching it
	// (spec.md §3).
	watches map[lit.Lit][]*Clause

	// Assignment table + trail (spec.md §3, §4.2).
	assigns  []bool // stored truth value per variable; stale-but-readable once unassigned
	level    []int  // decision level per variable, -1 if unassigned
	reason   []*Clause
	trail    []lit.Lit
	curLevel int
	cursor   int // first trail position not yet processed by propagate

	model []bool // valid only after Solve returns Sat

	// unsat is set once addInputClause settles a unit fact against an
	// already-opposite level-0 assignment. It short-circuits Solve: a
	// contradiction baked into the input clauses is not a search
	// conflict, so it has no decision level to backjump from.
	unsat bool

	propagations int
	conflicts    int
	decisions    int
}

// New constructs a solver with an initial universe of n variables. More
// variables may be introduced later as clauses are added (spec.md §6).
func New(n int, cfg *config.Config) *Solver {
	if cfg == nil {
		cfg = config.New()
	}
	s := &Solver{
		logger:  cfg.Logger,
		debug:   cfg.Debug,
		watches: map[lit.Lit][]*Clause{},
	}
	for i := 0; i < n; i++ {
		s.growTo(lit.Var(i))
	}
	return s
}

// AddClause adds a clause to the solver (spec.md §4.3, §6).
func (s *Solver) AddClause(lits []lit.Lit) {
	s.addInputClause(lits)
}

// NVars returns the number of variables known to the solver.
func (s *Solver) NVars() int { return len(s.assigns) }

// NAssigns returns the number of literals currently on the trail.
func (s *Solver) NAssigns() int { return len(s.trail) }

// NConstrs returns the number of original (non-learnt) clauses.
func (s *Solver) NConstrs() int { return len(s.constrs) }

// NLearnts returns the number of learnt clauses.
func (s *Solver) NLearnts() int { return len(s.learnts) }

// NPropagations returns the number of unit propagations performed.
func (s *Solver) NPropagations() int { return s.propagations }

// NConflicts returns the number of conflicts encountered.
func (s *Solver) NConflicts() int { return s.conflicts }

// NDecisions returns the number of decisions made.
func (s *Solver) NDecisions() int { return s.decisions }

// Assignment returns the boolean assigned to v. Valid only after Solve has
// returned Sat; calling it otherwise is a precondition violation (spec.md
// §7) and panics via assertf, whether or not Debug is set.
func (s *Solver) Assignment(v lit.Var) bool {
	if s.model == nil {
		s.assertf("Assignment called without a satisfying model")
	}
	return s.model[v]
}

// buildModel snapshots the current (necessarily total) assignment into
// s.model, once search finds every variable assigned with no conflict.
func (s *Solver) buildModel() {
	s.model = make([]bool, len(s.assigns))
	copy(s.model, s.assigns)
}
