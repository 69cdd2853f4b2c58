package solver

import (
	"math/rand"
	"testing"

	"github.com/objectx/bullsat/lit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Concrete scenarios (spec.md §8) ---------------------------------

func TestEmptyFormulaIsSat(t *testing.T) {
	s := newTestSolver(0)
	require.Equal(t, Sat, s.Solve())
}

func TestUnitClauseIsSat(t *testing.T) {
	s := newTestSolver(1)
	s.AddClause(lits(1))

	require.Equal(t, Sat, s.Solve())
	assert.True(t, s.Assignment(0))
}

func TestContradictoryUnitsAreUnsat(t *testing.T) {
	s := newTestSolver(1)
	s.AddClause(lits(1))
	s.AddClause(lits(-1))

	require.Equal(t, Unsat, s.Solve())
}

func TestDuplicateUnitClauseIsSat(t *testing.T) {
	s := newTestSolver(1)
	s.AddClause(lits(1))
	s.AddClause(lits(1))

	require.Equal(t, Sat, s.Solve())
	assert.True(t, s.Assignment(0))
}

func TestFourClauseTwoVarIsUnsat(t *testing.T) {
	s := newTestSolver(2)
	s.AddClause(lits(1, 2))
	s.AddClause(lits(-1, 2))
	s.AddClause(lits(1, -2))
	s.AddClause(lits(-1, -2))

	require.Equal(t, Unsat, s.Solve())
}

// pigeonhole encodes PHPₙ→ₘ: n pigeons, m < n holes. var(p, h) = p*m+h.
func pigeonhole(s *Solver, pigeons, holes int) {
	v := func(p, h int) int { return p*holes + h + 1 }
	for p := 0; p < pigeons; p++ {
		row := make([]lit.Lit, 0, holes)
		for h := 0; h < holes; h++ {
			row = append(row, lits(v(p, h))...)
		}
		s.AddClause(row)
	}
	for h := 0; h < holes; h++ {
		for p1 := 0; p1 < pigeons; p1++ {
			for p2 := p1 + 1; p2 < pigeons; p2++ {
				s.AddClause(lits(-v(p1, h), -v(p2, h)))
			}
		}
	}
}

func TestPigeonholeThreeIntoTwoIsUnsat(t *testing.T) {
	s := newTestSolver(6)
	pigeonhole(s, 3, 2)

	require.Equal(t, Unsat, s.Solve())
}

func TestThreeClauseExampleIsSatAndSatisfiesInput(t *testing.T) {
	s := newTestSolver(3)
	clauses := [][]lit.Lit{
		lits(1, 2, 3),
		lits(-1, 2),
		lits(-2, 3),
	}
	for _, c := range clauses {
		s.AddClause(c)
	}

	require.Equal(t, Sat, s.Solve())
	assertSatisfiesAll(t, s, clauses)
}

// --- L1: soundness -----------------------------------------------------

func assertSatisfiesAll(t *testing.T, s *Solver, clauses [][]lit.Lit) {
	t.Helper()
	for _, c := range clauses {
		satisfied := false
		for _, p := range c {
			v := s.Assignment(p.Var())
			if v == p.IsPositive() {
				satisfied = true
				break
			}
		}
		assert.True(t, satisfied, "clause %v not satisfied by model", c)
	}
}

// --- L2/property-based: cross-check against a brute-force oracle -------

func bruteForceSat(nvars int, clauses [][]lit.Lit) bool {
	for assignment := 0; assignment < (1 << uint(nvars)); assignment++ {
		ok := true
		for _, c := range clauses {
			satisfied := false
			for _, p := range c {
				bit := (assignment >> uint(p.Var())) & 1
				if (bit == 1) == p.IsPositive() {
					satisfied = true
					break
				}
			}
			if !satisfied {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func randomClause(rng *rand.Rand, nvars, width int) []lit.Lit {
	c := make([]lit.Lit, width)
	for i := range c {
		v := lit.Var(rng.Intn(nvars))
		c[i] = lit.New(v, rng.Intn(2) == 0)
	}
	return c
}

func TestRandomThreeCNFAgreesWithBruteForceOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		nvars := 4 + rng.Intn(9) // 4..12
		nclauses := 1 + rng.Intn(4*nvars)

		var clauses [][]lit.Lit
		s := newTestSolver(nvars)
		for i := 0; i < nclauses; i++ {
			c := randomClause(rng, nvars, 3)
			clauses = append(clauses, c)
			s.AddClause(c)
		}

		want := bruteForceSat(nvars, clauses)
		got := s.Solve()

		require.Equal(t, want, got == Sat, "nvars=%d clauses=%v", nvars, clauses)
		if got == Sat {
			assertSatisfiesAll(t, s, clauses)
		}
	}
}

// --- P1-P4 exercised implicitly via checkInvariants (s.debug = true
// for every solver built by newTestSolver) across every Solve call
// above; the invariant checks panic on violation so a passing test run
// is itself the P1-P4 evidence. P5, L4 and L5 are exercised directly
// below against the analyzer and backjump. ---

func TestBackjumpLeavesOnlyLiteralsAtOrBelowTargetLevel(t *testing.T) {
	s := newTestSolver(4)
	s.newDecision(lits(1)[0])
	s.newDecision(lits(2)[0])
	s.newDecision(lits(3)[0])

	s.backjumpTo(1)

	assert.Equal(t, 1, s.decisionLevel())
	for _, p := range s.trail {
		assert.LessOrEqual(t, s.level[p.Var()], 1)
	}
	assert.Len(t, s.trail, 1)
}

func TestAnalyzeProducesAssertingUnitClauseAfterBackjump(t *testing.T) {
	// {x0 v x1}, {~x0 v x1}, {x0 v ~x1}, {~x0 v ~x1} forbids all four
	// sign combinations of x0,x1: deciding x0 alone already forces x1 via
	// unit propagation and then immediately conflicts, at decision level 1.
	s := newTestSolver(2)
	s.AddClause(lits(1, 2))
	s.AddClause(lits(-1, 2))
	s.AddClause(lits(1, -2))
	s.AddClause(lits(-1, -2))

	s.newDecision(lits(1)[0])
	conflict := s.propagate()
	require.NotNil(t, conflict)

	learnt, level := s.analyze(conflict)
	s.backjumpTo(level)

	require.Len(t, learnt, 1, "this formula's conflicts resolve to a unit clause at every branch")
	asserting := learnt[0]
	assert.Less(t, s.level[asserting.Var()], 0, "L5: asserting literal must be Undefined immediately after backjump")
}
