// Package lit defines the literal and variable value types shared by the
// whole solver: a dense, zero-indexed variable space and the 2v/2v+1
// literal encoding used to index directly into per-literal arrays (watcher
// lists, assignment tables).
package lit

import "fmt"

// Var is a zero-indexed Boolean variable. The practical limit is 2^30
// variables: the encoding below doubles the index, so it must not overflow
// the chosen width.
type Var int32

// Lit is a variable paired with a polarity, encoded as 2*v (positive) or
// 2*v+1 (negated). Equality and ordering are over this encoding.
type Lit int32

// Undef is the sentinel for "no literal" — never a valid encoded literal.
const Undef = Lit(-1)

// New constructs the literal for v with the given polarity. Panics if v is
// negative: a negative variable index is a programming error, not a
// recoverable one (spec.md §7).
func New(v Var, positive bool) Lit {
	if v < 0 {
		panic(fmt.Sprintf("lit: negative variable index %d", v))
	}
	if positive {
		return Lit(2 * v)
	}
	return Lit(2*v + 1)
}

// Var returns the variable this literal refers to.
func (l Lit) Var() Var {
	return Var(l / 2)
}

// IsPositive is true iff l is the unnegated form of its variable.
func (l Lit) IsPositive() bool {
	return l&1 == 0
}

// IsNegative is true iff l is the negated form of its variable.
func (l Lit) IsNegative() bool {
	return l&1 == 1
}

// Negation returns ~l. Flipping the low bit is its own inverse, so
// l.Negation().Negation() == l.
func (l Lit) Negation() Lit {
	return l ^ 1
}

// Encoding returns the dense array index for l, suitable for indexing a
// per-literal slice (e.g. a watcher index).
func (l Lit) Encoding() int {
	return int(l)
}

// String renders l in DIMACS-ish notation, 0-indexed (e.g. "x3", "~x3").
func (l Lit) String() string {
	if l.IsNegative() {
		return fmt.Sprintf("~x%d", l.Var())
	}
	return fmt.Sprintf("x%d", l.Var())
}
