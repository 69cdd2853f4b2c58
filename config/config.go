// Package config holds the solver's ambient settings: where it logs and
// whether it pays for debug-mode invariant checking.
package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Config configures a solver.Solver at construction time.
type Config struct {
	// Logger receives structured diagnostics and precondition-violation
	// panics (spec.md §7). Never nil once New has run.
	Logger *logrus.Logger

	// Debug enables the O(vars + clauses) invariant checks (P1-P4) after
	// every propagate/analyze/backjump cycle (spec.md §8). Left off by
	// default: these checks are a development-time correctness net, not
	// part of the solver's runtime contract.
	Debug bool
}

// New returns a Config with a text-formatted logrus logger writing to
// stderr and Debug off.
func New() *Config {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &Config{Logger: logger}
}
