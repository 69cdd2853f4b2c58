// Command cdcl is a thin DIMACS-in, SAT/UNSAT-out frontend over the
// solver package. It is not part of the core and the core does not
// depend on it (spec.md §1, §6).
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/objectx/bullsat/config"
	"github.com/objectx/bullsat/encoding"
	"github.com/objectx/bullsat/lit"
	"github.com/objectx/bullsat/solver"
)

var (
	debug   bool
	verbose bool

	cmd = &cobra.Command{
		Use:   "cdcl [file.cnf]",
		Short: "Solve a DIMACS CNF instance with a CDCL SAT solver",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
)

func init() {
	flags := cmd.Flags()
	flags.BoolVar(&debug, "debug", false, "enable invariant checking after every propagate/analyze/backjump")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log solver progress")
}

func run(c *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	problem, err := encoding.ParseDimacs(f)
	if err != nil {
		return err
	}

	cfg := config.New()
	cfg.Debug = debug
	if verbose {
		cfg.Logger.SetLevel(logrus.DebugLevel)
	} else {
		cfg.Logger.SetLevel(logrus.WarnLevel)
	}

	s := solver.New(problem.NVars, cfg)
	for _, clause := range problem.Clauses {
		s.AddClause(clause)
	}

	switch s.Solve() {
	case solver.Sat:
		fmt.Println("SAT")
		for v := lit.Var(0); int(v) < s.NVars(); v++ {
			sign := ""
			if !s.Assignment(v) {
				sign = "-"
			}
			fmt.Printf("%s%d ", sign, v+1)
		}
		fmt.Println("0")
	case solver.Unsat:
		fmt.Println("UNSAT")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "decisions=%d propagations=%d conflicts=%d learnts=%d\n",
			s.NDecisions(), s.NPropagations(), s.NConflicts(), s.NLearnts())
	}

	return nil
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
