// Package encoding translates between the DIMACS CNF text format and the
// solver's 0-indexed lit.Lit representation. This boundary is the only
// place in the module where 1-indexed, signed-integer literals exist;
// everything past it speaks lit.Lit (spec.md §6).
package encoding

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/objectx/bullsat/lit"
	"github.com/pkg/errors"
)

// Problem is a parsed DIMACS CNF instance: a variable count (as declared
// by the "p cnf" header, raised to the highest variable seen in a clause
// if that is larger) and its clauses, already translated to lit.Lit.
type Problem struct {
	NVars   int
	Clauses [][]lit.Lit
}

// ParseDimacs reads a DIMACS CNF file from in. Lines beginning with "c"
// are comments; a "p cnf <nvars> <nclauses>" line declares the variable
// count (the clause count is advisory and not checked against the
// number of clauses actually read); every other non-blank line is a
// clause: whitespace-separated signed integers terminated by a 0.
//
// A DIMACS literal of magnitude m and sign translates to
// lit.New(lit.Var(m-1), sign > 0) — DIMACS variables are 1-indexed,
// the solver's are 0-indexed.
func ParseDimacs(in io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(in)
	p := &Problem{}
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c":
			continue
		case "p":
			if len(fields) < 3 {
				return nil, errors.Errorf("dimacs: line %d: malformed problem line %q", lineNo, scanner.Text())
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrapf(err, "dimacs: line %d: variable count", lineNo)
			}
			p.NVars = n
			continue
		}

		clause := make([]lit.Lit, 0, len(fields))
		for _, field := range fields {
			x, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "dimacs: line %d: literal %q", lineNo, field)
			}
			if x == 0 {
				break
			}
			v := lit.Var(abs(x) - 1)
			if int(v) >= p.NVars {
				p.NVars = int(v) + 1
			}
			clause = append(clause, lit.New(v, x > 0))
		}
		if len(clause) == 0 {
			continue
		}
		p.Clauses = append(p.Clauses, clause)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "dimacs: read")
	}
	return p, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
