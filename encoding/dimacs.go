package encoding

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Problem is a parsed DIMACS CNF instance. NumVars comes from the header;
// Clauses holds one signed-integer vector per clause, zero terminator
// stripped. NumClauses reflects the clauses actually read, which may be fewer
// than the header declared.
type Problem struct {
	NumVars    int
	NumClauses int
	Clauses    [][]int
}

// ParseDimacs reads a DIMACS CNF problem. Comment lines start with "c"; the
// header line is "p cnf <vars> <clauses>"; each following line holds one
// clause as signed integers terminated by 0. Blank lines are skipped. If the
// input ends before the declared clause count, the problem is truncated to
// what was read.
func ParseDimacs(in io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(in)
	p := &Problem{}
	header := false

	for scanner.Scan() {
		fields := bytes.Fields(scanner.Bytes())

		if len(fields) == 0 || string(fields[0]) == "c" {
			continue
		}
		if string(fields[0]) == "p" {
			if header {
				continue
			}
			if err := p.parseHeader(fields); err != nil {
				return nil, err
			}
			header = true
			continue
		}
		if !header {
			continue
		}
		if len(p.Clauses) == p.NumClauses {
			break
		}
		clause, err := parseClause(fields)
		if err != nil {
			return nil, err
		}
		p.Clauses = append(p.Clauses, clause)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read cnf")
	}
	if !header {
		return nil, errors.New("missing \"p cnf\" header")
	}
	p.NumClauses = len(p.Clauses)

	return p, nil
}

func (p *Problem) parseHeader(fields [][]byte) error {
	if len(fields) != 4 || string(fields[1]) != "cnf" {
		return errors.Errorf("malformed header %q", string(bytes.Join(fields, []byte(" "))))
	}
	vars, err := strconv.Atoi(string(fields[2]))
	if err != nil {
		return errors.Wrap(err, "parse header variable count")
	}
	clauses, err := strconv.Atoi(string(fields[3]))
	if err != nil {
		return errors.Wrap(err, "parse header clause count")
	}
	if vars < 0 || clauses < 0 {
		return errors.Errorf("negative counts in header: %d vars, %d clauses", vars, clauses)
	}
	p.NumVars = vars
	p.NumClauses = clauses

	return nil
}

func parseClause(fields [][]byte) ([]int, error) {
	clause := []int{}

	for _, field := range fields {
		n, err := strconv.Atoi(string(field))
		if err != nil {
			return nil, errors.Wrapf(err, "parse literal %q", string(field))
		}
		if n == 0 {
			break
		}
		clause = append(clause, n)
	}
	return clause, nil
}
