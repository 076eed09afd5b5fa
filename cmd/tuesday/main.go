package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/ericr/tuesday/config"
	"github.com/ericr/tuesday/encoding"
	"github.com/ericr/tuesday/solver"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		timeout float64
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "tuesday <input.cnf>",
		Short: fmt.Sprintf("Tuesday %s, a DPLL SAT solver for DIMACS CNF files", solver.Version()),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], timeout, verbose)
		},
	}
	cmd.Flags().Float64Var(&timeout, "timeout", config.DefaultTimeoutSeconds, "search budget in seconds")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug diagnostics on stderr")

	return cmd
}

func run(path string, timeout float64, verbose bool) error {
	tStart := time.Now()

	conf, err := config.FromMap(map[string]any{
		"timeout_seconds": timeout,
		"verbose":         verbose,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Filename provided: %s\n", path)

	problem, err := readCNF(path)
	if err != nil {
		return err
	}
	fmt.Printf("| Vars: %d | Clauses: %d |\n", problem.NumVars, problem.NumClauses)

	sat := solver.New(conf)
	sat.Grow(problem.NumVars)
	for _, clause := range problem.Clauses {
		sat.AddClause(clause)
	}

	fmt.Printf("Result: %s\n", sat.Solve())
	fmt.Printf("CPU time used: %.5f seconds\n", time.Since(tStart).Seconds())

	return nil
}

func readCNF(path string) (*encoding.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open cnf")
	}
	defer f.Close()

	if !isFile(path) {
		return nil, errors.Errorf("open %s: not a readable file", path)
	}
	problem, err := encoding.ParseDimacs(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return problem, nil
}

func isFile(path string) bool {
	if fs, err := os.Stat(path); err == nil {
		if fs.Mode().IsRegular() {
			return true
		}
	}
	return false
}
