package main

import (
	"fmt"

	"github.com/ericr/tuesday/config"
	"github.com/ericr/tuesday/solver"
)

func main() {
	printBanner()

	sat := solver.New(config.New())
	sat.AddClause([]int{1, 2})
	sat.AddClause([]int{-1, 3})
	sat.AddClause([]int{-2, -3})

	if sat.Solve() == solver.Sat {
		fmt.Println("\nSAT")

		for _, p := range sat.Answer() {
			fmt.Printf("%d ", p)
		}
		fmt.Println("0")
	} else {
		fmt.Println("\nUNSAT")
	}
}

func printBanner() {
	fmt.Printf("Tuesday Solver %s\n", solver.Version())
	fmt.Println("")
}
