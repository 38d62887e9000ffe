package csp_test

import (
	"fmt"

	"github.com/pathfind-labs/pathfind/csp"
	"github.com/pathfind-labs/pathfind/sudoku"
)

// ExampleBacktracking solves a 4×4 puzzle with the plain strategy.
func ExampleBacktracking() {
	board, err := sudoku.Parse("12..\n34..\n....\n...3")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	res, err := csp.Backtracking(board)
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Println("solved:", res.Solved)
	fmt.Print(res.Board)
	// Output:
	// solved: true
	// 1 2 | 3 4
	// 3 4 | 1 2
	// ---------
	// 2 3 | 4 1
	// 4 1 | 2 3
}

// ExampleEnhanced shows the propagation statistics of the enhanced
// strategy on the same puzzle.
func ExampleEnhanced() {
	board, err := sudoku.Parse("12..\n34..\n....\n...3")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	res, err := csp.Enhanced(board)
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Println("solved:", res.Solved)
	fmt.Println("pruned something:", res.Stats.Pruned > 0)
	// Output:
	// solved: true
	// pruned something: true
}
