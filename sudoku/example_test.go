package sudoku_test

import (
	"fmt"

	"github.com/pathfind-labs/pathfind/sudoku"
)

// ExampleParse loads a 4×4 puzzle and renders it back.
func ExampleParse() {
	b, err := sudoku.Parse("12..\n..21\n2...\n...2")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(b)
	// Output:
	// 1 2 | . .
	// . . | 2 1
	// ---------
	// 2 . | . .
	// . . | . 2
}

// ExampleNew_malformed shows load-time rejection: two equal clues in
// one row never reach a solver.
func ExampleNew_malformed() {
	grid := [][]int{
		{3, 0, 0, 3},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	_, err := sudoku.New(grid)
	fmt.Println(err != nil)
	// Output:
	// true
}
