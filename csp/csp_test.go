package csp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathfind-labs/pathfind/csp"
	"github.com/pathfind-labs/pathfind/sudoku"
)

// easyNine is a standard 9×9 puzzle with a unique, well-known solution.
const easyNine = `
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`

// easyNineSolution is the unique solution of easyNine.
var easyNineSolution = [][]int{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

// unsolvableFour is well-formed (no two clues clash in any group) but
// has no solution: cell (0,3) cannot take 1..3 (row) nor 4 (box).
const unsolvableFour = `
123.
..4.
....
....
`

// solvers maps strategy names to entry points for table-driven runs.
var solvers = map[string]func(*sudoku.Board, ...csp.Option) (*csp.Result, error){
	"Backtracking": csp.Backtracking,
	"Enhanced":     csp.Enhanced,
}

func mustParse(t *testing.T, text string, opts ...sudoku.Option) *sudoku.Board {
	t.Helper()
	b, err := sudoku.Parse(text, opts...)
	require.NoError(t, err)

	return b
}

func TestSolvers_NilBoard(t *testing.T) {
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			_, err := solve(nil)
			assert.ErrorIs(t, err, csp.ErrNilBoard)
		})
	}
}

func TestSolvers_StandardNine(t *testing.T) {
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			b := mustParse(t, easyNine)
			res, err := solve(b)
			require.NoError(t, err)
			assert.True(t, res.Solved)
			assert.True(t, res.Board.IsComplete())
			assert.Equal(t, easyNineSolution, res.Board.Grid())
		})
	}
}

func TestSolvers_CluesPreserved(t *testing.T) {
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			b := mustParse(t, easyNine)
			res, err := solve(b)
			require.NoError(t, err)
			for i := 0; i < b.CellCount(); i++ {
				if b.Fixed(i) {
					assert.Equal(t, b.Value(i), res.Board.Value(i))
				}
			}
		})
	}
}

func TestSolvers_InputNotMutated(t *testing.T) {
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			b := mustParse(t, easyNine)
			before := b.Grid()
			domain := b.Domain(b.CellAt(0, 2))

			_, err := solve(b)
			require.NoError(t, err)
			assert.Equal(t, before, b.Grid())
			assert.Equal(t, domain, b.Domain(b.CellAt(0, 2)))
		})
	}
}

func TestSolvers_Idempotent(t *testing.T) {
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			b := mustParse(t, easyNine)
			first, err := solve(b)
			require.NoError(t, err)
			second, err := solve(b)
			require.NoError(t, err)

			assert.Equal(t, first.Board.Grid(), second.Board.Grid())
			assert.Equal(t, first.Stats.Calls, second.Stats.Calls)
			assert.Equal(t, first.Stats.Backtracks, second.Stats.Backtracks)
			assert.Equal(t, first.Stats.Pruned, second.Stats.Pruned)
		})
	}
}

func TestSolvers_Unsolvable(t *testing.T) {
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			b := mustParse(t, unsolvableFour)
			res, err := solve(b)
			require.NoError(t, err, "unsolvable is a result, not an error")
			assert.False(t, res.Solved)
		})
	}
}

func TestEnhanced_WipeoutCaughtBeforeSearch(t *testing.T) {
	b := mustParse(t, unsolvableFour)
	res, err := csp.Enhanced(b)
	require.NoError(t, err)
	assert.False(t, res.Solved)
	// The initial propagation empties (0,3)'s domain; no search call runs.
	assert.Zero(t, res.Stats.Calls)
}

func TestSolvers_LatinSquare(t *testing.T) {
	// Box-free 4×4: rows and columns only.
	const latin = "1...\n.2..\n..3.\n...4"
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			b := mustParse(t, latin, sudoku.WithoutBoxes())
			res, err := solve(b)
			require.NoError(t, err)
			assert.True(t, res.Solved)
			assert.True(t, res.Board.IsComplete())
		})
	}
}

func TestSolvers_CustomRegion(t *testing.T) {
	// Main-diagonal all-distinct region on top of a box-free 4×4.
	diag := []sudoku.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}, {Row: 3, Col: 3}}
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			b, err := sudoku.Parse("1...\n....\n....\n...3",
				sudoku.WithoutBoxes(), sudoku.WithRegions(diag))
			require.NoError(t, err)

			res, err := solve(b)
			require.NoError(t, err)
			require.True(t, res.Solved)

			seen := map[int]bool{}
			for i := 0; i < 4; i++ {
				v := res.Board.Value(res.Board.CellAt(i, i))
				assert.False(t, seen[v], "diagonal value %d repeated", v)
				seen[v] = true
			}
		})
	}
}

func TestEnhanced_PrunesAndOutsearchesPlain(t *testing.T) {
	b := mustParse(t, easyNine)

	plain, err := csp.Backtracking(b)
	require.NoError(t, err)
	enhanced, err := csp.Enhanced(b)
	require.NoError(t, err)

	assert.Positive(t, enhanced.Stats.Pruned)
	assert.Zero(t, plain.Stats.Pruned, "plain strategy never prunes")
	assert.LessOrEqual(t, enhanced.Stats.Calls, plain.Stats.Calls)
	assert.LessOrEqual(t, enhanced.Stats.Backtracks, plain.Stats.Backtracks)
}

func TestSolvers_CallBudget(t *testing.T) {
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			b := mustParse(t, easyNine)
			_, err := solve(b, csp.WithMaxCalls(3))
			assert.ErrorIs(t, err, csp.ErrCallBudget)
		})
	}
}

func TestSolvers_NegativeBudgetOption(t *testing.T) {
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			b := mustParse(t, easyNine)
			_, err := solve(b, csp.WithMaxCalls(-1))
			assert.ErrorIs(t, err, csp.ErrOptionViolation)
		})
	}
}

func TestSolvers_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			b := mustParse(t, easyNine)
			_, err := solve(b, csp.WithContext(ctx))
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestSolvers_AlreadySolvedBoard(t *testing.T) {
	grid := make([]string, 0, 9)
	for _, row := range easyNineSolution {
		line := make([]byte, 9)
		for c, v := range row {
			line[c] = byte('0' + v)
		}
		grid = append(grid, string(line))
	}
	text := grid[0]
	for _, l := range grid[1:] {
		text += "\n" + l
	}

	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			b := mustParse(t, text)
			res, err := solve(b)
			require.NoError(t, err)
			assert.True(t, res.Solved)
			assert.Equal(t, easyNineSolution, res.Board.Grid())
			assert.Zero(t, res.Stats.Backtracks)
		})
	}
}
