// Package sudoku defines the constraint board model for Sudoku-like
// puzzles: an N×N grid of cells with candidate domains and all-distinct
// constraint groups (rows, columns, boxes, and arbitrary custom regions
// for customized variants).
//
// The model is region-shape-agnostic: a constraint group is any set of
// cells that must hold pairwise-distinct values, so non-standard
// variants plug in through WithRegions without touching the solvers.
//
// Load-time validation is strict: a puzzle that is structurally broken
// (ragged grid, out-of-range clue, duplicate clue inside a group)
// fails with ErrMalformedPuzzle before any solver runs. "No solution
// exists" is never signalled through these errors - that is a normal
// solver outcome.
//
// Errors:
//
//	ErrMalformedPuzzle - structurally invalid puzzle at load time.
//	ErrCellOutOfRange  - cell index or coordinate outside the grid.
//	ErrValueOutOfRange - value outside 1..side.
package sudoku

import (
	"errors"
	"fmt"
)

// MaxSide bounds the grid dimension so candidate domains fit one uint64
// bitset (bits 1..side).
const MaxSide = 49

// Sentinel errors for board construction and mutation.
var (
	// ErrMalformedPuzzle indicates a structurally invalid puzzle:
	// wrong dimensions, a clue outside 1..side, a broken custom
	// region, or two clues violating a constraint group at load time.
	ErrMalformedPuzzle = errors.New("sudoku: malformed puzzle")

	// ErrCellOutOfRange indicates a cell reference outside the grid.
	ErrCellOutOfRange = errors.New("sudoku: cell out of range")

	// ErrValueOutOfRange indicates a value outside 1..side.
	ErrValueOutOfRange = errors.New("sudoku: value out of range")
)

// Coord addresses a cell by grid position, zero-based.
type Coord struct {
	Row, Col int
}

// Board is the in-memory CSP model of one puzzle instance.
//
// Cells are addressed by row-major index (0 … side²-1). A Board is
// mutated only by the solvers during assignment, backtracking, and
// domain pruning; callers that need the pristine puzzle keep a Clone.
type Board struct {
	side int
	box  int // box dimension; 0 when the variant has no boxes

	values  []int    // assigned value per cell, 0 = empty
	fixed   []bool   // clue flags; clues are never reassigned
	domains []uint64 // candidate bitsets, bit v = value v is legal

	groups [][]int // all-distinct constraint groups (cell indices)
	peers  [][]int // cell → sorted cells sharing at least one group
}

// Option configures Board construction.
type Option func(*boardConfig)

type boardConfig struct {
	regions   [][]Coord
	skipBoxes bool
}

// WithRegions adds custom all-distinct regions on top of the row and
// column groups. Each region is an arbitrary cell set; this is how
// customized variants (extra shapes, diagonals) are expressed.
func WithRegions(regions ...[]Coord) Option {
	return func(c *boardConfig) {
		c.regions = append(c.regions, regions...)
	}
}

// WithoutBoxes suppresses the box groups even when side is a perfect
// square, leaving a pure Latin-square constraint set.
func WithoutBoxes() Option {
	return func(c *boardConfig) { c.skipBoxes = true }
}

// New builds a Board from a square grid of clue values (0 = empty).
// Rows, columns, and - when side is a perfect square and boxes are not
// suppressed - the √side×√side boxes become constraint groups, followed
// by any custom regions.
//
// Returns ErrMalformedPuzzle (wrapped with detail) if the grid is not
// square, a clue is outside 1..side, a region references a cell out of
// range or twice, or two clues in one group carry the same value.
// Complexity: O(side² · groups).
func New(grid [][]int, opts ...Option) (*Board, error) {
	cfg := boardConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	side := len(grid)
	if side == 0 || side > MaxSide {
		return nil, fmt.Errorf("%w: side %d outside 1..%d", ErrMalformedPuzzle, side, MaxSide)
	}
	for r, row := range grid {
		if len(row) != side {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedPuzzle, r, len(row), side)
		}
	}

	b := &Board{
		side:    side,
		box:     boxDim(side, cfg.skipBoxes),
		values:  make([]int, side*side),
		fixed:   make([]bool, side*side),
		domains: make([]uint64, side*side),
	}

	full := fullMask(side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			i := r*side + c
			v := grid[r][c]
			switch {
			case v == 0:
				b.domains[i] = full
			case v >= 1 && v <= side:
				b.values[i] = v
				b.fixed[i] = true
				b.domains[i] = 1 << uint(v)
			default:
				return nil, fmt.Errorf("%w: clue %d at (%d,%d) outside 1..%d", ErrMalformedPuzzle, v, r, c, side)
			}
		}
	}

	if err := b.buildGroups(cfg.regions); err != nil {
		return nil, err
	}
	b.buildPeers()

	if err := b.checkClues(); err != nil {
		return nil, err
	}

	return b, nil
}

// boxDim returns √side when side is a perfect square and boxes are
// wanted, otherwise 0.
func boxDim(side int, skip bool) int {
	if skip {
		return 0
	}
	for d := 1; d*d <= side; d++ {
		if d*d == side {
			return d
		}
	}

	return 0
}

// fullMask has bits 1..side set.
func fullMask(side int) uint64 {
	return (uint64(1)<<uint(side+1) - 1) &^ 1
}

// buildGroups assembles row, column, box, and custom-region groups.
func (b *Board) buildGroups(regions [][]Coord) error {
	n := b.side

	for r := 0; r < n; r++ {
		row := make([]int, n)
		col := make([]int, n)
		for c := 0; c < n; c++ {
			row[c] = r*n + c
			col[c] = c*n + r
		}
		b.groups = append(b.groups, row, col)
	}

	if b.box > 0 {
		d := b.box
		for br := 0; br < d; br++ {
			for bc := 0; bc < d; bc++ {
				box := make([]int, 0, n)
				for r := br * d; r < (br+1)*d; r++ {
					for c := bc * d; c < (bc+1)*d; c++ {
						box = append(box, r*n+c)
					}
				}
				b.groups = append(b.groups, box)
			}
		}
	}

	for gi, region := range regions {
		if len(region) < 2 || len(region) > n {
			return fmt.Errorf("%w: region %d has %d cells, want 2..%d", ErrMalformedPuzzle, gi, len(region), n)
		}
		seen := make(map[int]bool, len(region))
		cells := make([]int, 0, len(region))
		for _, co := range region {
			if co.Row < 0 || co.Row >= n || co.Col < 0 || co.Col >= n {
				return fmt.Errorf("%w: region %d references cell (%d,%d)", ErrMalformedPuzzle, gi, co.Row, co.Col)
			}
			i := co.Row*n + co.Col
			if seen[i] {
				return fmt.Errorf("%w: region %d lists cell (%d,%d) twice", ErrMalformedPuzzle, gi, co.Row, co.Col)
			}
			seen[i] = true
			cells = append(cells, i)
		}
		b.groups = append(b.groups, cells)
	}

	return nil
}

// buildPeers derives the sorted per-cell peer lists from the groups.
func (b *Board) buildPeers() {
	n := b.side * b.side
	sets := make([]map[int]bool, n)
	for i := range sets {
		sets[i] = make(map[int]bool)
	}
	for _, grp := range b.groups {
		for _, i := range grp {
			for _, j := range grp {
				if i != j {
					sets[i][j] = true
				}
			}
		}
	}
	b.peers = make([][]int, n)
	for i, set := range sets {
		lst := make([]int, 0, len(set))
		// Collect in ascending order for deterministic propagation.
		for j := 0; j < n; j++ {
			if set[j] {
				lst = append(lst, j)
			}
		}
		b.peers[i] = lst
	}
}

// checkClues rejects puzzles whose fixed clues already violate a group.
func (b *Board) checkClues() error {
	for _, grp := range b.groups {
		seen := make(map[int]int, len(grp)) // value → first cell
		for _, i := range grp {
			v := b.values[i]
			if v == 0 {
				continue
			}
			if first, dup := seen[v]; dup {
				fr, fc := b.RowCol(first)
				r, c := b.RowCol(i)

				return fmt.Errorf("%w: clue %d at (%d,%d) duplicates (%d,%d)", ErrMalformedPuzzle, v, r, c, fr, fc)
			}
			seen[v] = i
		}
	}

	return nil
}
