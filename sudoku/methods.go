// Package sudoku: Board accessors and the mutation surface used by the
// solvers - assignment, candidate elimination, and consistency checks.
package sudoku

import (
	"math/bits"
	"strings"
)

// Side returns the grid dimension N.
func (b *Board) Side() int { return b.side }

// BoxDim returns the box dimension (√N), or 0 for box-free variants.
func (b *Board) BoxDim() int { return b.box }

// CellCount returns the number of cells, N².
func (b *Board) CellCount() int { return b.side * b.side }

// CellAt converts (row, col) to a row-major cell index.
func (b *Board) CellAt(row, col int) int { return row*b.side + col }

// RowCol converts a row-major cell index back to (row, col).
func (b *Board) RowCol(cell int) (row, col int) { return cell / b.side, cell % b.side }

// inRange reports whether cell is a valid index.
func (b *Board) inRange(cell int) bool { return cell >= 0 && cell < b.side*b.side }

// Value returns the assigned value of cell, 0 when empty.
func (b *Board) Value(cell int) int { return b.values[cell] }

// Fixed reports whether cell holds an original clue.
func (b *Board) Fixed(cell int) bool { return b.fixed[cell] }

// Groups exposes the constraint groups. Read-only: callers must not
// mutate the returned slices.
func (b *Board) Groups() [][]int { return b.groups }

// Peers returns the cells sharing at least one group with cell, in
// ascending order. Read-only.
func (b *Board) Peers(cell int) []int { return b.peers[cell] }

// Domain returns the currently legal candidate values of cell in
// ascending order.
func (b *Board) Domain(cell int) []int {
	out := make([]int, 0, bits.OnesCount64(b.domains[cell]))
	for v := 1; v <= b.side; v++ {
		if b.domains[cell]&(1<<uint(v)) != 0 {
			out = append(out, v)
		}
	}

	return out
}

// DomainSize returns the number of legal candidates of cell.
func (b *Board) DomainSize(cell int) int { return bits.OnesCount64(b.domains[cell]) }

// HasCandidate reports whether v is currently legal for cell.
func (b *Board) HasCandidate(cell, v int) bool {
	return v >= 1 && v <= b.side && b.domains[cell]&(1<<uint(v)) != 0
}

// Assign sets cell to v. Domain pruning is the caller's concern: the
// solvers log their own removals for symmetric undo on backtrack.
// Returns ErrCellOutOfRange or ErrValueOutOfRange on invalid input.
func (b *Board) Assign(cell, v int) error {
	if !b.inRange(cell) {
		return ErrCellOutOfRange
	}
	if v < 1 || v > b.side {
		return ErrValueOutOfRange
	}
	b.values[cell] = v

	return nil
}

// Unassign clears cell back to empty.
func (b *Board) Unassign(cell int) { b.values[cell] = 0 }

// Eliminate removes candidate v from cell's domain, reporting whether
// anything was removed. Callers record true results for later Restore.
func (b *Board) Eliminate(cell, v int) bool {
	bit := uint64(1) << uint(v)
	if b.domains[cell]&bit == 0 {
		return false
	}
	b.domains[cell] &^= bit

	return true
}

// Restore re-adds candidate v to cell's domain (undo of Eliminate).
func (b *Board) Restore(cell, v int) { b.domains[cell] |= 1 << uint(v) }

// IsConsistent reports whether assigning v to cell would clash with an
// already-assigned peer in any shared constraint group.
func (b *Board) IsConsistent(cell, v int) bool {
	for _, p := range b.peers[cell] {
		if b.values[p] == v {
			return false
		}
	}

	return true
}

// IsComplete reports whether every cell holds exactly one value and all
// constraint groups are all-distinct.
func (b *Board) IsComplete() bool {
	for _, v := range b.values {
		if v == 0 {
			return false
		}
	}
	for _, grp := range b.groups {
		var seen uint64
		for _, i := range grp {
			bit := uint64(1) << uint(b.values[i])
			if seen&bit != 0 {
				return false
			}
			seen |= bit
		}
	}

	return true
}

// FirstEmpty returns the lowest row-major empty cell, ok=false when the
// board is full.
func (b *Board) FirstEmpty() (cell int, ok bool) {
	for i, v := range b.values {
		if v == 0 {
			return i, true
		}
	}

	return 0, false
}

// EmptyCells returns all empty cells in row-major order.
func (b *Board) EmptyCells() []int {
	var out []int
	for i, v := range b.values {
		if v == 0 {
			out = append(out, i)
		}
	}

	return out
}

// Grid returns a copy of the current values as a 2D slice.
func (b *Board) Grid() [][]int {
	out := make([][]int, b.side)
	for r := 0; r < b.side; r++ {
		out[r] = make([]int, b.side)
		copy(out[r], b.values[r*b.side:(r+1)*b.side])
	}

	return out
}

// Clone returns a deep copy of the Board. Groups and peers are immutable
// after construction and therefore shared.
func (b *Board) Clone() *Board {
	c := &Board{
		side:    b.side,
		box:     b.box,
		values:  append([]int(nil), b.values...),
		fixed:   append([]bool(nil), b.fixed...),
		domains: append([]uint64(nil), b.domains...),
		groups:  b.groups,
		peers:   b.peers,
	}

	return c
}

// String renders the grid with '.' for empty cells and box separators
// for boxed variants.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.side; r++ {
		if b.box > 0 && r > 0 && r%b.box == 0 {
			sb.WriteString(strings.Repeat("-", 2*b.side+2*(b.box-1)-1))
			sb.WriteByte('\n')
		}
		for c := 0; c < b.side; c++ {
			if b.box > 0 && c > 0 && c%b.box == 0 {
				sb.WriteString("| ")
			}
			v := b.values[r*b.side+c]
			if v == 0 {
				sb.WriteByte('.')
			} else if v < 10 {
				sb.WriteByte(byte('0' + v))
			} else {
				sb.WriteString(string(rune('A' + v - 10)))
			}
			if c < b.side-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
