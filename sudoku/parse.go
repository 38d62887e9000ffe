// Package sudoku: textual puzzle parsing for standard variants.
package sudoku

import (
	"fmt"
	"strings"
)

// Parse builds a Board from a textual grid: one line per row, one rune
// per cell, where '1'-'9' are clues and '0' or '.' mark empty cells.
// Blank lines and surrounding whitespace are ignored. The grid must be
// square; options apply as in New.
//
// Returns ErrMalformedPuzzle for non-square input or anything New
// rejects. Only sides up to 9 are representable in this format; larger
// or custom variants construct boards via New directly.
func Parse(text string, opts ...Option) (*Board, error) {
	var rows [][]int
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for _, ch := range line {
			switch {
			case ch == '.' || ch == '0':
				row = append(row, 0)
			case ch >= '1' && ch <= '9':
				row = append(row, int(ch-'0'))
			case ch == ' ' || ch == '\t':
				// column spacing, ignore
			default:
				return nil, fmt.Errorf("%w: unexpected character %q", ErrMalformedPuzzle, ch)
			}
		}
		rows = append(rows, row)
	}

	return New(rows, opts...)
}
