// Package csp implements two interchangeable solving strategies over a
// sudoku.Board: plain backtracking and constraint-propagation-enhanced
// backtracking.
//
// # Backtracking
//
// Plain depth-first assignment in row-major cell order: at each empty
// cell try every domain value ascending, check immediate consistency
// against already-assigned peers, recurse, and undo on failure. Nothing
// is pruned; the domains stay as loaded.
//
// # Enhanced
//
// Adds three techniques on top of the same skeleton:
//
//  1. Forward checking - after each assignment the value is removed
//     from the domains of all empty peer cells, with every removal
//     pushed onto an undo trail. An emptied domain (wipeout) fails the
//     branch immediately, before any recursion.
//  2. Arc consistency (AC-3) - a propagation pass run once before the
//     search and after every assignment, pruning any candidate that has
//     no supporting value in a peer's domain.
//  3. Ordering heuristics - most-constrained-variable (smallest domain,
//     ties by lowest cell index) and least-constraining-value (fewest
//     candidate eliminations among peers, ties by ascending value).
//     Both are fixed and deterministic, so repeated runs explore the
//     identical assignment tree.
//
// Both strategies report Unsolvable as a normal result, never an error:
// Result.Solved distinguishes the outcomes, and both agree on
// solvability for any well-formed puzzle. Undo is symmetric - domain
// removals are logged as (cell, value) pairs and popped on backtrack -
// so an invariant holds throughout: no search step continues while an
// unassigned cell's domain is empty.
//
// Complexity: exponential in the number of empty cells in the worst
// case; WithMaxCalls bounds pathological inputs.
package csp
