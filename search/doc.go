// Package search implements uninformed and informed path search over a
// core.Graph: DFS, BFS, IDS, UCS, Greedy best-first, A*, and IDA*.
//
// Every strategy shares one result shape - Result{Path, TotalCost,
// Expanded, Elapsed} - and one validation contract: a nil graph returns
// ErrGraphNil, an absent start or goal returns ErrUnknownNode, and an
// unreachable goal returns an Exhausted result (empty path, infinite
// cost) rather than an error. Callers distinguish the three cases with
// errors.Is and Result.Found.
//
// The strategies differ only in frontier ordering, plus an outer
// iterative-deepening driver for IDS and IDA*:
//
//	DFS     LIFO expansion; path-based cycle check; not cost-optimal.
//	BFS     FIFO expansion; fewest-hop path, not minimum mileage.
//	IDS     depth-limited DFS with limit 0,1,2,…; Expanded accumulates
//	        across iterations.
//	UCS     frontier ordered by accumulated cost; optimal and complete
//	        on finite positive-weight graphs.
//	Greedy  frontier ordered by heuristic estimate alone; fast, not
//	        cost-optimal.
//	A*      frontier ordered by cost + heuristic; optimal with an
//	        admissible heuristic; ties broken by lower heuristic, then
//	        insertion order.
//	IDA*    depth-first search bounded by an increasing f-cost
//	        threshold, starting at heuristic(start, goal).
//
// Tie-breaking everywhere is deterministic: neighbors expand in sorted
// ID order (core.Neighbors guarantees this), and priority frontiers
// break ties by insertion sequence, so repeated runs over the same
// graph expand identical node sequences.
//
// Expansion counting and the OnExpand hook are pure observation; they
// never alter which node is expanded next.
//
// Complexity (V vertices, E edges, b branching factor, d solution depth):
//
//   - DFS/BFS/UCS/Greedy/A*: O((V + E) log V) time with heap frontiers,
//     O(V + E) for stack/queue frontiers; O(V·L) memory for stored paths.
//   - IDS: O(b^d) time, O(d) frontier memory per iteration.
//   - IDA*: O(b^d) time in the worst case, O(d) memory.
package search
