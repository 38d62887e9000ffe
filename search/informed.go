// Package search: informed strategies - Greedy best-first and A*.
package search

import "github.com/pathfind-labs/pathfind/core"

// Greedy runs greedy best-first search from start to goal: the frontier
// is ordered by the heuristic estimate alone, ignoring accumulated cost.
// Fast in practice, but the returned path is not cost-optimal.
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Greedy(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	return runBestFirst(g, start, goal, opts, func(w *walker) {
		w.fr = newHeapFrontier(byEstimate)
		w.closed = make(map[string]bool, g.NodeCount())
		w.informed = true
	})
}

// AStar runs A* search from start to goal: the frontier is ordered by
// f = accumulated cost + heuristic estimate, ties broken by lower
// estimate and then insertion order. With an admissible, consistent
// heuristic (the default Haversine is both for road miles) the returned
// path is minimum-mileage, matching UCS.
// Complexity: O((V + E) log V) time, O(V + E) memory.
func AStar(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	return runBestFirst(g, start, goal, opts, func(w *walker) {
		w.fr = newHeapFrontier(byF)
		w.closed = make(map[string]bool, g.NodeCount())
		w.informed = true
	})
}
