// Package pathfind is an in-memory toolkit for comparing search
// strategies over weighted city graphs, plus a constraint-satisfaction
// Sudoku solver suite.
//
// 🚀 What is pathfind?
//
//	A thread-safe library that brings together:
//		• Core primitives: an undirected road network with miles-weighted edges
//		• Uninformed search: DFS, BFS, Iterative Deepening, Uniform-Cost
//		• Informed search: Greedy Best-First, A*, IDA* with pluggable heuristics
//		• Heuristics: great-circle (haversine) and Euclidean distance estimates
//		• CSP solving: plain backtracking and propagation-enhanced backtracking
//		  (forward checking, AC-3, MRV/LCV) over Sudoku-like boards
//		• Metrics: run recording with optional SQLite persistence
//
// ✨ Why choose pathfind?
//
//   - Every strategy reports the same Result shape, so comparisons are direct
//   - Deterministic tie-breaking: identical inputs explore identical trees
//   - Exhaustion and unsolvability are results, never errors
//   - Extensible: custom heuristics, custom board regions, expansion hooks
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/      — the Graph, Node and Arc types & thread-safe primitives
//	heuristic/ — distance estimate functions for informed search
//	search/    — the seven search strategies over a core.Graph
//	sudoku/    — the constraint board model, parsing & rendering
//	csp/       — the two solving strategies over a sudoku.Board
//	metrics/   — run collection & SQLite persistence
//
// The cmd/pathfindd command serves the comparison API over HTTP.
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddNode("Rochester", 43.1566, -77.6088)
//	_ = g.AddNode("Albany", 42.6526, -73.7562)
//	_ = g.AddEdge("Rochester", "Albany", 226)
//
//	res, err := search.AStar(g, "Rochester", "Albany")
//	if err != nil { ... }
//	if res.Found() {
//		fmt.Println(res.Path, res.TotalCost)
//	}
//
//	go get github.com/pathfind-labs/pathfind
package pathfind
