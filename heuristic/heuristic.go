// Package heuristic provides straight-line distance estimators for
// informed search over a core.Graph.
//
// An estimator must be admissible (never overestimate the true remaining
// road distance) and consistent (obey the triangle inequality across
// edges) for A* and IDA* to return optimal paths. Both Haversine and
// Euclidean satisfy these properties when edge weights are road miles,
// since no road between two points is shorter than the straight line.
//
// Invariants for every Func:
//   - estimate(a, b) ≥ 0
//   - estimate(a, a) == 0
package heuristic

import (
	"math"

	"github.com/pathfind-labs/pathfind/core"
)

// earthRadiusMiles is the mean Earth radius, in statute miles.
const earthRadiusMiles = 3958.8

// Func estimates the remaining distance from a to b, in the same unit as
// the graph's edge weights (miles).
type Func func(a, b core.Node) float64

// Haversine returns the great-circle distance between two nodes' lat/lon
// coordinates in miles. This is the default estimator for road networks.
// Complexity: O(1).
func Haversine(a, b core.Node) float64 {
	if a.ID == b.ID {
		return 0
	}
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * earthRadiusMiles * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Euclidean treats coordinates as planar and returns the straight-line
// distance. Useful for synthetic graphs whose coordinates are not
// geographic. Complexity: O(1).
func Euclidean(a, b core.Node) float64 {
	dx := a.Lat - b.Lat
	dy := a.Lon - b.Lon

	return math.Hypot(dx, dy)
}

// Zero estimates every distance as 0. It is trivially admissible and
// turns A* into uniform-cost search; IDA* degenerates to cost-bounded
// iterative deepening.
func Zero(_, _ core.Node) float64 { return 0 }
