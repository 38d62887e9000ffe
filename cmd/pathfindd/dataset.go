package main

import (
	"fmt"

	"github.com/pathfind-labs/pathfind/core"
)

// The built-in upstate New York road network. Coordinates are city
// centers; edge weights are road miles, always at least the
// straight-line distance.
var (
	cities = []core.Node{
		{ID: "Albany", Lat: 42.6526, Lon: -73.7562},
		{ID: "Binghamton", Lat: 42.0987, Lon: -75.9180},
		{ID: "Buffalo", Lat: 42.8864, Lon: -78.8784},
		{ID: "Ithaca", Lat: 42.4440, Lon: -76.5019},
		{ID: "New York City", Lat: 40.7128, Lon: -74.0060},
		{ID: "Rochester", Lat: 43.1566, Lon: -77.6088},
		{ID: "Syracuse", Lat: 43.0481, Lon: -76.1474},
		{ID: "Utica", Lat: 43.1009, Lon: -75.2327},
		{ID: "Watertown", Lat: 43.9748, Lon: -75.9108},
	}

	roads = []struct {
		a, b  string
		miles float64
	}{
		{"Rochester", "Buffalo", 74},
		{"Rochester", "Syracuse", 87},
		{"Rochester", "Ithaca", 90},
		{"Syracuse", "Utica", 53},
		{"Syracuse", "Ithaca", 57},
		{"Syracuse", "Watertown", 72},
		{"Syracuse", "Binghamton", 73},
		{"Ithaca", "Binghamton", 49},
		{"Binghamton", "Albany", 142},
		{"Utica", "Albany", 95},
		{"Albany", "New York City", 150},
	}
)

// buildDataset assembles the embedded road network.
func buildDataset() (*core.Graph, error) {
	g := core.NewGraph()
	for _, c := range cities {
		if err := g.AddNode(c.ID, c.Lat, c.Lon); err != nil {
			return nil, fmt.Errorf("dataset node %s: %w", c.ID, err)
		}
	}
	for _, r := range roads {
		if err := g.AddEdge(r.a, r.b, r.miles); err != nil {
			return nil, fmt.Errorf("dataset edge %s-%s: %w", r.a, r.b, err)
		}
	}

	return g, nil
}
