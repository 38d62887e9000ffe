// Package metrics accumulates search and solver run records for
// strategy comparison: which algorithm expanded how many nodes and how
// fast on which query. The in-memory Collector is safe for concurrent
// use; Store adds optional SQLite persistence so comparisons survive
// restarts.
package metrics

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNoRuns is returned by Best when nothing has been recorded for the
// requested query yet.
var ErrNoRuns = errors.New("metrics: no runs recorded")

// Run is one recorded strategy execution.
type Run struct {
	// ID uniquely identifies the run.
	ID uuid.UUID

	// Label names the strategy ("ucs", "astar", "enhanced", ...).
	Label string

	// Start and Goal identify the query. For solver runs Goal is empty
	// and Start carries the puzzle digest or name.
	Start, Goal string

	// Cost is the total path cost, or 0 for solver runs.
	Cost float64

	// Expanded counts node expansions or solver calls.
	Expanded int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// At is the time the run was recorded, UTC.
	At time.Time
}

// Collector accumulates runs in memory. The zero value is not usable;
// construct with NewCollector. All methods are safe for concurrent use.
type Collector struct {
	mu   sync.RWMutex
	runs []Run
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record stamps the run with a fresh ID and timestamp and stores it.
// The stamped run is returned so callers can persist or log it.
func (c *Collector) Record(r Run) Run {
	r.ID = uuid.New()
	r.At = time.Now().UTC()

	c.mu.Lock()
	c.runs = append(c.runs, r)
	c.mu.Unlock()

	return r
}

// Runs returns a copy of every recorded run, in recording order.
func (c *Collector) Runs() []Run {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]Run(nil), c.runs...)
}

// ByLabel returns the recorded runs of one strategy, in recording order.
func (c *Collector) ByLabel(label string) []Run {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Run
	for _, r := range c.runs {
		if r.Label == label {
			out = append(out, r)
		}
	}

	return out
}

// Best returns the run with the fewest expansions among those matching
// the (start, goal) query, ties broken by shorter Elapsed. Returns
// ErrNoRuns when no matching run exists.
func (c *Collector) Best(start, goal string) (Run, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	matched := make([]Run, 0, len(c.runs))
	for _, r := range c.runs {
		if r.Start == start && r.Goal == goal {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return Run{}, ErrNoRuns
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Expanded != matched[j].Expanded {
			return matched[i].Expanded < matched[j].Expanded
		}

		return matched[i].Elapsed < matched[j].Elapsed
	})

	return matched[0], nil
}

// Len returns the number of recorded runs.
func (c *Collector) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.runs)
}
