package metrics_test

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathfind-labs/pathfind/metrics"
)

func TestCollector_RecordStamps(t *testing.T) {
	c := metrics.NewCollector()

	r := c.Record(metrics.Run{Label: "ucs", Start: "Rochester", Goal: "Albany", Cost: 235, Expanded: 7})
	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.False(t, r.At.IsZero())
	assert.Equal(t, 1, c.Len())
}

func TestCollector_Best(t *testing.T) {
	c := metrics.NewCollector()
	c.Record(metrics.Run{Label: "ucs", Start: "A", Goal: "B", Expanded: 12, Elapsed: time.Millisecond})
	c.Record(metrics.Run{Label: "astar", Start: "A", Goal: "B", Expanded: 5, Elapsed: 2 * time.Millisecond})
	c.Record(metrics.Run{Label: "bfs", Start: "A", Goal: "C", Expanded: 2})

	best, err := c.Best("A", "B")
	require.NoError(t, err)
	assert.Equal(t, "astar", best.Label)

	_, err = c.Best("X", "Y")
	assert.ErrorIs(t, err, metrics.ErrNoRuns)
}

func TestCollector_BestTieOnElapsed(t *testing.T) {
	c := metrics.NewCollector()
	c.Record(metrics.Run{Label: "slow", Start: "A", Goal: "B", Expanded: 5, Elapsed: 9 * time.Millisecond})
	c.Record(metrics.Run{Label: "fast", Start: "A", Goal: "B", Expanded: 5, Elapsed: time.Millisecond})

	best, err := c.Best("A", "B")
	require.NoError(t, err)
	assert.Equal(t, "fast", best.Label)
}

func TestCollector_ByLabel(t *testing.T) {
	c := metrics.NewCollector()
	c.Record(metrics.Run{Label: "ucs", Start: "A", Goal: "B"})
	c.Record(metrics.Run{Label: "astar", Start: "A", Goal: "B"})
	c.Record(metrics.Run{Label: "ucs", Start: "A", Goal: "C"})

	assert.Len(t, c.ByLabel("ucs"), 2)
	assert.Empty(t, c.ByLabel("ids"))
}

func TestCollector_RunsIsACopy(t *testing.T) {
	c := metrics.NewCollector()
	c.Record(metrics.Run{Label: "ucs"})

	got := c.Runs()
	got[0].Label = "mutated"
	assert.Equal(t, "ucs", c.Runs()[0].Label)
}

func TestCollector_ConcurrentRecord(t *testing.T) {
	c := metrics.NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				c.Record(metrics.Run{Label: "ucs", Start: "A", Goal: "B"})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, c.Len())
}

func TestStore_SaveAndQuery(t *testing.T) {
	st, err := metrics.Open(":memory:")
	require.NoError(t, err)
	defer st.Close()

	c := metrics.NewCollector()
	first := c.Record(metrics.Run{Label: "ucs", Start: "Rochester", Goal: "Albany", Cost: 235, Expanded: 7, Elapsed: time.Millisecond})
	second := c.Record(metrics.Run{Label: "astar", Start: "Rochester", Goal: "Albany", Cost: 235, Expanded: 4, Elapsed: time.Millisecond})
	require.NoError(t, st.Save(first))
	require.NoError(t, st.Save(second))

	got, err := st.ForQuery("Rochester", "Albany")
	require.NoError(t, err)
	require.Len(t, got, 2)
	labels := []string{got[0].Label, got[1].Label}
	assert.ElementsMatch(t, []string{"ucs", "astar"}, labels)
	for _, r := range got {
		assert.Equal(t, 235.0, r.Cost)
		assert.Equal(t, time.Millisecond, r.Elapsed)
	}

	recent, err := st.Recent(1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
}

func TestStore_DuplicateIDRejected(t *testing.T) {
	st, err := metrics.Open(":memory:")
	require.NoError(t, err)
	defer st.Close()

	r := metrics.NewCollector().Record(metrics.Run{Label: "ucs"})
	require.NoError(t, st.Save(r))
	assert.Error(t, st.Save(r))
}
