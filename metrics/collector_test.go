package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("aggregating a run", func(t *testing.T) {
		c := NewCollector()
		c.Start(-1)
		c.AddDeveloped()
		c.AddDeveloped()
		c.ObserveFrontier(3)
		c.ObserveFrontier(7)
		c.ObserveFrontier(5)
		c.SetSolved(4)

		metric := c.Complete()

		require.Equal(t, -1, metric.MaxLevel)
		require.Equal(t, 2, metric.DevelopedStates)
		require.Equal(t, 7, metric.PeakFrontier, "Peak frontier should track the maximum observed size")
		require.True(t, metric.Solved)
		require.Equal(t, 4, metric.SolutionLevel)
		require.GreaterOrEqual(t, metric.Duration.Nanoseconds(), int64(0))
	})

	t.Run("restarting resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(10)
		c.AddDeveloped()
		c.SetSolved(2)

		c.Start(10)

		metric := c.Complete()
		require.Equal(t, 0, metric.DevelopedStates)
		require.False(t, metric.Solved)
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(5)
		c.AddDeveloped()
		c.ObserveFrontier(9)
		c.SetSolved(1)

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
