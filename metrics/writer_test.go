package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Run("writing run records as csv", func(t *testing.T) {
		w, err := NewWriter(t.TempDir())
		require.NoError(t, err)

		records := []RunRecord{
			{
				Scramble:     10,
				Heuristic:    "minmoves",
				InitialState: 123456078,
				SearchMetric: SearchMetric{
					MaxLevel:        -1,
					Duration:        3 * time.Millisecond,
					DevelopedStates: 42,
					PeakFrontier:    17,
					Solved:          true,
					SolutionLevel:   2,
				},
			},
			{
				Scramble:     20,
				Heuristic:    "missplaced",
				InitialState: 12345678,
				SearchMetric: SearchMetric{MaxLevel: 5},
			},
		}
		require.NoError(t, w.WriteRunRecords(records))

		f, err := os.Open(filepath.Join(w.BaseDir(), "run_records.csv"))
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3, "One header row plus one row per record")
		require.Equal(t,
			[]string{"scramble", "heuristic", "initial_state", "max_level",
				"duration", "developed_states", "peak_frontier", "solved", "solution_level"},
			rows[0])
		require.Equal(t,
			[]string{"10", "minmoves", "123456078", "-1", "3ms", "42", "17", "true", "2"},
			rows[1])
		require.Equal(t, "012345678", rows[2][2],
			"Compact states should keep their leading zero in the csv")
	})
}
