package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("solving every scramble with every heuristic", func(t *testing.T) {
		config := DefaultConfig()
		config.Scrambles = 2
		config.Depths = []int{4, 8}
		config.Heuristics = []string{"minmoves", "missplaced"}
		config.ResultsDir = t.TempDir()

		require.NoError(t, Run(config))

		runDirs, err := os.ReadDir(config.ResultsDir)
		require.NoError(t, err)
		require.Len(t, runDirs, 1, "Run should create one timestamped directory")

		f, err := os.Open(filepath.Join(config.ResultsDir, runDirs[0].Name(), "run_records.csv"))
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 1+2*2*2,
			"One header plus one record per depth, scramble and heuristic")
	})

	t.Run("rejecting an invalid goal", func(t *testing.T) {
		config := DefaultConfig()
		config.Goal = 111111111
		config.ResultsDir = t.TempDir()

		require.Error(t, Run(config))
	})
}
