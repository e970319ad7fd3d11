package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestScramble(t *testing.T) {
	goal := 123456780

	t.Run("zero moves returns the goal", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		require.Equal(t, goal, Scramble(goal, 0, rng))
	})

	t.Run("scrambled states are valid and reachable", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		for depth := 1; depth <= 30; depth++ {
			state := Scramble(goal, depth, rng)
			require.NoError(t, Validate(state), "Scramble should only produce valid boards")
			require.True(t, Solvable(state, goal), "Scramble should stay in the goal's parity class")
		}
	})

	t.Run("one move leaves the goal", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		require.NotEqual(t, goal, Scramble(goal, 1, rng),
			"The walk never undoes its previous step, so one move cannot return to the goal")
	})

	t.Run("same seed, same walk", func(t *testing.T) {
		first := Scramble(goal, 20, rand.New(rand.NewSource(7)))
		second := Scramble(goal, 20, rand.New(rand.NewSource(7)))

		require.Equal(t, first, second, "Scrambling should be reproducible from the seed")
	})
}
