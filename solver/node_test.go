package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenSet(t *testing.T) {
	t.Run("popping in score order", func(t *testing.T) {
		s := newOpenSet()
		s.push(&Node{State: 1, Score: 5})
		s.push(&Node{State: 2, Score: 1})
		s.push(&Node{State: 3, Score: 3})

		require.Equal(t, 2, s.pop().State, "Lowest score should pop first")
		require.Equal(t, 3, s.pop().State)
		require.Equal(t, 1, s.pop().State)
		require.Equal(t, 0, s.len())
	})

	t.Run("breaking score ties by insertion order", func(t *testing.T) {
		s := newOpenSet()
		s.push(&Node{State: 1, Score: 2})
		s.push(&Node{State: 2, Score: 2})
		s.push(&Node{State: 3, Score: 2})

		require.Equal(t, 1, s.pop().State, "Equal scores should drain first-in first-out")
		require.Equal(t, 2, s.pop().State)
		require.Equal(t, 3, s.pop().State)
	})

	t.Run("tolerating duplicate states", func(t *testing.T) {
		s := newOpenSet()
		s.push(&Node{State: 42, Score: 1})
		s.push(&Node{State: 42, Score: 2})

		require.Equal(t, 2, s.len(), "The frontier does not deduplicate on insert")
	})

	t.Run("listing queued nodes", func(t *testing.T) {
		s := newOpenSet()
		s.push(&Node{State: 1, Score: 1})
		s.push(&Node{State: 2, Score: 2})

		nodes := s.nodes()
		states := []int{nodes[0].State, nodes[1].State}
		require.ElementsMatch(t, []int{1, 2}, states)
	})
}
