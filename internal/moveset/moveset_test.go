package moveset

import (
	"testing"

	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/stretchr/testify/require"
)

func TestSameFaceNeverAllowed(t *testing.T) {
	table := BaseTransitions()
	for _, t1 := range cube.AllTurns() {
		for _, t2 := range cube.AllTurns() {
			if t1.Face == t2.Face {
				require.False(t, table[turnIndex(t1)][turnIndex(t2)], "%s should never follow %s", t2, t1)
			}
		}
	}
}

func TestOppositeFacePriorityOrder(t *testing.T) {
	table := BaseTransitions()
	u := cube.Turn{Face: cube.Up, Direction: cube.Clockwise}
	d := cube.Turn{Face: cube.Down, Direction: cube.Clockwise}

	require.True(t, table[turnIndex(d)][turnIndex(u)], "U should be allowed to follow D")
	require.False(t, table[turnIndex(u)][turnIndex(d)], "D should never be allowed to follow U")
}

func TestFirstMoveAlwaysAllowed(t *testing.T) {
	ms := New(cube.AllTurns(), nil)
	for _, t1 := range cube.AllTurns() {
		require.True(t, ms.Allowed(cube.Turn{}, t1, false))
	}
}
