package search

import (
	"context"
	"testing"

	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/step"
	"github.com/stretchr/testify/require"
)

func TestSearcherFindsSolvedCubeAtDepthZero(t *testing.T) {
	s := New(step.NewEO(cube.AxisY), Params{Min: 0, Max: 0, Niss: step.NissNever})
	out := s.Run(context.Background(), nil, cube.Solved())

	var algs []cube.Algorithm
	for alg := range out {
		algs = append(algs, alg)
	}
	require.Len(t, algs, 1)
	require.Equal(t, 0, algs[0].Len())
}

func TestSearcherSkipsUnreadyVariant(t *testing.T) {
	v := step.NewDR(cube.AxisY)
	moves, err := cube.ParseScramble("R U F")
	require.NoError(t, err)
	c := cube.ApplyAll(cube.Solved(), moves)
	require.False(t, v.IsReady(c))

	s := New(v, Params{Min: 0, Max: 3, Niss: step.NissNever})
	out := s.Run(context.Background(), nil, c)

	count := 0
	for range out {
		count++
	}
	require.Equal(t, 0, count, "an unready variant must emit no solutions")
}

func TestCancelTokenStopsSearch(t *testing.T) {
	token := &CancelToken{}
	token.Cancel()
	require.True(t, token.Cancelled())

	s := New(step.NewEO(cube.AxisY), Params{Min: 0, Max: 10, Niss: step.NissNever})
	out := s.Run(context.Background(), token, cube.Solved())

	count := 0
	for range out {
		count++
	}
	require.Equal(t, 0, count, "a pre-cancelled token must stop the search before any emission")
}
