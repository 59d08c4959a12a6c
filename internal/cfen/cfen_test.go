package cfen

import (
	"testing"

	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/stretchr/testify/require"
)

func TestParseSolvedCFEN(t *testing.T) {
	s, err := Parse("WG|W9/R9/G9/Y9/O9/B9")
	require.NoError(t, err)
	require.Equal(t, NativeOrientation, s.Orientation)
	require.Equal(t, cube.White, s.Faces[0].Stickers[0])
	require.Equal(t, cube.Blue, s.Faces[5].Stickers[8])
}

func TestParseRejectsBadOrientation(t *testing.T) {
	_, err := Parse("XY|W9/R9/G9/Y9/O9/B9")
	require.Error(t, err)
}

func TestSolvedCFENRoundTripsThroughCubieCube(t *testing.T) {
	s, err := Parse("WG|W9/R9/G9/Y9/O9/B9")
	require.NoError(t, err)
	c, err := s.ToCubieCube()
	require.NoError(t, err)
	require.True(t, c.IsSolved())
	require.Equal(t, cube.Solved(), c)
}

func TestGenerateCFENOnSolvedCube(t *testing.T) {
	got := GenerateCFEN(cube.Solved())
	want, err := Parse("WG|W9/R9/G9/Y9/O9/B9")
	require.NoError(t, err)
	require.Equal(t, want.String(), got)
}

func TestFromCubieCubeRoundTripsAfterScramble(t *testing.T) {
	moves, err := cube.ParseScramble("R U R' U'")
	require.NoError(t, err)
	c := cube.ApplyAll(cube.Solved(), moves)

	s := FromCubieCube(c)
	back, err := s.ToCubieCube()
	require.NoError(t, err)
	require.Equal(t, c, back)
}

func TestWildcardMatches(t *testing.T) {
	pattern, err := Parse("WG|?9/R9/G9/Y9/O9/B9")
	require.NoError(t, err)
	require.True(t, pattern.Matches(cube.Solved()))

	moves, err := cube.ParseScramble("R U R' U'")
	require.NoError(t, err)
	scrambled := cube.ApplyAll(cube.Solved(), moves)
	require.False(t, pattern.Matches(scrambled))
}
