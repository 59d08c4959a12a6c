package step

import (
	"testing"

	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/stretchr/testify/require"
)

func TestEOReadyAndHeuristicOnSolved(t *testing.T) {
	v := NewEO(cube.AxisY)
	require.True(t, v.IsReady(cube.Solved()))
	require.Equal(t, 0, v.Heuristic(cube.Solved(), false))
}

func TestDRRequiresEOFirst(t *testing.T) {
	v := NewDR(cube.AxisY)
	require.True(t, v.IsReady(cube.Solved()), "a solved cube is EO-ready on every axis")

	scrambled, err := cube.ParseScramble("R U F")
	require.NoError(t, err)
	c := cube.ApplyAll(cube.Solved(), scrambled)
	require.False(t, v.IsReady(c), "R U F leaves the cube EO-unsolved on the FB axis, which DR on UD requires")
}

func TestWithAdmissibleChaining(t *testing.T) {
	calls := 0
	always := WithAdmissible(func(cube.CubieCube, cube.Algorithm) bool {
		calls++
		return true
	})
	never := WithAdmissible(func(cube.CubieCube, cube.Algorithm) bool {
		calls++
		return false
	})
	v := NewDR(cube.AxisY, always, never)
	require.False(t, v.IsSolutionAdmissible(cube.Solved(), cube.Algorithm{}))
	require.Equal(t, 2, calls, "every admissibility predicate runs even once one has already failed is not required, but both must be reachable")
}

func TestParseNissMode(t *testing.T) {
	cases := map[string]NissMode{
		"":       NissNever,
		"never":  NissNever,
		"before": NissBefore,
		"always": NissAlways,
	}
	for in, want := range cases {
		got, ok := ParseNissMode(in)
		require.True(t, ok, in)
		require.Equal(t, want, got, in)
	}
	_, ok := ParseNissMode("sometimes")
	require.False(t, ok)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig("dr:min=2:max=12:niss=always:substeps=ud|fb")
	require.NoError(t, err)
	require.Equal(t, "dr", cfg.Kind)
	require.Equal(t, 2, cfg.Min)
	require.Equal(t, 12, cfg.Max)
	require.Equal(t, NissAlways, cfg.Niss)
	require.Equal(t, []string{"ud", "fb"}, cfg.Substeps)
}

func TestParseConfigsSplitsOnSemicolon(t *testing.T) {
	configs, err := ParseConfigs("eo:max=5;dr:max=12")
	require.NoError(t, err)
	require.Len(t, configs, 2)
	require.Equal(t, "eo", configs[0].Kind)
	require.Equal(t, "dr", configs[1].Kind)
}

func TestWithSubsetFilterRejectsUnlistedName(t *testing.T) {
	require.False(t, matchesSubsets(cube.Solved(), []string{"not-a-real-subset"}))
}
