package pruning

import (
	"bytes"
	"testing"

	"github.com/ehrlich-b/cube333/internal/coords"
	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/moveset"
	"github.com/stretchr/testify/require"
)

func eoMoveSet() moveset.MoveSet {
	return moveset.New(cube.AllTurns(), nil)
}

func TestBuildSolvedIsZero(t *testing.T) {
	ms := eoMoveSet()
	table := Build(coords.EOSize, coords.EOCoordUD, cube.Solved(), ms)
	require.Equal(t, 0, table.Get(coords.EOCoordUD(cube.Solved())))
}

func TestBuildSingleMoveIsDistanceOne(t *testing.T) {
	ms := eoMoveSet()
	table := Build(coords.EOSize, coords.EOCoordUD, cube.Solved(), ms)

	afterF := cube.Solved().Turn(cube.Turn{Face: cube.Front, Direction: cube.Clockwise})
	d := table.Get(coords.EOCoordUD(afterF))
	require.GreaterOrEqual(t, d, 0)
	require.LessOrEqual(t, d, 1)
}

func TestBuildCoordZeroIsReachable(t *testing.T) {
	ms := eoMoveSet()
	table := Build(coords.EOSize, coords.EOCoordUD, cube.Solved(), ms)
	require.NotEqual(t, -1, table.Get(0))
}

func TestTableSaveLoadRoundTrip(t *testing.T) {
	ms := eoMoveSet()
	table := Build(coords.EOSize, coords.EOCoordUD, cube.Solved(), ms)

	var buf bytes.Buffer
	require.NoError(t, table.Save(&buf))

	loaded, err := LoadTable(&buf)
	require.NoError(t, err)
	require.Equal(t, table.Size, loaded.Size)
	require.Equal(t, table.Bits, loaded.Bits)
	require.Equal(t, table.Get(0), loaded.Get(0))
}

func TestNissTableNormalDistanceMatchesPlainTable(t *testing.T) {
	ms := eoMoveSet()
	plain := Build(coords.EOSize, coords.EOCoordUD, cube.Solved(), ms)
	niss := BuildNISS(coords.EOSize, coords.EOCoordUD, cube.Solved(), ms)

	lo, hi := niss.Get(0)
	require.Equal(t, plain.Get(0), lo)
	require.GreaterOrEqual(t, hi, 0)
}

func TestNissTableSaveLoadRoundTrip(t *testing.T) {
	ms := eoMoveSet()
	niss := BuildNISS(coords.EOSize, coords.EOCoordUD, cube.Solved(), ms)

	var buf bytes.Buffer
	require.NoError(t, niss.Save(&buf))

	loaded, err := LoadNissTable(&buf)
	require.NoError(t, err)
	lo1, hi1 := niss.Get(5)
	lo2, hi2 := loaded.Get(5)
	require.Equal(t, lo1, lo2)
	require.Equal(t, hi1, hi2)
}
