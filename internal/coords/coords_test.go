package coords

import (
	"testing"

	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/stretchr/testify/require"
)

func TestSolvedCubeCoordsAreZero(t *testing.T) {
	solved := cube.Solved()

	require.Equal(t, 0, EOCoordUD(solved))
	require.Equal(t, 0, EOCoordFB(solved))
	require.Equal(t, 0, EOCoordLR(solved))
	require.Equal(t, 0, COUDCoord(solved))
	require.Equal(t, 0, UDSliceUnsortedCoord(solved))
	require.Equal(t, 0, DRUDEOFBCoord(solved))
	require.Equal(t, 0, FBSliceUnsortedCoord(solved))
	require.Equal(t, 0, CPOrbitUnsortedCoord(solved))
	require.Equal(t, 0, FRFinishCoord(solved))
}

func TestEOCoordInvariantUnderUDHalfTurns(t *testing.T) {
	solved := cube.Solved()
	scrambled := cube.ApplyAll(solved, mustParse(t, "R U R' U' R' F R2 U' R' U' R U R' F'"))

	before := EOCoordUD(scrambled)
	after := EOCoordUD(scrambled.Turn(cube.Turn{Face: cube.Up, Direction: cube.Half}))
	require.Equal(t, before, after, "U2 must preserve UD edge orientation")
}

func TestCoordsWithinDeclaredSize(t *testing.T) {
	solved := cube.Solved()
	scrambled := cube.ApplyAll(solved, mustParse(t, "R U2 D' B L2 F' U F2 R' D2"))

	require.GreaterOrEqual(t, EOCoordUD(scrambled), 0)
	require.Less(t, EOCoordUD(scrambled), EOSize)
	require.Less(t, COUDCoord(scrambled), COUDSize)
	require.Less(t, UDSliceUnsortedCoord(scrambled), UDSliceUnsortedSize)
	require.Less(t, DRUDEOFBCoord(scrambled), DRUDEOFBSize)
	require.Less(t, HTRDRUDCoord(scrambled), HTRDRUDSize)
	require.Less(t, FRUDWithSliceCoord(scrambled), FRUDWithSliceSize)
	require.Less(t, FRFinishCoord(scrambled), FRFinishSize)
	require.Less(t, HTRFinishCoord(scrambled), HTRFinishSize)
	require.Less(t, HTRLeaveSliceFinishCoord(scrambled), HTRLeaveSliceFinishSize)
}

func mustParse(t *testing.T, s string) []cube.Turn {
	t.Helper()
	turns, err := cube.ParseTurns(s)
	require.NoError(t, err)
	return turns
}
