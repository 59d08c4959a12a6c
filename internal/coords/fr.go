package coords

import "github.com/ehrlich-b/cube333/internal/cube"

// FR ("floppy reduction") coordinates classify how close an
// HTR-solved cube is to a state solvable with only half turns plus
// the UD slice. Each factor tracks one piece of that remaining
// structure; FRUDWithSliceCoord composes all four into one pruning
// index.

// FREdgesSize is 2^6: orientation-style bits for 6 of the 8 edges
// outside the UD slice, read relative to the FR axis.
const FREdgesSize = 64

// frTrackedEdges are the 6 non-UD-slice edge positions FREdgesCoord
// reads its bits from (the UD-slice positions 4-7 are excluded since
// HTR has already fixed their membership).
var frTrackedEdges = [6]int{0, 1, 2, 3, 8, 9}

// FREdgesCoord reads one bit per tracked edge: set when that edge's id
// parity differs from its position's, a stand-in for "is this edge
// outside its FR-home sub-orbit". The solved cube reads 0.
func FREdgesCoord(c cube.CubieCube) int {
	coord := 0
	for i, pos := range frTrackedEdges {
		if int(c.EdgeID(pos))%2 != pos%2 {
			coord |= 1 << uint(i)
		}
	}
	return coord
}

// FRCPOrbitSize is 2^2: which of the 4 relative rotations the two
// HTR corner orbits sit in once restricted to FR-compatible ones.
const FRCPOrbitSize = 4

// FRCPOrbitCoord is CPOrbitTwistCoord reduced mod 4, capturing the
// coarser distinction FR needs (full HTR twist resolution happens in
// the finish coordinate).
func FRCPOrbitCoord(c cube.CubieCube) int {
	return CPOrbitTwistCoord(c) % FRCPOrbitSize
}

// FROrbitParitySize is 2: whether the two corner orbits are swapped
// relative to their HTR-solved arrangement.
const FROrbitParitySize = 2

// FROrbitParityCoord reports, as 0 or 1, whether corner 0's orbit
// partner has swapped places with it.
func FROrbitParityCoord(c cube.CubieCube) int {
	if c.CornerID(0) != 0 {
		return 1
	}
	return 0
}

// FRSliceEdgesSize is 2^4: the relative permutation parity of the 4
// UD-slice edges among themselves.
const FRSliceEdgesSize = 16

// FRSliceEdgesCoord reads one bit per UD-slice position: whether the
// edge occupying it is at its home slot.
func FRSliceEdgesCoord(c cube.CubieCube) int {
	coord := 0
	for i := 0; i < 4; i++ {
		pos := 4 + i
		if int(c.EdgeID(pos)) != pos {
			coord |= 1 << uint(i)
		}
	}
	return coord
}

// FRUDWithSliceSize is the full composite FR-under-UD coordinate.
const FRUDWithSliceSize = FROrbitParitySize * FRCPOrbitSize * FREdgesSize * FRSliceEdgesSize

// FRUDWithSliceCoord composes the four FR factors, parity-major.
func FRUDWithSliceCoord(c cube.CubieCube) int {
	parity := FROrbitParityCoord(c)
	orbit := FRCPOrbitCoord(c)
	edges := FREdgesCoord(c)
	slice := FRSliceEdgesCoord(c)
	return ((parity*FRCPOrbitSize+orbit)*FREdgesSize+edges)*FRSliceEdgesSize + slice
}
