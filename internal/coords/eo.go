package coords

import "github.com/ehrlich-b/cube333/internal/cube"

// EOSize is the size of each axis edge-orientation coordinate: the
// first 11 edges' orientation bit, the 12th being determined by the
// invariant that every EO axis sums to 0 mod 2.
const EOSize = 2048

// EOCoordUD reads the UD-axis orientation bit of the first 11 edges
// into an 11-bit integer, bit i set meaning edge position i is
// mis-oriented relative to UD.
func EOCoordUD(c cube.CubieCube) int {
	return eoCoord(c, cube.CubieCube.EdgeOrientedUD)
}

// EOCoordFB is EOCoordUD's analog for the FB axis.
func EOCoordFB(c cube.CubieCube) int {
	return eoCoord(c, cube.CubieCube.EdgeOrientedFB)
}

// EOCoordLR is EOCoordUD's analog for the LR axis.
func EOCoordLR(c cube.CubieCube) int {
	return eoCoord(c, cube.CubieCube.EdgeOrientedRL)
}

func eoCoord(c cube.CubieCube, oriented func(cube.CubieCube, int) bool) int {
	coord := 0
	for i := 0; i < 11; i++ {
		if !oriented(c, i) {
			coord |= 1 << uint(i)
		}
	}
	return coord
}
