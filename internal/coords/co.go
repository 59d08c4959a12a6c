package coords

import "github.com/ehrlich-b/cube333/internal/cube"

// COUDSize is 3^7: the first 7 corners' UD-relative orientation
// digit, the 8th being determined by the invariant that the total
// sum is 0 mod 3.
const COUDSize = 2187

// COUDCoord reads the first 7 corners' orientation as base-3 digits,
// least significant first: Σ o_i · 3^i.
func COUDCoord(c cube.CubieCube) int {
	coord := 0
	pow := 1
	for i := 0; i < 7; i++ {
		coord += int(c.CornerOrientation(i)) * pow
		pow *= 3
	}
	return coord
}
