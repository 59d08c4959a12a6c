package coords

import "github.com/ehrlich-b/cube333/internal/cube"

// UDSliceUnsortedSize is C(12,4): which 4 of the 12 edge slots hold
// the UD-slice edges (ids 4-7: FR, FL, BR, BL), ignoring their
// relative order.
const UDSliceUnsortedSize = 495

func isUDSliceEdge(id byte) bool { return id >= 4 && id <= 7 }

// UDSliceUnsortedCoord ranks the positions of the UD-slice edges
// among the 12 edge slots, scanned starting from slot 4 so that the
// solved cube (slice edges in slots 4-7) ranks 0.
func UDSliceUnsortedCoord(c cube.CubieCube) int {
	return combinadicRank(12, func(i int) bool { return isUDSliceEdge(c.EdgeID((i + 4) % 12)) }, 4)
}

// DRUDEOFBSize is the DR-under-EOFB composite: the UD-relative corner
// orientation coordinate times the UD-slice coordinate.
const DRUDEOFBSize = UDSliceUnsortedSize * COUDSize

// DRUDEOFBCoord composes COUDCoord and UDSliceUnsortedCoord into a
// single index, CO-major: coord = co*495 + slice.
func DRUDEOFBCoord(c cube.CubieCube) int {
	return COUDCoord(c)*UDSliceUnsortedSize + UDSliceUnsortedCoord(c)
}
