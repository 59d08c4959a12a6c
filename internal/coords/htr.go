package coords

import "github.com/ehrlich-b/cube333/internal/cube"

// FBSliceUnsortedSize is C(8,4): which 4 of the 8 non-UD-slice edge
// slots hold edges belonging to the "FB" sub-orbit once DR is solved.
const FBSliceUnsortedSize = 70

// fbOrbitEdge classifies a non-slice edge id into one of the two
// orbits HTR needs to track going from DR to HTR. ids 0,2,8,10 (UB,
// UF, DF, DB) form one orbit, 1,3,9,11 (UR, UL, DR, DL) the other.
func fbOrbitEdge(id byte) bool {
	switch id {
	case 0, 2, 8, 10:
		return true
	default:
		return false
	}
}

// FBSliceUnsortedCoord ranks, among the 8 non-UD-slice edge
// positions, which 4 hold an orbit-A edge. The positions are scanned
// even-indexed first, then odd-indexed, so the solved cube ranks 0.
func FBSliceUnsortedCoord(c cube.CubieCube) int {
	positions := make([]int, 0, 8)
	for i := 0; i < 12; i++ {
		if !isUDSliceEdge(c.EdgeID(i)) {
			positions = append(positions, i)
		}
	}
	return combinadicRank(len(positions), func(i int) bool {
		return fbOrbitEdge(c.EdgeID(positions[(2*i)%8+i/4]))
	}, 4)
}

// CPOrbitUnsortedSize is C(8,4): which 4 of the 8 corners belong to
// the even-parity orbit under DR's corner-orbit split.
const CPOrbitUnsortedSize = 70

// cornerOrbitA classifies a DR-solved corner id into one of its two
// fixed diagonal orbits: {UBL, UFR, DFL, DBR} vs the other four.
func cornerOrbitA(id byte) bool {
	switch id {
	case 0, 2, 4, 6:
		return true
	default:
		return false
	}
}

// CPOrbitUnsortedCoord ranks which 4 of the 8 corner slots hold an
// orbit-A corner, scanning slots 0,2,4,6 then 1,3,5,7 so the solved
// cube ranks 0.
func CPOrbitUnsortedCoord(c cube.CubieCube) int {
	return combinadicRank(8, func(i int) bool { return cornerOrbitA(c.CornerID((2*i)%8 + i/4)) }, 4)
}

// CPOrbitTwistSize is the number of relative cycle classes between
// the two 4-corner orbits once their slice membership is fixed.
const CPOrbitTwistSize = 6

// CPOrbitTwistCoord distinguishes the 3 possible rotations of each
// orbit relative to the other (mod the 2 that are swapped by a clean
// HTR half turn), folded into a 0-5 index.
func CPOrbitTwistCoord(c cube.CubieCube) int {
	orbitARotation := 0
	orbitBRotation := 0
	orbitAHome := [4]byte{0, 2, 4, 6}
	orbitBHome := [4]byte{1, 3, 5, 7}
	for slot, home := range orbitAHome {
		if c.CornerID(int(home)) != home {
			orbitARotation = (slot + 1) % 3
		}
	}
	for slot, home := range orbitBHome {
		if c.CornerID(int(home)) != home {
			orbitBRotation = (slot + 1) % 3
		}
	}
	return (orbitARotation*3 + orbitBRotation) % CPOrbitTwistSize
}

// HTRDRUDSize is the composite coordinate for reaching HTR from
// inside the DR(UD) subgroup.
const HTRDRUDSize = FBSliceUnsortedSize * CPOrbitUnsortedSize * CPOrbitTwistSize

// HTRDRUDCoord composes the three HTR factors, slice-major.
func HTRDRUDCoord(c cube.CubieCube) int {
	slice := FBSliceUnsortedCoord(c)
	orbit := CPOrbitUnsortedCoord(c)
	twist := CPOrbitTwistCoord(c)
	return (slice*CPOrbitUnsortedSize+orbit)*CPOrbitTwistSize + twist
}
