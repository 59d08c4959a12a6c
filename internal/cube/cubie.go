package cube

// CUBIE-LEVEL STATE
//
// CubieCube is the bit-packed cubie-level representation: one byte per
// corner and one byte per edge, holding identity and orientation
// together so a move is a byte shuffle plus a small fixup instead of a
// sticker-array rewrite.
//
// Corner byte layout (bits 7-5 = id 0-7, bits 4-3 unused, bits 2-0 =
// orientation, 0/1/2, relative to the UD axis):
//
//	UBL UBR UFR UFL DFL DFR DBR DBL
//	 0   1   2   3   4   5   6   7
//
// Edge byte layout (bits 7-4 = id 0-11, bit 3 = UD orientation, bit 2 =
// FB orientation, bit 1 = RL orientation, bit 0 unused):
//
//	UB UR UF UL FR FL BR BL DF DR DB DL
//	0  1  2  3  4  5  6  7  8  9  10 11
type CubieCube struct {
	Corners [8]byte
	Edges   [12]byte
}

const (
	cornerIDShift = 5
	cornerCOMask  = 0b00000111
	edgeIDShift   = 4
	edgeEOMask    = 0b00001110
	edgeUDBit     = 0b00001000
	edgeFBBit     = 0b00000100
	edgeRLBit     = 0b00000010
)

// Solved returns a fresh solved CubieCube: corner i has id i and
// orientation 0, edge i has id i and orientation 0.
func Solved() CubieCube {
	var c CubieCube
	for i := 0; i < 8; i++ {
		c.Corners[i] = byte(i) << cornerIDShift
	}
	for i := 0; i < 12; i++ {
		c.Edges[i] = byte(i) << edgeIDShift
	}
	return c
}

// CornerID returns the identity (0-7) stored at corner position i.
func (c CubieCube) CornerID(i int) byte { return c.Corners[i] >> cornerIDShift }

// CornerOrientation returns the UD-relative orientation (0, 1, or 2)
// stored at corner position i.
func (c CubieCube) CornerOrientation(i int) byte { return c.Corners[i] & cornerCOMask }

// EdgeID returns the identity (0-11) stored at edge position i.
func (c CubieCube) EdgeID(i int) byte { return c.Edges[i] >> edgeIDShift }

// EdgeOrientedUD reports whether the edge at position i is oriented
// with respect to the UD axis.
func (c CubieCube) EdgeOrientedUD(i int) bool { return c.Edges[i]&edgeUDBit == 0 }

// EdgeOrientedFB reports whether the edge at position i is oriented
// with respect to the FB axis.
func (c CubieCube) EdgeOrientedFB(i int) bool { return c.Edges[i]&edgeFBBit == 0 }

// EdgeOrientedRL reports whether the edge at position i is oriented
// with respect to the RL axis.
func (c CubieCube) EdgeOrientedRL(i int) bool { return c.Edges[i]&edgeRLBit == 0 }

// IsSolved reports whether every corner and edge sits at its home
// position with orientation 0.
func (c CubieCube) IsSolved() bool {
	return c == Solved()
}

// Equal reports whether two cube states are identical, byte for byte.
func (c CubieCube) Equal(o CubieCube) bool {
	return c == o
}

// Apply applies a sequence of turns in order and returns the result.
func (c CubieCube) Apply(turns ...Turn) CubieCube {
	for _, t := range turns {
		c = c.Turn(t)
	}
	return c
}
