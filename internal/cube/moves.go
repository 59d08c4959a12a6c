package cube

// Shuffle tables below are transcribed byte-for-byte from the SIMD
// shuffle masks of a reference cubie-level solver: each table entry
// that there used `_mm_shuffle_epi8(cube, mask)` becomes, here,
// `new[i] = old[mask[i]]`. Face order is Up, Down, Front, Back, Left,
// Right; direction order within a face is Clockwise, Half,
// CounterClockwise.

// cornerShuffle[face][dir][i] is the source corner position that ends
// up at destination position i after the given turn.
var cornerShuffle = [6][3][8]int{
	{ // U
		{3, 0, 1, 2, 4, 5, 6, 7},
		{2, 3, 0, 1, 4, 5, 6, 7},
		{1, 2, 3, 0, 4, 5, 6, 7},
	},
	{ // D
		{0, 1, 2, 3, 7, 4, 5, 6},
		{0, 1, 2, 3, 6, 7, 4, 5},
		{0, 1, 2, 3, 5, 6, 7, 4},
	},
	{ // F
		{0, 1, 3, 4, 5, 2, 6, 7},
		{0, 1, 4, 5, 2, 3, 6, 7},
		{0, 1, 5, 2, 3, 4, 6, 7},
	},
	{ // B
		{1, 6, 2, 3, 4, 5, 7, 0},
		{6, 7, 2, 3, 4, 5, 0, 1},
		{7, 0, 2, 3, 4, 5, 1, 6},
	},
	{ // L
		{7, 1, 2, 0, 3, 5, 6, 4},
		{4, 1, 2, 7, 0, 5, 6, 3},
		{3, 1, 2, 4, 7, 5, 6, 0},
	},
	{ // R
		{0, 2, 5, 3, 4, 6, 1, 7},
		{0, 5, 6, 3, 4, 1, 2, 7},
		{0, 6, 1, 3, 4, 2, 5, 7},
	},
}

// edgeShuffle[face][dir][i] is the source edge position that ends up
// at destination position i after the given turn.
var edgeShuffle = [6][3][12]int{
	{ // U
		{3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11},
		{2, 3, 0, 1, 4, 5, 6, 7, 8, 9, 10, 11},
		{1, 2, 3, 0, 4, 5, 6, 7, 8, 9, 10, 11},
	},
	{ // D
		{0, 1, 2, 3, 4, 5, 6, 7, 11, 8, 9, 10},
		{0, 1, 2, 3, 4, 5, 6, 7, 10, 11, 8, 9},
		{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 8},
	},
	{ // F
		{0, 1, 5, 3, 2, 8, 6, 7, 4, 9, 10, 11},
		{0, 1, 8, 3, 5, 4, 6, 7, 2, 9, 10, 11},
		{0, 1, 4, 3, 8, 2, 6, 7, 5, 9, 10, 11},
	},
	{ // B
		{6, 1, 2, 3, 4, 5, 10, 0, 8, 9, 7, 11},
		{10, 1, 2, 3, 4, 5, 7, 6, 8, 9, 0, 11},
		{7, 1, 2, 3, 4, 5, 0, 10, 8, 9, 6, 11},
	},
	{ // L
		{0, 1, 2, 7, 4, 3, 6, 11, 8, 9, 10, 5},
		{0, 1, 2, 11, 4, 7, 6, 5, 8, 9, 10, 3},
		{0, 1, 2, 5, 4, 11, 6, 3, 8, 9, 10, 7},
	},
	{ // R
		{0, 4, 2, 3, 9, 5, 1, 7, 8, 6, 10, 11},
		{0, 9, 2, 3, 6, 5, 4, 7, 8, 1, 10, 11},
		{0, 6, 2, 3, 1, 5, 9, 7, 8, 4, 10, 11},
	},
}

// edgeEOFlip[face] is the set of edge-orientation bits (UD=0x8,
// FB=0x4, RL=0x2) that get toggled by a quarter turn of that face, one
// mask byte per destination position. Half turns never change
// orientation.
var edgeEOFlip = [6][12]byte{
	{0x8, 0x8, 0x8, 0x8, 0, 0, 0, 0, 0, 0, 0, 0},          // U
	{0, 0, 0, 0, 0, 0, 0, 0, 0x8, 0x8, 0x8, 0x8},          // D
	{0, 0, 0x4, 0, 0x4, 0x4, 0, 0, 0x4, 0, 0, 0},          // F
	{0x4, 0, 0, 0, 0, 0, 0x4, 0x4, 0, 0, 0x4, 0},          // B
	{0, 0, 0, 0x2, 0, 0x2, 0, 0x2, 0, 0, 0, 0x2},          // L
	{0, 0x2, 0, 0, 0x2, 0, 0x2, 0, 0, 0x2, 0, 0},          // R
}

// cornerCOChange[face] holds, per destination corner position, the
// amount added to that corner's CO field (mod 3) by a quarter turn of
// that face, stored offset by +1: after the add, bit 2 is set exactly
// when the true sum reached 3, so Turn below subtracts 4 in that case
// and 1 otherwise. Corners untouched by the face hold 1, which adds
// nothing; only the 4 corners of the face's own ring can change.
var cornerCOChange = [6][8]byte{
	{1, 1, 1, 1, 1, 1, 1, 1}, // U
	{1, 1, 1, 1, 1, 1, 1, 1}, // D
	{1, 1, 2, 3, 2, 3, 1, 1}, // F
	{2, 3, 1, 1, 1, 1, 2, 3}, // B
	{3, 1, 1, 2, 3, 1, 1, 2}, // L
	{1, 2, 3, 1, 1, 2, 3, 1}, // R
}

const coOverflowMask = 0b00000100

// Turn applies a single face turn to c and returns the result.
func (c CubieCube) Turn(t Turn) CubieCube {
	var out CubieCube

	cShuf := &cornerShuffle[t.Face][t.Direction]
	eShuf := &edgeShuffle[t.Face][t.Direction]
	for i := 0; i < 8; i++ {
		out.Corners[i] = c.Corners[cShuf[i]]
	}
	for i := 0; i < 12; i++ {
		out.Edges[i] = c.Edges[eShuf[i]]
	}

	if t.Direction == Half {
		return out
	}

	flip := &edgeEOFlip[t.Face]
	for i := 0; i < 12; i++ {
		out.Edges[i] ^= flip[i]
	}

	change := &cornerCOChange[t.Face]
	for i := 0; i < 8; i++ {
		sum := out.Corners[i] + change[i]
		if sum&coOverflowMask != 0 {
			sum -= 4
		} else {
			sum -= 1
		}
		out.Corners[i] = sum
	}

	return out
}

// ApplyAll applies each turn of an algorithm in order.
func ApplyAll(c CubieCube, turns []Turn) CubieCube {
	for _, t := range turns {
		c = c.Turn(t)
	}
	return c
}
