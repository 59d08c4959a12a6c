package cube

// Whole-cube transformations (x/y/z rotations) relabel every position
// and every stored id at once: a Transformation doesn't just permute
// where pieces sit, it also renumbers what "UB" or "UBL" means, since
// those ids are position labels. Each transform is therefore a double
// application of its shuffle table: once over positions, once (via
// the inverse-direction table used as a lookup) over the ids held in
// each byte.

// cornerTransformShuffle[axis][dir][i] mirrors cornerShuffle but for
// whole-cube rotations about X, Y, or Z.
var cornerTransformShuffle = [3][3][8]int{
	{ // x
		{3, 2, 5, 4, 7, 6, 1, 0},
		{4, 5, 6, 7, 0, 1, 2, 3},
		{7, 6, 1, 0, 3, 2, 5, 4},
	},
	{ // y
		{3, 0, 1, 2, 5, 6, 7, 4},
		{2, 3, 0, 1, 6, 7, 4, 5},
		{1, 2, 3, 0, 7, 4, 5, 6},
	},
	{ // z
		{7, 0, 3, 4, 5, 2, 1, 6},
		{6, 7, 4, 5, 2, 3, 0, 1},
		{1, 6, 5, 2, 3, 4, 7, 0},
	},
}

// cornerCOMap[axis][co] gives the new CO value (0,1,2) a corner
// carries after a quarter transform about that axis, indexed by the
// pre-transform CO combined with which orbit (solved-position parity)
// the corner lands in; see Transform for how the index is
// built. Padding entries for out-of-range indices are unused.
var cornerCOMap = [3][16]byte{
	{0, 1, 2, 0, 1, 2, 0, 0, 2, 0, 1, 0, 0, 1, 2, 0}, // x
	{0, 1, 2, 0, 0, 1, 2, 0, 0, 1, 2, 0, 0, 1, 2, 0}, // y
	{0, 1, 2, 0, 2, 0, 1, 0, 1, 2, 0, 0, 0, 1, 2, 0}, // z
}

var edgeTransformShuffle = [3][3][12]int{
	{ // x
		{2, 4, 8, 5, 9, 11, 1, 3, 10, 6, 0, 7},
		{8, 9, 10, 11, 6, 7, 4, 5, 0, 1, 2, 3},
		{10, 6, 0, 7, 1, 3, 9, 11, 2, 4, 8, 5},
	},
	{ // y
		{3, 0, 1, 2, 6, 4, 7, 5, 9, 10, 11, 8},
		{2, 3, 0, 1, 7, 6, 5, 4, 10, 11, 8, 9},
		{1, 2, 3, 0, 5, 7, 4, 6, 11, 8, 9, 10},
	},
	{ // z
		{7, 3, 5, 11, 2, 8, 0, 10, 4, 1, 6, 9},
		{10, 11, 8, 9, 5, 4, 7, 6, 2, 3, 0, 1},
		{6, 9, 4, 1, 8, 2, 10, 0, 5, 11, 7, 3},
	},
}

// edgeEOMap[axis][eo] remaps a pre-transform edge-orientation nibble
// (bits UD/FB/RL) to its post-transform value. Indexed by the nibble
// directly (even values only; odd slots unused).
var edgeEOMap = [3][16]byte{
	{0x0, 0, 0x2, 0, 0x8, 0, 0xA, 0, 0x4, 0, 0x6, 0, 0xC, 0, 0xE, 0},
	{0x0, 0, 0x4, 0, 0x2, 0, 0x6, 0, 0x8, 0, 0xC, 0, 0xA, 0, 0xE, 0},
	{0x0, 0, 0x8, 0, 0x4, 0, 0xC, 0, 0x2, 0, 0xA, 0, 0x6, 0, 0xE, 0},
}

// Transform applies a whole-cube rotation to c and returns the
// result.
func (c CubieCube) Transform(tr Transformation) CubieCube {
	var mid CubieCube

	cShuf := &cornerTransformShuffle[tr.Axis][tr.Direction]
	eShuf := &edgeTransformShuffle[tr.Axis][tr.Direction]
	for i := 0; i < 8; i++ {
		mid.Corners[i] = c.Corners[cShuf[i]]
	}
	for i := 0; i < 12; i++ {
		mid.Edges[i] = c.Edges[eShuf[i]]
	}

	invCShuf := &cornerTransformShuffle[tr.Axis][tr.Direction.Invert()]
	invEShuf := &edgeTransformShuffle[tr.Axis][tr.Direction.Invert()]

	var out CubieCube
	for i := 0; i < 8; i++ {
		id := mid.CornerID(i)
		co := mid.CornerOrientation(i)
		newID := byte(invCShuf[id])
		var newCO byte
		if tr.Direction == Half {
			newCO = co
		} else {
			lanePar := byte(i&1) << 3
			idPar := (newID & 1) << 2
			newCO = cornerCOMap[tr.Axis][lanePar|idPar|co]
		}
		out.Corners[i] = newID<<cornerIDShift | newCO
	}
	for i := 0; i < 12; i++ {
		id := mid.EdgeID(i)
		eo := mid.Edges[i] & edgeEOMask
		newID := byte(invEShuf[id])
		var newEO byte
		if tr.Direction == Half {
			newEO = eo
		} else {
			newEO = edgeEOMap[tr.Axis][eo]
		}
		out.Edges[i] = newID<<edgeIDShift | newEO
	}

	return out
}

// ApplyTransforms applies a sequence of whole-cube rotations in
// order.
func ApplyTransforms(c CubieCube, trs []Transformation) CubieCube {
	for _, tr := range trs {
		c = c.Transform(tr)
	}
	return c
}
