package cfen

import (
	"fmt"

	"github.com/ehrlich-b/cube333/internal/cube"
)

// Facelet face order and indexing: U=0..8, R=9..17, F=18..26, D=27..35,
// L=36..44, B=45..53, each face row-major as viewed from outside with
// this net:
//
//	      U
//	  L   F   R   B
//	      D
//
// so U's row0/row2 border B/F and its col0/col2 border L/R; D's
// row0/row2 border F/B; F/R/L's row0/row2 border U/D; B's row0/row2
// border U/D with col0/col2 reversed (col0 borders R, col2 borders L,
// since B is seen from outside the cube looking backward).

// cornerGeom[id] gives, for the corner position with this identity in
// its solved location, the three facelet indices and the three solved
// colors at those facelets, both in the same clockwise order starting
// from the facelet on the U/D face. CornerOrientation o means the
// U/D-colored sticker has rotated o steps clockwise away from index 0,
// i.e. the color shown at facelet k is colors[(k-o+3)%3].
var cornerGeom = [8]struct {
	facelets [3]int
	colors   [3]cube.Color
}{
	{[3]int{0, 36, 47}, [3]cube.Color{cube.White, cube.Orange, cube.Blue}},  // 0 UBL
	{[3]int{2, 45, 11}, [3]cube.Color{cube.White, cube.Blue, cube.Red}},     // 1 UBR
	{[3]int{8, 9, 20}, [3]cube.Color{cube.White, cube.Red, cube.Green}},     // 2 UFR
	{[3]int{6, 18, 38}, [3]cube.Color{cube.White, cube.Green, cube.Orange}}, // 3 UFL
	{[3]int{27, 24, 44}, [3]cube.Color{cube.Yellow, cube.Green, cube.Orange}}, // 4 DFL
	{[3]int{29, 26, 15}, [3]cube.Color{cube.Yellow, cube.Green, cube.Red}},    // 5 DFR
	{[3]int{35, 51, 17}, [3]cube.Color{cube.Yellow, cube.Blue, cube.Red}},     // 6 DBR
	{[3]int{33, 53, 42}, [3]cube.Color{cube.Yellow, cube.Blue, cube.Orange}},  // 7 DBL
}

// edgeGeom[id] gives the two facelet indices and two solved colors for
// the edge position with this identity in its solved location, primary
// facelet first (the one on the U/D face, or on F/B for the four
// middle-slice edges that never touch U/D).
var edgeGeom = [12]struct {
	facelets [2]int
	colors   [2]cube.Color
}{
	{[2]int{1, 46}, [2]cube.Color{cube.White, cube.Blue}},   // 0 UB
	{[2]int{5, 10}, [2]cube.Color{cube.White, cube.Red}},    // 1 UR
	{[2]int{7, 19}, [2]cube.Color{cube.White, cube.Green}},  // 2 UF
	{[2]int{3, 37}, [2]cube.Color{cube.White, cube.Orange}}, // 3 UL
	{[2]int{23, 12}, [2]cube.Color{cube.Green, cube.Red}},    // 4 FR
	{[2]int{21, 41}, [2]cube.Color{cube.Green, cube.Orange}}, // 5 FL
	{[2]int{48, 14}, [2]cube.Color{cube.Blue, cube.Red}},     // 6 BR
	{[2]int{50, 39}, [2]cube.Color{cube.Blue, cube.Orange}},  // 7 BL
	{[2]int{28, 25}, [2]cube.Color{cube.Yellow, cube.Green}},  // 8 DF
	{[2]int{32, 16}, [2]cube.Color{cube.Yellow, cube.Red}},    // 9 DR
	{[2]int{34, 52}, [2]cube.Color{cube.Yellow, cube.Blue}},   // 10 DB
	{[2]int{30, 43}, [2]cube.Color{cube.Yellow, cube.Orange}}, // 11 DL
}

// centerColor[face] is the fixed sticker of that face's immovable
// center, face indexed U=0,R=1,F=2,D=3,L=4,B=5.
var centerColor = [6]cube.Color{cube.White, cube.Red, cube.Green, cube.Yellow, cube.Orange, cube.Blue}

// edgeUsesFB reports whether an edge position's primary facelet sits
// on F/B rather than U/D: the four middle-slice edges (positions 4-7
// in this package's FR/FL/BR/BL order) never touch U or D, so their
// flip state is read off EdgeOrientedFB instead of EdgeOrientedUD.
func edgeUsesFB(pos int) bool {
	return pos >= 4 && pos <= 7
}

// ToCubieCube converts a State in the cube's native orientation (White
// up, Green front) to a CubieCube. Any other orientation is rejected:
// reorienting a facelet state requires rotating the whole cube first,
// which this package does not implement (see DESIGN.md).
func (s State) ToCubieCube() (cube.CubieCube, error) {
	if s.Orientation != NativeOrientation {
		return cube.CubieCube{}, fmt.Errorf("cfen: unsupported orientation %s%s (only WG is supported)",
			s.Orientation.Up, s.Orientation.Front)
	}
	facelets := s.flatten()

	var c cube.CubieCube
	for pos := 0; pos < 8; pos++ {
		observed := [3]cube.Color{
			facelets[cornerGeom[pos].facelets[0]],
			facelets[cornerGeom[pos].facelets[1]],
			facelets[cornerGeom[pos].facelets[2]],
		}
		id, o, err := matchCorner(observed)
		if err != nil {
			return cube.CubieCube{}, fmt.Errorf("cfen: corner position %d: %w", pos, err)
		}
		c.Corners[pos] = byte(id)<<5 | byte(o)
	}
	for pos := 0; pos < 12; pos++ {
		observed := [2]cube.Color{
			facelets[edgeGeom[pos].facelets[0]],
			facelets[edgeGeom[pos].facelets[1]],
		}
		id, flipped, err := matchEdge(observed)
		if err != nil {
			return cube.CubieCube{}, fmt.Errorf("cfen: edge position %d: %w", pos, err)
		}
		var eo byte
		if flipped {
			eo = 0b1110 // flipped on all three axis bits: a facelet-level
			// flip is the same physical twist regardless of which axis
			// a later EO stage measures it against.
		}
		c.Edges[pos] = byte(id)<<4 | eo
	}
	return c, nil
}

func matchCorner(observed [3]cube.Color) (id int, orientation int, err error) {
	for id, geom := range cornerGeom {
		for o := 0; o < 3; o++ {
			match := true
			for k := 0; k < 3; k++ {
				want := observed[k]
				if want == cube.Grey {
					continue
				}
				if geom.colors[(k-o+3)%3] != want {
					match = false
					break
				}
			}
			if match {
				return id, o, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("no corner matches colors %v", observed)
}

func matchEdge(observed [2]cube.Color) (id int, flipped bool, err error) {
	for id, geom := range edgeGeom {
		if colorsMatch(observed[0], geom.colors[0]) && colorsMatch(observed[1], geom.colors[1]) {
			return id, false, nil
		}
		if colorsMatch(observed[0], geom.colors[1]) && colorsMatch(observed[1], geom.colors[0]) {
			return id, true, nil
		}
	}
	return 0, false, fmt.Errorf("no edge matches colors %v", observed)
}

func colorsMatch(observed, want cube.Color) bool {
	return observed == cube.Grey || observed == want
}

// FromCubieCube renders c as a State in the cube's native orientation.
func FromCubieCube(c cube.CubieCube) State {
	var facelets [54]cube.Color
	for face := 0; face < 6; face++ {
		facelets[face*9+4] = centerColor[face]
	}
	for pos := 0; pos < 8; pos++ {
		id := int(c.CornerID(pos))
		o := int(c.CornerOrientation(pos))
		geom := cornerGeom[pos]
		colors := cornerGeom[id].colors
		for k := 0; k < 3; k++ {
			facelets[geom.facelets[k]] = colors[(k-o+3)%3]
		}
	}
	for pos := 0; pos < 12; pos++ {
		id := int(c.EdgeID(pos))
		flipped := edgeFlipped(c, pos)
		geom := edgeGeom[pos]
		colors := edgeGeom[id].colors
		if flipped {
			facelets[geom.facelets[0]] = colors[1]
			facelets[geom.facelets[1]] = colors[0]
		} else {
			facelets[geom.facelets[0]] = colors[0]
			facelets[geom.facelets[1]] = colors[1]
		}
	}

	var s State
	s.Orientation = NativeOrientation
	for face := 0; face < 6; face++ {
		copy(s.Faces[face].Stickers[:], facelets[face*9:face*9+9])
	}
	return s
}

func edgeFlipped(c cube.CubieCube, pos int) bool {
	if edgeUsesFB(pos) {
		return !c.EdgeOrientedFB(pos)
	}
	return !c.EdgeOrientedUD(pos)
}

// GenerateCFEN renders c as a CFEN string in the cube's native
// orientation.
func GenerateCFEN(c cube.CubieCube) string {
	return FromCubieCube(c).String()
}

// flatten concatenates the six faces into one 54-element array in
// U/R/F/D/L/B order, matching the facelet index scheme above.
func (s State) flatten() [54]cube.Color {
	var out [54]cube.Color
	for face := 0; face < 6; face++ {
		copy(out[face*9:face*9+9], s.Faces[face].Stickers[:])
	}
	return out
}

// Matches reports whether c's facelet state matches s, treating Grey
// stickers in s as wildcards.
func (s State) Matches(c cube.CubieCube) bool {
	actual := FromCubieCube(c).flatten()
	pattern := s.flatten()
	for i := range pattern {
		if pattern[i] == cube.Grey {
			continue
		}
		if pattern[i] != actual[i] {
			return false
		}
	}
	return true
}
