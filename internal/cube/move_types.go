package cube

import "fmt"

// Face identifies one of the six faces a Turn can be applied to. The
// numeric order (Up, Down, Front, Back, Left, Right) matches the
// layout of the shuffle tables in moves.go, so Face doubles as a table
// index.
type Face int

const (
	Up Face = iota
	Down
	Front
	Back
	Left
	Right
)

func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Down:
		return "D"
	case Front:
		return "F"
	case Back:
		return "B"
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case Up:
		return Down
	case Down:
		return Up
	case Front:
		return Back
	case Back:
		return Front
	case Left:
		return Right
	case Right:
		return Left
	default:
		return f
	}
}

// Axis identifies one of the three whole-cube rotation axes. The
// order (X, Y, Z) matches the transformation shuffle tables.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Direction is shared between Turn and Transformation: a quarter turn,
// a half turn, or a quarter turn the other way. The numeric order
// matches the shuffle table column order in moves.go.
type Direction int

const (
	Clockwise Direction = iota
	Half
	CounterClockwise
)

// Invert returns the direction that undoes this one.
func (d Direction) Invert() Direction {
	switch d {
	case Clockwise:
		return CounterClockwise
	case CounterClockwise:
		return Clockwise
	default:
		return Half
	}
}

func (d Direction) suffix() string {
	switch d {
	case Half:
		return "2"
	case CounterClockwise:
		return "'"
	default:
		return ""
	}
}

// Turn is a single face turn: which face, and how far.
type Turn struct {
	Face      Face
	Direction Direction
}

func (t Turn) String() string {
	return t.Face.String() + t.Direction.suffix()
}

// Invert returns the turn that undoes this one.
func (t Turn) Invert() Turn {
	return Turn{Face: t.Face, Direction: t.Direction.Invert()}
}

// SameAxis reports whether two turns act on the same pair of opposite
// faces (e.g. U and D, or U and U).
func (t Turn) SameAxis(o Turn) bool {
	return t.Face == o.Face || t.Face == o.Face.Opposite()
}

// faceTransform[face][axis][dir] is the face a whole-cube rotation
// about axis (in direction dir) carries face onto: a whole-cube
// rotation relabels which face is which without changing a turn's
// sense, so Turn.Transform only ever needs to relabel the face.
// Transcribed from the reference cubie-level solver's CubeFace
// transform table.
var faceTransform = [6][3][3]Face{
	{ // Up
		{Back, Down, Front},
		{Up, Up, Up},
		{Right, Down, Left},
	},
	{ // Down
		{Front, Up, Back},
		{Down, Down, Down},
		{Left, Up, Right},
	},
	{ // Front
		{Up, Back, Down},
		{Left, Back, Right},
		{Front, Front, Front},
	},
	{ // Back
		{Down, Front, Up},
		{Right, Front, Left},
		{Back, Back, Back},
	},
	{ // Left
		{Left, Left, Left},
		{Back, Right, Front},
		{Up, Right, Down},
	},
	{ // Right
		{Right, Right, Right},
		{Front, Left, Back},
		{Down, Left, Up},
	},
}

// Transform returns the turn that t becomes after a whole-cube
// rotation: a rotation relabels faces but never flips a turn's sense,
// so only Face changes.
func (t Turn) Transform(tr Transformation) Turn {
	return Turn{Face: faceTransform[t.Face][tr.Axis][tr.Direction], Direction: t.Direction}
}

// Transformation is a whole-cube rotation: it relabels every position
// but changes no piece relationships. StepVariants are written against
// a fixed reference axis and reached via a pre-step Transformation for
// the other two axes (e.g. a DR variant written for UD is reached for
// FB and LR cases by rotating the cube first).
type Transformation struct {
	Axis      Axis
	Direction Direction
}

// Invert returns the transformation that undoes this one.
func (tr Transformation) Invert() Transformation {
	return Transformation{Axis: tr.Axis, Direction: tr.Direction.Invert()}
}

func (tr Transformation) String() string {
	return tr.Axis.String() + tr.Direction.suffix()
}

// AllTurns lists the 18 face turns in canonical order: each face's
// clockwise, half, and counter-clockwise turn, faces in Face's
// iteration order.
func AllTurns() []Turn {
	turns := make([]Turn, 0, 18)
	for f := Up; f <= Right; f++ {
		for _, d := range []Direction{Clockwise, Half, CounterClockwise} {
			turns = append(turns, Turn{Face: f, Direction: d})
		}
	}
	return turns
}
