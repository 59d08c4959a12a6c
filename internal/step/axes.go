package step

import "github.com/ehrlich-b/cube333/internal/cube"

// axisFaces lists the two faces (higher-priority face first) a stage
// axis turns to change its defining coordinate: Y is U/D, Z is F/B, X
// is L/R (spec.md section 3's axis map).
func axisFaces(axis cube.Axis) (cube.Face, cube.Face) {
	switch axis {
	case cube.AxisY:
		return cube.Up, cube.Down
	case cube.AxisZ:
		return cube.Front, cube.Back
	default:
		return cube.Left, cube.Right
	}
}

// axisSuffix names an axis the way stage-variant names do ("ud", "fb",
// "lr"), matching spec.md section 6's `drud-eofb`-style substep names.
func axisSuffix(axis cube.Axis) string {
	switch axis {
	case cube.AxisY:
		return "ud"
	case cube.AxisZ:
		return "fb"
	default:
		return "lr"
	}
}

// quarterTurns returns the four quarter (non-half) turns of a face
// pair: f, f', g, g'.
func quarterTurns(f, g cube.Face) []cube.Turn {
	return []cube.Turn{
		{Face: f, Direction: cube.Clockwise},
		{Face: f, Direction: cube.CounterClockwise},
		{Face: g, Direction: cube.Clockwise},
		{Face: g, Direction: cube.CounterClockwise},
	}
}

// halfTurns returns the two half turns of a face pair.
func halfTurns(f, g cube.Face) []cube.Turn {
	return []cube.Turn{
		{Face: f, Direction: cube.Half},
		{Face: g, Direction: cube.Half},
	}
}

// allTurnsExcept returns every turn in cube.AllTurns() not already
// present in exclude, preserving AllTurns' canonical ordering.
func allTurnsExcept(exclude ...cube.Turn) []cube.Turn {
	skip := make(map[cube.Turn]bool, len(exclude))
	for _, t := range exclude {
		skip[t] = true
	}
	var out []cube.Turn
	for _, t := range cube.AllTurns() {
		if !skip[t] {
			out = append(out, t)
		}
	}
	return out
}

// udToAxis maps an off-axis stage (built on a UD-coordinate table,
// spec.md section 4.5's "DR on FB solved by UD-axis table") onto the
// requested axis: the pre-transformation a Searcher applies once
// before every lookup, and the turns of the requested axis's own
// faces expressed so the table's internal U/D-relative moveset logic
// still lines up once rotated back.
//
// Transformation X (quarter turn about the X axis) cycles U->F->D->B,
// carrying the UD axis onto the FB axis; Transformation Z carries UD
// onto LR. A stage written against UD reaches FB or LR by applying
// that rotation to the cube before every coordinate/moveset query and
// inverse-transforming the emitted moves back into the caller's frame
// (done once, by the Searcher, per spec.md section 4.6 step 6).
func udToAxis(axis cube.Axis) []cube.Transformation {
	switch axis {
	case cube.AxisY:
		return nil
	case cube.AxisZ:
		return []cube.Transformation{{Axis: cube.AxisX, Direction: cube.Clockwise}}
	default:
		return []cube.Transformation{{Axis: cube.AxisZ, Direction: cube.CounterClockwise}}
	}
}
