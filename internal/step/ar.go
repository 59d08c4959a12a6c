package step

import (
	"github.com/ehrlich-b/cube333/internal/coords"
	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/moveset"
	"github.com/ehrlich-b/cube333/internal/solution"
)

var arTable nissTableCache

// arMoveSet: AR (arm alignment) reuses DR's coordinate but a different
// group — U/D quarter turns are the state-change moves here (they're
// the ones that still move the cube off the eventual AR-aligned DR
// state), with L/R in any direction plus the remaining four half turns
// as aux, mirroring the reference ARUD_EOFB_MOVESET.
func arMoveSet() moveset.MoveSet {
	stateChange := quarterTurns(cube.Up, cube.Down)
	aux := append(quarterTurns(cube.Left, cube.Right), halfTurns(cube.Left, cube.Right)...)
	aux = append(aux, halfTurns(cube.Up, cube.Down)...)
	aux = append(aux, halfTurns(cube.Front, cube.Back)...)
	return moveset.New(stateChange, aux)
}

// NewAR builds an AR ("arm realignment") StepVariant: run after EO on
// eoAxis in place of DR, it searches for a route into the DR
// coordinate's zero coset using AR's own move group instead of DR's,
// and is ready once EO is solved, the same check DR uses. This mirrors the way a human
// solver sometimes finds a cheaper DR by deliberately not going through
// the first DR solution found. The reference implementation exposes six
// (arm axis, eo axis) combinations with distinct pre-transforms per
// pair; this collapses them to one pre-transform per eo axis (the same
// convention DR/HTR/FR/Finish already use) since a Searcher only ever
// needs the cube rotated into the frame the shared DRUDEOFB table
// expects — see DESIGN.md for the simplification.
func NewAR(eoAxis cube.Axis, opts ...VariantOption) Variant {
	ms := arMoveSet()
	pre := udToAxis(eoAxis)
	g := &generic{
		kind:      solution.AR,
		name:      "ar-eo" + axisSuffix(eoAxis),
		coord:     coords.DRUDEOFBCoord,
		table:     arTable.asHeuristicTable(coords.DRUDEOFBSize, coords.DRUDEOFBCoord, cube.Solved(), ms),
		moveSetFn: staticMoveSet(ms),
		preTrans:  pre,
		ready: func(c cube.CubieCube) bool {
			return coords.EOCoordFB(c) == 0
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
