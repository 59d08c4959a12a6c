package step

import (
	"github.com/ehrlich-b/cube333/internal/coords"
	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/moveset"
	"github.com/ehrlich-b/cube333/internal/solution"
)

var frTable tableCache

// frMoveSet: of HTR's 6 half turns, U2/D2 are the ones that still move
// the cube off FR (an HTR substate solvable with only the other 4
// faces' half turns); L2/R2/F2/B2 preserve FR once reached.
func frMoveSet() moveset.MoveSet {
	stateChange := halfTurns(cube.Up, cube.Down)
	aux := append(halfTurns(cube.Left, cube.Right), halfTurns(cube.Front, cube.Back)...)
	return moveset.New(stateChange, aux)
}

// NewFR builds the FR StepVariant for one axis: reduces an HTR-solved
// cube to a state solvable with half turns on the four non-axis faces
// alone, fully sorting the UD slice along the way.
func NewFR(axis cube.Axis, opts ...VariantOption) Variant {
	ms := frMoveSet()
	pre := udToAxis(axis)
	g := &generic{
		kind:      solution.FR,
		name:      "fr" + axisSuffix(axis),
		coord:     coords.FRUDWithSliceCoord,
		table:     frTable.asHeuristicTable(coords.FRUDWithSliceSize, coords.FRUDWithSliceCoord, cube.Solved(), ms),
		moveSetFn: staticMoveSet(ms),
		preTrans:  pre,
		ready: func(c cube.CubieCube) bool {
			return coords.HTRDRUDCoord(c) == 0
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewFRLS builds the "FR leaving slice" variant: a trivial pass-through
// stage for the route that skips sorting the UD slice during FR and
// defers it to the FINLS finish coordinate instead (spec.md's FRLS
// kind names this route without defining it; HTRLeaveSliceFinishCoord
// is what actually absorbs the deferred slice state). It is ready
// exactly when HTR is solved and always reports solved, contributing an
// empty frame rather than searching a distinct coordinate.
func NewFRLS(axis cube.Axis) Variant {
	pre := udToAxis(axis)
	ms := moveset.New(nil, drUDHalfTurns())
	return &generic{
		kind:      solution.FRLS,
		name:      "frls" + axisSuffix(axis),
		coord:     func(cube.CubieCube) int { return 0 },
		table:     plainTable{get: func(int) int { return 0 }},
		moveSetFn: staticMoveSet(ms),
		preTrans:  pre,
		ready: func(c cube.CubieCube) bool {
			return coords.HTRDRUDCoord(c) == 0
		},
	}
}

func drUDHalfTurns() []cube.Turn {
	moves := halfTurns(cube.Up, cube.Down)
	moves = append(moves, halfTurns(cube.Left, cube.Right)...)
	moves = append(moves, halfTurns(cube.Front, cube.Back)...)
	return moves
}
