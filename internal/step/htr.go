package step

import (
	"github.com/ehrlich-b/cube333/internal/coords"
	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/moveset"
	"github.com/ehrlich-b/cube333/internal/solution"
)

var htrTable nissTableCache

// drUDMoves is the 10-move group DR(UD) leaves available: U/D in any
// direction, and half turns of the other four faces.
func drUDMoves() []cube.Turn {
	moves := quarterTurns(cube.Up, cube.Down)
	moves = append(moves, halfTurns(cube.Up, cube.Down)...)
	moves = append(moves, halfTurns(cube.Left, cube.Right)...)
	moves = append(moves, halfTurns(cube.Front, cube.Back)...)
	return moves
}

// htrMoveSet: of the 10 DR(UD) moves, only U/D quarter turns can still
// move the cube out of the eventual HTR group (pure half turns); the
// 6 half turns preserve HTR once reached.
func htrMoveSet() moveset.MoveSet {
	stateChange := quarterTurns(cube.Up, cube.Down)
	aux := append(halfTurns(cube.Up, cube.Down),
		append(halfTurns(cube.Left, cube.Right), halfTurns(cube.Front, cube.Back)...)...)
	return moveset.New(stateChange, aux)
}

// NewHTR builds the HTR StepVariant for one axis, reached from the
// matching DR axis the same way DR is reached from EO: directly on UD,
// or via a pre-transform into the UD frame for FB/LR.
func NewHTR(axis cube.Axis, opts ...VariantOption) Variant {
	ms := htrMoveSet()
	pre := udToAxis(axis)
	g := &generic{
		kind:      solution.HTR,
		name:      "htr" + axisSuffix(axis),
		coord:     coords.HTRDRUDCoord,
		table:     htrTable.asHeuristicTable(coords.HTRDRUDSize, coords.HTRDRUDCoord, cube.Solved(), ms),
		moveSetFn: staticMoveSet(ms),
		preTrans:  pre,
		ready: func(c cube.CubieCube) bool {
			return coords.DRUDEOFBCoord(c) == 0
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
