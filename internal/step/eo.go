package step

import (
	"github.com/ehrlich-b/cube333/internal/coords"
	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/moveset"
	"github.com/ehrlich-b/cube333/internal/solution"
)

// eoTables caches one NISS pruning table per axis: EO is always the
// first stage a Searcher runs, so every EO variant is built against a
// solved seed with no pre-transform.
var eoTables = map[cube.Axis]*nissTableCache{
	cube.AxisX: {},
	cube.AxisY: {},
	cube.AxisZ: {},
}

func eoCoordFn(axis cube.Axis) func(cube.CubieCube) int {
	switch axis {
	case cube.AxisX:
		return coords.EOCoordLR
	case cube.AxisZ:
		return coords.EOCoordFB
	default:
		return coords.EOCoordUD
	}
}

// eoMoveSet: a quarter turn of either axis face flips that axis's
// orientation bit (spec.md section 3); every other move preserves it.
// The state-change/aux split is exactly that distinction.
func eoMoveSet(axis cube.Axis) moveset.MoveSet {
	f, g := axisFaces(axis)
	stateChange := quarterTurns(f, g)
	aux := allTurnsExcept(stateChange...)
	return moveset.New(stateChange, aux)
}

// NewEO builds the EO StepVariant for one axis. EO has no precondition
// (it is always the entry stage) and no post-step admissibility
// filter beyond reaching the coordinate's zero coset.
func NewEO(axis cube.Axis) Variant {
	ms := eoMoveSet(axis)
	coordFn := eoCoordFn(axis)
	table := eoTables[axis].asHeuristicTable(coords.EOSize, coordFn, cube.Solved(), ms)
	return &generic{
		kind:      solution.EO,
		name:      "eo" + axisSuffix(axis),
		coord:     coordFn,
		table:     table,
		moveSetFn: staticMoveSet(ms),
		ready:     alwaysReady,
	}
}
