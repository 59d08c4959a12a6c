package step

import (
	"github.com/ehrlich-b/cube333/internal/coords"
	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/moveset"
	"github.com/ehrlich-b/cube333/internal/solution"
)

var (
	finTable     tableCache
	finLSTable   tableCache
	finHTRTable  tableCache
)

func finMoveSet(faces ...cube.Face) moveset.MoveSet {
	var stateChange []cube.Turn
	for i := 0; i < len(faces); i += 2 {
		stateChange = append(stateChange, halfTurns(faces[i], faces[i+1])...)
	}
	return moveset.New(stateChange, nil)
}

// NewFinish builds the FIN StepVariant: the last stretch after FR,
// searched with the four remaining half turns.
func NewFinish(axis cube.Axis) Variant {
	ms := finMoveSet(cube.Left, cube.Right, cube.Front, cube.Back)
	pre := udToAxis(axis)
	return &generic{
		kind:      solution.FIN,
		name:      "fin" + axisSuffix(axis),
		coord:     coords.FRFinishCoord,
		table:     finTable.asHeuristicTable(coords.FRFinishSize, coords.FRFinishCoord, cube.Solved(), ms),
		moveSetFn: staticMoveSet(ms),
		preTrans:  pre,
		ready: func(c cube.CubieCube) bool {
			return coords.FRUDWithSliceCoord(c) == 0
		},
	}
}

// NewFinishLS builds the FINLS StepVariant: finishes directly from the
// FRLS pass-through (HTR-ready, UD slice left unsorted), using the
// coordinate that leaves the deferred UD-slice edges out of the rank.
func NewFinishLS(axis cube.Axis) Variant {
	ms := finMoveSet(cube.Up, cube.Down, cube.Left, cube.Right, cube.Front, cube.Back)
	pre := udToAxis(axis)
	return &generic{
		kind:      solution.FINLS,
		name:      "finls" + axisSuffix(axis),
		coord:     coords.HTRLeaveSliceFinishCoord,
		table:     finLSTable.asHeuristicTable(coords.HTRLeaveSliceFinishSize, coords.HTRLeaveSliceFinishCoord, cube.Solved(), ms),
		moveSetFn: staticMoveSet(ms),
		preTrans:  pre,
		ready: func(c cube.CubieCube) bool {
			return coords.HTRDRUDCoord(c) == 0
		},
	}
}

// NewFinishFromHTR builds a FIN variant that skips FR entirely,
// solving straight from HTR with the full HTRFinish coordinate. Used
// when a fin stage directly follows htr in the stage list, with no FR
// or FRLS stage between them.
func NewFinishFromHTR(axis cube.Axis) Variant {
	ms := finMoveSet(cube.Up, cube.Down, cube.Left, cube.Right, cube.Front, cube.Back)
	pre := udToAxis(axis)
	return &generic{
		kind:      solution.FIN,
		name:      "fin" + axisSuffix(axis) + "-direct",
		coord:     coords.HTRFinishCoord,
		table:     finHTRTable.asHeuristicTable(coords.HTRFinishSize, coords.HTRFinishCoord, cube.Solved(), ms),
		moveSetFn: staticMoveSet(ms),
		preTrans:  pre,
		ready: func(c cube.CubieCube) bool {
			return coords.HTRDRUDCoord(c) == 0
		},
	}
}
