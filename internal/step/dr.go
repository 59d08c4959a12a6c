package step

import (
	"github.com/ehrlich-b/cube333/internal/coords"
	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/moveset"
	"github.com/ehrlich-b/cube333/internal/solution"
)

var drTable nissTableCache

// drEOFBMoves is the 14-move group that preserves EO-FB (spec.md
// section 3: only F/B quarter turns touch the FB orientation bit), the
// full pool a DR-on-UD search ranges over once EO-FB is solved.
func drEOFBMoves() []cube.Turn {
	moves := quarterTurns(cube.Up, cube.Down)
	moves = append(moves, halfTurns(cube.Up, cube.Down)...)
	moves = append(moves, quarterTurns(cube.Left, cube.Right)...)
	moves = append(moves, halfTurns(cube.Left, cube.Right)...)
	moves = append(moves, halfTurns(cube.Front, cube.Back)...)
	return moves
}

// drMoveSet: within the EO-FB-preserving group, only the L/R quarter
// turns can still change the DR(UD) coordinate; the rest (U/D in any
// direction, L2/R2, F2/B2) already belong to the eventual HTR group
// and so preserve it, matching cubelib's DR_UD_EO_FB_STATE_CHANGE_MOVES
// split (see rzp_config.rs).
func drMoveSet() moveset.MoveSet {
	stateChange := quarterTurns(cube.Left, cube.Right)
	all := drEOFBMoves()
	aux := make([]cube.Turn, 0, len(all)-len(stateChange))
	skip := map[cube.Turn]bool{}
	for _, t := range stateChange {
		skip[t] = true
	}
	for _, t := range all {
		if !skip[t] {
			aux = append(aux, t)
		}
	}
	return moveset.New(stateChange, aux, moveset.AllowStateChangeBeforeOppositeHalf(stateChange))
}

// NewDR builds the DR StepVariant for one axis, named "drud-eofb",
// "drfb-eofb" or "drlr-eofb" (the "eofb" suffix names the EO check in
// the UD frame): UD is searched directly, FB and LR by pre-transforming
// the cube into the UD frame the DRUDEOFB coordinate and table assume
// (spec.md section 4.5: "DR on FB solved by UD-axis table"). IsReady
// requires the FB-axis EO coordinate to be 0.
func NewDR(axis cube.Axis, opts ...VariantOption) Variant {
	ms := drMoveSet()
	pre := udToAxis(axis)
	g := &generic{
		kind:      solution.DR,
		name:      "dr" + axisSuffix(axis) + "-eofb",
		coord:     coords.DRUDEOFBCoord,
		table:     drTable.asHeuristicTable(coords.DRUDEOFBSize, coords.DRUDEOFBCoord, cube.Solved(), ms),
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

// VariantOption adjusts a generic StepVariant after construction, used
// to attach post-step admissibility predicates (subset/trigger
// filters) without every stage constructor needing its own option
// plumbing.
type VariantOption func(*generic)

// WithAdmissible appends a post-step admissibility predicate.
func WithAdmissible(pred func(cube.CubieCube, cube.Algorithm) bool) VariantOption {
	return func(g *generic) { g.admiss = append(g.admiss, pred) }
}
