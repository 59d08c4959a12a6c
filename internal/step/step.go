// Package step binds a coordinate function, a pruning table, a
// MoveSet, and a set of pre/post-admissibility predicates into the
// StepVariant contract the Searcher (internal/search) drives: one
// concrete instance of a solving stage (spec.md section 4.5).
package step

import (
	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/moveset"
	"github.com/ehrlich-b/cube333/internal/solution"
)

// NissMode controls how freely a Searcher may switch between the
// normal and inverse branch while extending a stage (spec.md section
// 4.6, "NISS modes").
type NissMode int

const (
	NissNever NissMode = iota
	NissBefore
	NissAlways
)

func (m NissMode) String() string {
	switch m {
	case NissBefore:
		return "before"
	case NissAlways:
		return "always"
	default:
		return "never"
	}
}

// ParseNissMode parses the external config token (spec.md section 6:
// `niss ∈ {never, before, always}`).
func ParseNissMode(s string) (NissMode, bool) {
	switch s {
	case "", "never":
		return NissNever, true
	case "before":
		return NissBefore, true
	case "always":
		return NissAlways, true
	default:
		return NissNever, false
	}
}

// Variant is the StepVariant contract: a concrete, ready-to-search
// instance of one solving stage. Implementations differ mainly in
// which coordinate they query and which MoveSet they return, so a
// single generic struct (below) backs all of them; RZP and the
// trigger-aware DR variant fit it through generic's fields (a constant
// table, a depth-dependent MoveSet, extra admissibility predicates)
// rather than through separate implementations (spec.md section 9:
// "dynamic dispatch for StepVariant is an interface abstraction with a
// small closed variant set").
type Variant interface {
	Kind() solution.Kind
	Name() string
	PreStepTrans() []cube.Transformation
	IsReady(c cube.CubieCube) bool
	MoveSet(c cube.CubieCube, depthLeft int) moveset.MoveSet
	Heuristic(c cube.CubieCube, nissAllowed bool) int
	IsSolutionAdmissible(c cube.CubieCube, alg cube.Algorithm) bool
}

// heuristicTable is the narrow interface Variant implementations
// consult; plainTable and nissTable below adapt internal/pruning's two
// table shapes to it so generic code doesn't need to care which one
// backs a given stage.
type heuristicTable interface {
	heuristic(coord int, nissAllowed bool) int
}

// unreachable is returned for a coordinate a pruning table never
// visited (spec.md section 7: logged as a warning at table-build time,
// but the table is still published, so lookups must stay total). It's
// deliberately larger than any real stage depth so it always prunes.
const unreachable = 99

type plainTable struct{ get func(int) int }

func (t plainTable) heuristic(coord int, _ bool) int {
	d := t.get(coord)
	if d < 0 {
		return unreachable
	}
	return d
}

type nissTable struct{ get func(int) (int, int) }

func (t nissTable) heuristic(coord int, nissAllowed bool) int {
	lo, hi := t.get(coord)
	if !nissAllowed {
		if lo < 0 {
			return unreachable
		}
		return lo
	}
	best := lo
	if best < 0 || (hi >= 0 && hi < best) {
		best = hi
	}
	if best < 0 {
		return unreachable
	}
	return best
}

// generic is the shared StepVariant implementation every stage, RZP
// included, builds on: a coordinate function, a heuristic table, a MoveSet
// (possibly depth-dependent), a pre-transform list, a readiness check,
// and a chain of post-step admissibility predicates.
type generic struct {
	kind      solution.Kind
	name      string
	coord     func(cube.CubieCube) int
	table     heuristicTable
	moveSetFn func(c cube.CubieCube, depthLeft int) moveset.MoveSet
	preTrans  []cube.Transformation
	ready     func(cube.CubieCube) bool
	admiss    []func(cube.CubieCube, cube.Algorithm) bool
}

func (g *generic) Kind() solution.Kind                    { return g.kind }
func (g *generic) Name() string                           { return g.name }
func (g *generic) PreStepTrans() []cube.Transformation    { return g.preTrans }
func (g *generic) IsReady(c cube.CubieCube) bool          { return g.ready(c) }
func (g *generic) MoveSet(c cube.CubieCube, depthLeft int) moveset.MoveSet {
	return g.moveSetFn(c, depthLeft)
}

func (g *generic) Heuristic(c cube.CubieCube, nissAllowed bool) int {
	return g.table.heuristic(g.coord(c), nissAllowed)
}

func (g *generic) IsSolutionAdmissible(c cube.CubieCube, alg cube.Algorithm) bool {
	for _, pred := range g.admiss {
		if !pred(c, alg) {
			return false
		}
	}
	return true
}

// alwaysReady is the IsReady predicate for a stage with no stage-order
// precondition (EO: it may start from any scrambled cube).
func alwaysReady(cube.CubieCube) bool { return true }

// staticMoveSet adapts a fixed MoveSet (the common case) to the
// depth-dependent MoveSet signature Variant requires.
func staticMoveSet(ms moveset.MoveSet) func(cube.CubieCube, int) moveset.MoveSet {
	return func(cube.CubieCube, int) moveset.MoveSet { return ms }
}
