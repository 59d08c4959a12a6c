package step

import (
	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/solution"
)

// NewRZP builds an RZP StepVariant for one EO axis: a DR-shaped search
// (same 14-move EO-FB-preserving group, same L/R state-change split) run
// before DR itself to bias the cube toward a favorable DR subset, not to
// reach any coordinate's zero coset. It is ready once the matching EO
// axis is solved, and its heuristic never prunes: the reference
// implementation returns the remaining search depth verbatim from
// inside the search loop (a no-op pruning signal); Variant's Heuristic
// has no depth parameter to mirror that with, so this returns the
// constant 0, an equally inert bound since no real heuristic can go
// lower. The resulting bias toward good DR subsets is left entirely to
// the admissibility predicates attached with WithAdmissible.
func NewRZP(axis cube.Axis, opts ...VariantOption) Variant {
	ms := drMoveSet()
	pre := udToAxis(axis)
	g := &generic{
		kind:      solution.RZP,
		name:      "rzp" + axisSuffix(axis),
		coord:     func(cube.CubieCube) int { return 0 },
		table:     plainTable{get: func(int) int { return 0 }},
		moveSetFn: staticMoveSet(ms),
		preTrans:  pre,
		ready: func(c cube.CubieCube) bool {
			return eoCoordFn(axis)(c) == 0
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
