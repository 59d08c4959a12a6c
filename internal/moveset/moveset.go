package moveset

import "github.com/ehrlich-b/cube333/internal/cube"

// MoveSet is the pair of move lists a StepVariant searches with:
// StateChange moves may change the stage's defining coordinate, Aux
// moves must preserve it. AllowedAfter is the canonicalization matrix
// consulted once a candidate next move is chosen; StateChangeFirst
// lists opposite-face (state-change, aux-half-turn) pairs a stage
// wants explored in state-change-first order even though the base
// table would otherwise forbid the aux move from following (this is
// the "per-stage override" spec.md describes for trigger-heavy
// stages like DR).
type MoveSet struct {
	StateChange     []cube.Turn
	Aux             []cube.Turn
	AllowedAfter    [18][18]bool
	StateChangeFirst []cube.Turn
}

// New builds a MoveSet from its two move lists, starting from the
// shared base transition table and then applying any per-stage
// overrides.
func New(stateChange, aux []cube.Turn, overrides ...func(*[18][18]bool)) MoveSet {
	table := BaseTransitions()
	for _, apply := range overrides {
		apply(&table)
	}
	return MoveSet{StateChange: stateChange, Aux: aux, AllowedAfter: table}
}

// AllMoves returns StateChange and Aux concatenated, the full move
// pool a stage searches over.
func (m MoveSet) AllMoves() []cube.Turn {
	out := make([]cube.Turn, 0, len(m.StateChange)+len(m.Aux))
	out = append(out, m.StateChange...)
	out = append(out, m.Aux...)
	return out
}

// Allowed reports whether next may legally follow prev. hasPrev is
// false for a stage's first move, which is always allowed.
func (m MoveSet) Allowed(prev cube.Turn, next cube.Turn, hasPrev bool) bool {
	if !hasPrev {
		return true
	}
	return m.AllowedAfter[turnIndex(prev)][turnIndex(next)]
}

// AllowStateChangeBeforeOppositeHalf is the override constructor for
// the "state-change move may precede the opposite face's half turn"
// rule: it flips the table entries the base rules would otherwise
// forbid for state_change turns so that, when prev is one of them,
// the opposite face's half turn is allowed to follow.
func AllowStateChangeBeforeOppositeHalf(stateChange []cube.Turn) func(*[18][18]bool) {
	return func(table *[18][18]bool) {
		for _, prev := range stateChange {
			opp := prev.Face.Opposite()
			next := cube.Turn{Face: opp, Direction: cube.Half}
			table[turnIndex(prev)][turnIndex(next)] = true
		}
	}
}
