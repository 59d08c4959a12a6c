// Package moveset declares, per solving stage, which face turns may
// change the stage's defining coordinate (state_change) and which
// preserve it (aux), plus the 18x18 canonicalization table that
// prunes the search tree of moves that only reorder a commuting pair.
package moveset

import "github.com/ehrlich-b/cube333/internal/cube"

// turnIndex returns the 0-17 index of a turn in cube.AllTurns()
// order, used to index the transition table.
func turnIndex(t cube.Turn) int {
	return int(t.Face)*3 + int(t.Direction)
}

// higherPriority reports whether f is the higher-priority face of
// its opposite-face axis pair (U>D, F>B, L>R).
func higherPriority(f cube.Face) bool {
	switch f {
	case cube.Up, cube.Front, cube.Left:
		return true
	default:
		return false
	}
}

// BaseTransitions builds the 18x18 allowed_after matrix shared by
// every stage: a move never follows one on the same face, and a move
// never follows one on its own opposite face when the previous move is
// on the higher-priority face (that pair is explored in the other
// order, higher-priority face first).
func BaseTransitions() [18][18]bool {
	var table [18][18]bool
	turns := cube.AllTurns()
	for _, prev := range turns {
		for _, next := range turns {
			allowed := true
			if next.Face == prev.Face {
				allowed = false
			} else if next.Face == prev.Face.Opposite() && higherPriority(prev.Face) {
				allowed = false
			}
			table[turnIndex(prev)][turnIndex(next)] = allowed
		}
	}
	return table
}
