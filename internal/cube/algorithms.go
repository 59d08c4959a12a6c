package cube

import "strings"

// Algorithm is the unit solution and search results are expressed in.
// It carries two turn sequences: Normal, played directly, and
// Inverse, played against the inverted cube. This is what lets a
// search interleave moves discovered on the cube with moves
// discovered on its inverse (NISS) into a single move count.
//
// Playing an Algorithm means: apply Normal to the cube, invert the
// cube, apply Inverse, invert the cube again.
type Algorithm struct {
	Normal  []Turn
	Inverse []Turn
}

// Len returns the total move count across both branches.
func (a Algorithm) Len() int {
	return len(a.Normal) + len(a.Inverse)
}

// Apply plays the algorithm against a cube state and returns the
// result.
func (a Algorithm) Apply(c CubieCube) CubieCube {
	c = ApplyAll(c, a.Normal)
	if len(a.Inverse) == 0 {
		return c
	}
	c = Invert(c)
	c = ApplyAll(c, a.Inverse)
	return Invert(c)
}

// Invert returns the algorithm that undoes a. Reversing each branch
// and inverting each turn within it, with each branch kept on its own
// side, undoes the normal/invert/normal/invert sequence Apply plays.
func (a Algorithm) Invert() Algorithm {
	return Algorithm{
		Normal:  reverseInvertTurns(a.Normal),
		Inverse: reverseInvertTurns(a.Inverse),
	}
}

func reverseInvertTurns(turns []Turn) []Turn {
	out := make([]Turn, len(turns))
	for i, t := range turns {
		out[len(turns)-1-i] = t.Invert()
	}
	return out
}

// Flatten concatenates Normal and Inverse into a single slice for
// display or for re-parsing as a straight-line scramble; it is not a
// move sequence that reproduces Apply's effect unless Inverse is
// empty.
func (a Algorithm) Flatten() []Turn {
	out := make([]Turn, 0, a.Len())
	out = append(out, a.Normal...)
	out = append(out, a.Inverse...)
	return out
}

// String renders the algorithm as "normal moves (inverse moves)" when
// both branches are populated, or just the normal moves otherwise.
func (a Algorithm) String() string {
	if len(a.Inverse) == 0 {
		return TurnsToString(a.Normal)
	}
	var b strings.Builder
	b.WriteString(TurnsToString(a.Normal))
	b.WriteString(" (")
	b.WriteString(TurnsToString(a.Inverse))
	b.WriteString(")")
	return b.String()
}

// AlgorithmFromMoves wraps a plain move sequence (no NISS branch) as
// an Algorithm.
func AlgorithmFromMoves(turns []Turn) Algorithm {
	return Algorithm{Normal: turns}
}

// Transform rewrites every move of both branches as the turn a
// whole-cube rotation by tr carries it to, the way a pre-transformed
// stage's emitted algorithm is brought back into the caller's frame
// (spec.md section 4.6 step 6).
func (a Algorithm) Transform(tr Transformation) Algorithm {
	out := Algorithm{Normal: make([]Turn, len(a.Normal)), Inverse: make([]Turn, len(a.Inverse))}
	for i, t := range a.Normal {
		out.Normal[i] = t.Transform(tr)
	}
	for i, t := range a.Inverse {
		out.Inverse[i] = t.Transform(tr)
	}
	return out
}
