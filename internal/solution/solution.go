// Package solution defines the accumulated-result type that flows
// through the search and pipeline layers: an ordered list of
// per-stage frames plus the NISS branch the next stage should extend.
package solution

import (
	"strings"

	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/gtank/blake2/blake2b"
)

// Kind names a solving stage, matching the external config surface
// (spec.md section 6's `kind` enum).
type Kind int

const (
	EO Kind = iota
	RZP
	AR
	DR
	HTR
	FR
	FRLS
	FIN
	FINLS
)

func (k Kind) String() string {
	switch k {
	case EO:
		return "EO"
	case RZP:
		return "RZP"
	case AR:
		return "AR"
	case DR:
		return "DR"
	case HTR:
		return "HTR"
	case FR:
		return "FR"
	case FRLS:
		return "FRLS"
	case FIN:
		return "FIN"
	case FINLS:
		return "FINLS"
	default:
		return "?"
	}
}

// ParseKind parses a stage-kind token from the config surface.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToUpper(s) {
	case "EO":
		return EO, true
	case "RZP":
		return RZP, true
	case "AR":
		return AR, true
	case "DR":
		return DR, true
	case "HTR":
		return HTR, true
	case "FR":
		return FR, true
	case "FRLS":
		return FRLS, true
	case "FIN":
		return FIN, true
	case "FINLS":
		return FINLS, true
	default:
		return 0, false
	}
}

// Frame is one completed stage of a solution: which stage kind and
// named variant produced it, the algorithm played, and a free-text
// comment a StepVariant may attach (e.g. the matched DR subset name).
type Frame struct {
	Kind    Kind
	Variant string
	Alg     cube.Algorithm
	Comment string
}

// Solution is the value that streams through the pipeline: every
// frame committed so far, plus which branch (normal or inverse) the
// next stage's extension should be considered to continue from. A
// fresh Solution always ends on normal; EndsOnNormal only matters
// while a frame's own Algorithm is being built frame to frame, since
// each Frame's Algorithm is already resolved to the caller's frame
// (spec.md section 4.6 step 6) by the time it's appended here.
type Solution struct {
	Frames       []Frame
	EndsOnNormal bool
}

// Empty returns the seed value the first pipeline stage starts from.
func Empty() Solution {
	return Solution{EndsOnNormal: true}
}

// Len returns the total move count across every frame.
func (s Solution) Len() int {
	total := 0
	for _, f := range s.Frames {
		total += f.Alg.Len()
	}
	return total
}

// WithFrame returns a copy of s with f appended. The frame slice is
// copied so concurrent pipeline stages sharing an input Solution never
// alias each other's extensions.
func (s Solution) WithFrame(f Frame) Solution {
	frames := make([]Frame, len(s.Frames)+1)
	copy(frames, s.Frames)
	frames[len(s.Frames)] = f
	return Solution{Frames: frames, EndsOnNormal: f.Alg.Len() == 0 || len(f.Alg.Inverse) == 0}
}

// Apply plays every frame's algorithm against c in order and returns
// the result.
func (s Solution) Apply(c cube.CubieCube) cube.CubieCube {
	for _, f := range s.Frames {
		c = f.Alg.Apply(c)
	}
	return c
}

// Algorithm flattens every frame into one Algorithm, normal branches
// concatenated in stage order followed by inverse branches in stage
// order. This loses which stage each inverse move belongs to, which
// is fine for display and for re-parsing as a scramble fix, but
// Solution.Apply (stage by stage) is the authority for replaying a
// Solution exactly.
func (s Solution) Algorithm() cube.Algorithm {
	var alg cube.Algorithm
	for _, f := range s.Frames {
		alg.Normal = append(alg.Normal, f.Alg.Normal...)
		alg.Inverse = append(alg.Inverse, f.Alg.Inverse...)
	}
	return alg
}

// String renders each frame as "KIND(variant): moves", one per line.
func (s Solution) String() string {
	if len(s.Frames) == 0 {
		return "(empty)"
	}
	var b strings.Builder
	for i, f := range s.Frames {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.Kind.String())
		if f.Variant != "" {
			b.WriteByte('(')
			b.WriteString(f.Variant)
			b.WriteByte(')')
		}
		b.WriteString(": ")
		b.WriteString(f.Alg.String())
		if f.Comment != "" {
			b.WriteString("  # ")
			b.WriteString(f.Comment)
		}
	}
	return b.String()
}

// Key returns a blake2b-256 digest of the full move sequence (frame by
// frame, that frame's normal moves then its inverse moves, each as a
// notation string followed by a newline), the equality FilterDup dedups on
// (spec.md section 5: "a terminal FilterDup predicate deduplicates by
// full algorithm equality"), following the same digest-for-identity
// pattern as cube.CubieCube.Hash.
func (s Solution) Key() [32]byte {
	d, err := blake2b.NewDigest(nil, nil, nil, 32)
	if err != nil {
		panic(err)
	}
	for _, f := range s.Frames {
		d.Write([]byte(cube.TurnsToString(f.Alg.Normal)))
		d.Write([]byte{'\n'})
		d.Write([]byte(cube.TurnsToString(f.Alg.Inverse)))
		d.Write([]byte{'\n'})
	}
	var out [32]byte
	copy(out[:], d.Sum(nil))
	return out
}

// FullAlgString renders the whole solution as one flat move string,
// the normal and inverse branches of Algorithm() joined the way
// cube.Algorithm.String does for a single frame.
func (s Solution) FullAlgString() string {
	return s.Algorithm().String()
}
