package step

import (
	"fmt"
	"strings"

	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/moveset"
)

// Trigger is a short, named finishing move sequence a hand-method DR
// solve converges onto (spec.md section 4.8, e.g. "R U2 R"): registered
// on a DR Variant via WithTriggers so the Searcher narrows its move set
// once few enough moves remain to play one, and so completed solutions
// can be checked for ending on one.
type Trigger struct {
	Name  string
	Moves []cube.Turn
}

// ParseTriggers reads the comma-separated `triggers=` stage-config
// value (spec.md section 6) into a Trigger list.
func ParseTriggers(spec string) ([]Trigger, error) {
	var out []Trigger
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		turns, err := cube.ParseScramble(part)
		if err != nil {
			return nil, fmt.Errorf("parsing trigger %q: %w", part, err)
		}
		out = append(out, Trigger{Name: part, Moves: turns})
	}
	return out, nil
}

func triggerMoveFaces(triggers []Trigger) []cube.Turn {
	seen := map[cube.Turn]bool{}
	var out []cube.Turn
	for _, tr := range triggers {
		for _, t := range tr.Moves {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// endsWithTrigger reports whether alg's flattened move sequence ends
// with one of triggers, in either played direction (a trigger and its
// mirror both count, since DR symmetry makes `R U2 R` and `R' U2 R'`
// equally valid finishers).
func endsWithTrigger(alg cube.Algorithm, triggers []Trigger) bool {
	moves := alg.Flatten()
	for _, tr := range triggers {
		if len(tr.Moves) == 0 || len(tr.Moves) > len(moves) {
			continue
		}
		tail := moves[len(moves)-len(tr.Moves):]
		if turnsEqual(tail, tr.Moves) {
			return true
		}
		mirrored := make([]cube.Turn, len(tr.Moves))
		for i, t := range tr.Moves {
			mirrored[i] = t.Invert()
		}
		if turnsEqual(tail, mirrored) {
			return true
		}
	}
	return false
}

func turnsEqual(a, b []cube.Turn) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// WithTriggers narrows a DR Variant's move set to the configured
// triggers' own moves once depthLeft drops to the longest registered
// trigger's length or below, and requires every emitted solution to end
// on one of them. Above that depth the Variant's original (broader)
// move set is used unchanged, matching the two-tier precheck spec.md
// section 4.8 describes.
func WithTriggers(triggers []Trigger) VariantOption {
	maxLen := 0
	for _, tr := range triggers {
		if len(tr.Moves) > maxLen {
			maxLen = len(tr.Moves)
		}
	}
	narrow := triggerMoveFaces(triggers)
	return func(g *generic) {
		base := g.moveSetFn
		g.moveSetFn = func(c cube.CubieCube, depthLeft int) moveset.MoveSet {
			if depthLeft <= maxLen {
				return moveset.New(narrow, nil)
			}
			return base(c, depthLeft)
		}
		g.admiss = append(g.admiss, func(_ cube.CubieCube, alg cube.Algorithm) bool {
			return endsWithTrigger(alg, triggers)
		})
	}
}
