// Package cfen implements Cube Forsyth-Edwards Notation, a compact
// text format for one 3x3x3 facelet state: an orientation pair
// ("WG" = White up, Green front) followed by six run-length-encoded
// faces in U/R/F/D/L/B order, 9 stickers each.
package cfen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ehrlich-b/cube333/internal/cube"
)

// Orientation names which color faces up and which faces front. Only
// the cube's native orientation (White up, Green front) is supported
// for conversion to or from a CubieCube; other orientation strings
// parse but ToCubieCube rejects them (see DESIGN.md).
type Orientation struct {
	Up    cube.Color
	Front cube.Color
}

// NativeOrientation is the only orientation ToCubieCube/FromCubieCube
// currently support.
var NativeOrientation = Orientation{Up: cube.White, Front: cube.Green}

// Face is one 3x3 face's 9 stickers in row-major order, as seen
// looking directly at that face from outside the cube.
type Face struct {
	Stickers [9]cube.Color
}

func (f Face) compactString() string {
	var b strings.Builder
	run := f.Stickers[0]
	count := 1
	flush := func() {
		b.WriteString(run.String())
		if count > 1 {
			b.WriteString(strconv.Itoa(count))
		}
	}
	for i := 1; i < 9; i++ {
		if f.Stickers[i] == run {
			count++
			continue
		}
		flush()
		run, count = f.Stickers[i], 1
	}
	flush()
	return b.String()
}

// State is a complete parsed CFEN value.
type State struct {
	Orientation Orientation
	Faces       [6]Face // U, R, F, D, L, B
}

// String renders a State back to CFEN notation.
func (s State) String() string {
	var b strings.Builder
	b.WriteString(s.Orientation.Up.String())
	b.WriteString(s.Orientation.Front.String())
	b.WriteByte('|')
	for i, f := range s.Faces {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(f.compactString())
	}
	return b.String()
}

var faceTokenRE = regexp.MustCompile(`([WYROGB?])(\d*)`)

// Parse parses a CFEN string into a State.
func Parse(s string) (State, error) {
	parts := strings.SplitN(s, "|", 2)
	if len(parts) != 2 {
		return State{}, fmt.Errorf("cfen: expected \"orientation|faces\", got %q", s)
	}
	orient, err := parseOrientation(parts[0])
	if err != nil {
		return State{}, fmt.Errorf("cfen: orientation: %w", err)
	}
	faceStrs := strings.Split(parts[1], "/")
	if len(faceStrs) != 6 {
		return State{}, fmt.Errorf("cfen: expected 6 faces separated by '/', got %d", len(faceStrs))
	}
	var faces [6]Face
	for i, fs := range faceStrs {
		f, err := parseFace(fs)
		if err != nil {
			return State{}, fmt.Errorf("cfen: face %d: %w", i, err)
		}
		faces[i] = f
	}
	return State{Orientation: orient, Faces: faces}, nil
}

func parseOrientation(s string) (Orientation, error) {
	if len(s) != 2 {
		return Orientation{}, fmt.Errorf("must be exactly 2 characters, got %q", s)
	}
	up, err := parseColor(rune(s[0]))
	if err != nil {
		return Orientation{}, err
	}
	front, err := parseColor(rune(s[1]))
	if err != nil {
		return Orientation{}, err
	}
	return Orientation{Up: up, Front: front}, nil
}

func parseFace(s string) (Face, error) {
	matches := faceTokenRE.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return Face{}, fmt.Errorf("no color tokens in %q", s)
	}
	var reconstructed strings.Builder
	var stickers []cube.Color
	for _, m := range matches {
		reconstructed.WriteString(m[0])
		color, err := parseColor(rune(m[1][0]))
		if err != nil {
			return Face{}, err
		}
		count := 1
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil || n < 1 {
				return Face{}, fmt.Errorf("invalid repeat count %q", m[2])
			}
			count = n
		}
		for i := 0; i < count; i++ {
			stickers = append(stickers, color)
		}
	}
	if reconstructed.String() != s {
		return Face{}, fmt.Errorf("failed to parse entire face string %q", s)
	}
	if len(stickers) != 9 {
		return Face{}, fmt.Errorf("face has %d stickers, want 9", len(stickers))
	}
	var f Face
	copy(f.Stickers[:], stickers)
	return f, nil
}

func parseColor(ch rune) (cube.Color, error) {
	switch ch {
	case 'W':
		return cube.White, nil
	case 'Y':
		return cube.Yellow, nil
	case 'R':
		return cube.Red, nil
	case 'O':
		return cube.Orange, nil
	case 'G':
		return cube.Green, nil
	case 'B':
		return cube.Blue, nil
	case '?':
		return cube.Grey, nil
	default:
		return cube.White, fmt.Errorf("unknown color character %q", ch)
	}
}
