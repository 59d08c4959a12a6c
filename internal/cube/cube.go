package cube

import (
	"math/rand"

	"github.com/gtank/blake2/blake2b"
)

// Color represents a sticker color, used only by the facelet printer
// (internal/cfen) to render a CubieCube as a human-readable sticker
// string.
type Color int

const (
	White Color = iota
	Yellow
	Red
	Orange
	Blue
	Green
	// Grey is the CFEN wildcard color ('?'): it never appears on an
	// actual cube and matches any color when comparing a pattern
	// against a real state.
	Grey
)

func (c Color) String() string {
	if c == Grey {
		return "?"
	}
	return []string{"W", "Y", "R", "O", "B", "G"}[c]
}

// ColoredString returns a muted ANSI-colored single-character string.
func (c Color) ColoredString() string {
	colors := []string{
		"\033[37mW\033[0m",
		"\033[33mY\033[0m",
		"\033[31mR\033[0m",
		"\033[35mO\033[0m",
		"\033[34mB\033[0m",
		"\033[32mG\033[0m",
	}
	return colors[c]
}

// UnicodeString returns a colored Unicode square representation.
func (c Color) UnicodeString() string {
	squares := []string{"⬜", "🟨", "🟥", "🟧", "🟦", "🟩"}
	return squares[c]
}

// NewSolved returns a solved CubieCube. Kept as a thin alias of
// Solved so callers reading the CLI layer see the same naming the
// teacher used for its cube constructor.
func NewSolved() CubieCube {
	return Solved()
}

// Invert returns the inverse cube: a piece with id k at position p
// becomes a piece with id p at position k, since the position/id
// numbering is shared between cube and inverse cube. Corner CO 1 and
// 2 swap; edge orientation bits carry over unchanged.
func Invert(c CubieCube) CubieCube {
	var out CubieCube
	for pos := 0; pos < 8; pos++ {
		id := c.CornerID(pos)
		co := c.CornerOrientation(pos)
		invCO := co
		if co == 1 {
			invCO = 2
		} else if co == 2 {
			invCO = 1
		}
		out.Corners[id] = byte(pos)<<cornerIDShift | invCO
	}
	for pos := 0; pos < 12; pos++ {
		id := c.EdgeID(pos)
		eo := c.Edges[pos] & edgeEOMask
		out.Edges[id] = byte(pos)<<edgeIDShift | eo
	}
	return out
}

// Hash returns a blake2b-256 digest of the cube's 20 labelled bytes, a
// fixed-size identity for a cube state. FilterDup and the pruning-table
// builder do not use it: they key on solution.Solution.Key and on
// coordinates respectively.
func (c CubieCube) Hash() [32]byte {
	buf := make([]byte, 20)
	copy(buf[:8], c.Corners[:])
	copy(buf[8:], c.Edges[:])

	d, err := blake2b.NewDigest(nil, nil, nil, 32)
	if err != nil {
		panic(err)
	}
	d.Write(buf)

	var out [32]byte
	copy(out[:], d.Sum(nil))
	return out
}

// RandomState returns a uniformly random (not necessarily solvable
// from a physical cube) CubieCube, for exercising coordinate and
// pruning-table code against arbitrary byte patterns. RandomScramble
// below is the one that produces physically reachable states.
func RandomState(rng *rand.Rand) CubieCube {
	var c CubieCube
	cids := rng.Perm(8)
	for i := 0; i < 8; i++ {
		c.Corners[i] = byte(cids[i])<<cornerIDShift | byte(rng.Intn(3))
	}
	eids := rng.Perm(12)
	for i := 0; i < 12; i++ {
		eo := byte(0)
		if rng.Intn(2) == 1 {
			eo |= edgeUDBit
		}
		if rng.Intn(2) == 1 {
			eo |= edgeFBBit
		}
		if rng.Intn(2) == 1 {
			eo |= edgeRLBit
		}
		c.Edges[i] = byte(eids[i])<<edgeIDShift | eo
	}
	return c
}

// RandomScramble returns a random algorithm of n turns with no two
// consecutive turns sharing an axis, and applies it to a solved cube.
func RandomScramble(rng *rand.Rand, n int) ([]Turn, CubieCube) {
	turns := make([]Turn, 0, n)
	c := Solved()
	var last Turn
	have := false
	all := AllTurns()
	for len(turns) < n {
		t := all[rng.Intn(len(all))]
		if have && t.SameAxis(last) {
			continue
		}
		turns = append(turns, t)
		c = c.Turn(t)
		last = t
		have = true
	}
	return turns, c
}
