package pruning

import (
	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/moveset"
)

// NissTable packs two distances per coordinate into one byte: the
// low nibble is the ordinary distance (as Table would store), the
// high nibble is the distance assuming the first move of the
// remaining solve is played on the inverse cube. A Searcher in NISS
// "always" mode consults both nibbles and takes the lesser as its
// admissible bound, letting it switch to the inverse at the root
// without losing prunability.
type NissTable struct {
	Size   int
	packed []byte
}

// Get returns (normalDist, inverseFirstDist), either -1 if unvisited.
func (t *NissTable) Get(c int) (int, int) {
	b := t.packed[c]
	lo := int(b & 0x0F)
	hi := int(b >> 4)
	if lo == Sentinel4 {
		lo = -1
	}
	if hi == Sentinel4 {
		hi = -1
	}
	return lo, hi
}

func (t *NissTable) setLo(c, d int) {
	t.packed[c] = t.packed[c]&0xF0 | byte(d)&0x0F
}

func (t *NissTable) setHi(c, d int) {
	t.packed[c] = t.packed[c]&0x0F | byte(d)<<4
}

// BuildNISS constructs the normal-distance nibble exactly as Build
// does, then fills the inverse-first nibble by running one extra BFS
// layer from every distance-1 state: for each state s one move away
// from solved, the inverse-first distance of cube.Invert(s)'s
// coordinate is 1, propagated outward the same way.
func BuildNISS(size int, coordFn CoordFunc, seed cube.CubieCube, ms moveset.MoveSet) *NissTable {
	t := &NissTable{Size: size, packed: make([]byte, size)}
	for i := range t.packed {
		t.packed[i] = 0xFF
	}

	visitedLo := make([]bool, size)
	zeroCoset := closeUnderAux(seed, coordFn, ms, visitedLo)
	for _, c := range zeroCoset {
		t.setLo(coordFn(c), 0)
	}
	frontier := zeroCoset
	moves := ms.AllMoves()
	for depth := 0; len(frontier) > 0; depth++ {
		var next []cube.CubieCube
		for _, st := range frontier {
			for _, mv := range moves {
				ns := st.Turn(mv)
				c := coordFn(ns)
				if visitedLo[c] {
					continue
				}
				visitedLo[c] = true
				t.setLo(c, depth+1)
				next = append(next, ns)
			}
		}
		frontier = next
	}

	visitedHi := make([]bool, size)
	hiSeedCoset := closeUnderAux(seed, coordFn, ms, visitedHi)
	for _, c := range hiSeedCoset {
		t.setHi(coordFn(c), 0)
	}
	var hiFrontier []cube.CubieCube
	for _, st := range hiSeedCoset {
		for _, mv := range moves {
			inv := cube.Invert(st)
			ns := inv.Turn(mv)
			back := cube.Invert(ns)
			c := coordFn(back)
			if visitedHi[c] {
				continue
			}
			visitedHi[c] = true
			t.setHi(c, 1)
			hiFrontier = append(hiFrontier, back)
		}
	}
	for depth := 1; len(hiFrontier) > 0; depth++ {
		var next []cube.CubieCube
		for _, st := range hiFrontier {
			for _, mv := range moves {
				ns := st.Turn(mv)
				c := coordFn(ns)
				if visitedHi[c] {
					continue
				}
				visitedHi[c] = true
				t.setHi(c, depth+1)
				next = append(next, ns)
			}
		}
		hiFrontier = next
	}

	return t
}
