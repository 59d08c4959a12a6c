package cube

import "testing"

func TestSolvedIsSolved(t *testing.T) {
	if !Solved().IsSolved() {
		t.Fatal("Solved() cube reports not solved")
	}
}

func TestFaceFourTimesIsIdentity(t *testing.T) {
	for f := Up; f <= Right; f++ {
		c := Solved()
		for i := 0; i < 4; i++ {
			c = c.Turn(Turn{Face: f, Direction: Clockwise})
		}
		if !c.Equal(Solved()) {
			t.Errorf("four %s turns did not return to solved", f)
		}
	}
}

func TestHalfTurnTwiceIsIdentity(t *testing.T) {
	for f := Up; f <= Right; f++ {
		c := Solved()
		c = c.Turn(Turn{Face: f, Direction: Half})
		c = c.Turn(Turn{Face: f, Direction: Half})
		if !c.Equal(Solved()) {
			t.Errorf("two %s2 turns did not return to solved", f)
		}
	}
}

func TestTurnThenInverse(t *testing.T) {
	for _, turn := range AllTurns() {
		c := Solved().Turn(turn).Turn(turn.Invert())
		if !c.Equal(Solved()) {
			t.Errorf("%s then %s did not return to solved", turn, turn.Invert())
		}
	}
}

// Mirrors the commutator checks a reference cubie-level implementation
// runs on itself: [a, b] repeated six times, as half turns or as
// quarter turns, always returns to solved for any two distinct faces.
func TestHalfTurnCommutatorSixTimes(t *testing.T) {
	for a := Up; a <= Right; a++ {
		for b := Up; b <= Right; b++ {
			if a == b {
				continue
			}
			c := Solved()
			for i := 0; i < 6; i++ {
				c = c.Turn(Turn{Face: a, Direction: Half})
				c = c.Turn(Turn{Face: b, Direction: Half})
			}
			if !c.Equal(Solved()) {
				t.Errorf("six [%s2,%s2] did not return to solved", a, b)
			}
		}
	}
}

func TestQuarterTurnCommutatorSixTimes(t *testing.T) {
	for a := Up; a <= Right; a++ {
		for b := Up; b <= Right; b++ {
			if a == b {
				continue
			}
			c := Solved()
			for i := 0; i < 6; i++ {
				c = c.Turn(Turn{Face: a, Direction: Clockwise})
				c = c.Turn(Turn{Face: b, Direction: Clockwise})
				c = c.Turn(Turn{Face: a, Direction: CounterClockwise})
				c = c.Turn(Turn{Face: b, Direction: CounterClockwise})
			}
			if !c.Equal(Solved()) {
				t.Errorf("six [%s,%s,%s',%s'] did not return to solved", a, b, a, b)
			}
		}
	}
}

func TestTPermFourTimes(t *testing.T) {
	moves, err := ParseTurns("R U R' U' R' F R2 U' R' U' R U R' F'")
	if err != nil {
		t.Fatalf("parsing T-perm: %v", err)
	}
	c := Solved()
	for i := 0; i < 4; i++ {
		c = ApplyAll(c, moves)
		c = c.Turn(Turn{Face: Up, Direction: Half})
	}
	if !c.Equal(Solved()) {
		t.Fatal("T-perm applied four times (with U2 separators) did not return to solved")
	}
}

func TestTransformRoundTrip(t *testing.T) {
	for axis := AxisX; axis <= AxisZ; axis++ {
		for _, d := range []Direction{Clockwise, Half, CounterClockwise} {
			c := Solved().Transform(Transformation{Axis: axis, Direction: d})
			c = c.Transform(Transformation{Axis: axis, Direction: d.Invert()})
			if !c.Equal(Solved()) {
				t.Errorf("transform %s%s then its inverse did not return to solved", axis, d.suffix())
			}
		}
	}
}

func TestTransformPreservesSolvedness(t *testing.T) {
	scramble, _ := ParseTurns("R U R' U' R' F R2 U' R' U' R U R' F'")
	base := ApplyAll(Solved(), scramble)
	for axis := AxisX; axis <= AxisZ; axis++ {
		rotated := base.Transform(Transformation{Axis: axis, Direction: Clockwise})
		back := rotated.Transform(Transformation{Axis: axis, Direction: CounterClockwise})
		if !back.Equal(base) {
			t.Errorf("transform %s round trip changed the cube", axis)
		}
	}
}

func TestAlgorithmInverseRoundTrip(t *testing.T) {
	normal, _ := ParseTurns("R U R' U'")
	inverse, _ := ParseTurns("F R U R'")
	alg := Algorithm{Normal: normal, Inverse: inverse}

	c := alg.Apply(Solved())
	c = alg.Invert().Apply(c)
	if !c.Equal(Solved()) {
		t.Fatal("algorithm followed by its inverse did not return to solved")
	}
}

func TestOptimizeTurnsCancels(t *testing.T) {
	turns, _ := ParseTurns("R R R R")
	if !IsCancellingSequence(turns) {
		t.Fatal("R R R R should cancel to nothing")
	}
	turns, _ = ParseTurns("R R")
	got := OptimizeTurns(turns)
	want := []Turn{{Face: Right, Direction: Half}}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("R R should optimize to R2, got %v", got)
	}
}
