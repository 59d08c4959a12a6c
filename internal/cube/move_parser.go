package cube

import (
	"fmt"
	"strings"
)

// ParseTurn parses a single face-turn token: R, U', F2, and so on.
// Slice moves (M/E/S) and wide moves are not part of the HTM move set
// this solver searches over and are rejected.
func ParseTurn(notation string) (Turn, error) {
	notation = strings.TrimSpace(notation)
	if len(notation) == 0 {
		return Turn{}, fmt.Errorf("empty move notation")
	}

	dir := Clockwise
	face := notation[:1]
	rest := notation[1:]
	switch rest {
	case "":
		dir = Clockwise
	case "'":
		dir = CounterClockwise
	case "2":
		dir = Half
	default:
		return Turn{}, fmt.Errorf("unknown move notation: %s", notation)
	}

	var f Face
	switch face {
	case "U":
		f = Up
	case "D":
		f = Down
	case "F":
		f = Front
	case "B":
		f = Back
	case "L":
		f = Left
	case "R":
		f = Right
	default:
		return Turn{}, fmt.Errorf("unknown move notation: %s", notation)
	}

	return Turn{Face: f, Direction: dir}, nil
}

// ParseTurns parses a space-separated sequence of face turns.
func ParseTurns(sequence string) ([]Turn, error) {
	sequence = strings.TrimSpace(sequence)
	if len(sequence) == 0 {
		return []Turn{}, nil
	}

	parts := strings.Fields(sequence)
	turns := make([]Turn, 0, len(parts))
	for _, part := range parts {
		t, err := ParseTurn(part)
		if err != nil {
			return nil, fmt.Errorf("parsing move %q: %w", part, err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// ParseScramble is an alias for ParseTurns kept for CLI readability.
func ParseScramble(sequence string) ([]Turn, error) {
	return ParseTurns(sequence)
}

// TurnsToString renders a turn sequence as space-separated notation.
func TurnsToString(turns []Turn) string {
	var b strings.Builder
	for i, t := range turns {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
