package cli

import (
	"fmt"
	"strings"

	"github.com/ehrlich-b/cube333/internal/cfen"
	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show cube state as an unfolded facelet diagram",
	Long: `Show displays the cube state after applying a scramble, unfolded
into a flat U/L-F-R-B/D cross.

Examples:
  cube show "R U R' U'"
  cube show "R U R' U'" --color`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}

		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")

		c := cube.Solved()
		if scramble != "" {
			moves, err := cube.ParseScramble(scramble)
			if err != nil {
				fmt.Printf("Error parsing scramble: %v\n", err)
				return
			}
			c = cube.ApplyAll(c, moves)
			fmt.Printf("Cube state after scramble: %s\n\n", scramble)
		} else {
			fmt.Println("Solved cube state:")
		}

		fmt.Print(unfoldedString(c, useColor, useLetters))
	},
}

// unfoldedString renders c as a flat net: U on top, L/F/R/B in a row,
// D on the bottom, the layout every other cube CLI uses for a
// one-glance state check.
func unfoldedString(c cube.CubieCube, useColor bool, useLetters bool) string {
	state := cfen.FromCubieCube(c)
	sticker := func(f cfen.Face, row, col int) string {
		color := f.Stickers[row*3+col]
		if useColor && !useLetters {
			return color.UnicodeString()
		}
		if useColor {
			return color.ColoredString()
		}
		return color.String()
	}

	const faceU, faceR, faceF, faceD, faceL, faceB = 0, 1, 2, 3, 4, 5
	pad := strings.Repeat("   ", 3)

	var b strings.Builder
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(state.Faces[faceU], row, col))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	for row := 0; row < 3; row++ {
		for _, face := range []int{faceL, faceF, faceR, faceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(sticker(state.Faces[face], row, col))
				b.WriteByte(' ')
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(state.Faces[faceD], row, col))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func init() {
	showCmd.Flags().BoolP("color", "c", false, "Use colored output (Unicode blocks by default)")
	showCmd.Flags().Bool("letters", false, "Use colored letters instead of Unicode blocks when using --color")
}
