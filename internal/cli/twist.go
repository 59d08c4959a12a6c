package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/cube333/internal/cfen"
	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a cube and display the result",
	Long: `Apply a sequence of moves to a cube and display the resulting state.
This command does not solve the cube - it just applies the moves and shows
the result. Perfect for learning algorithms, exploring patterns, and
visualization.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --color`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves := args[0]
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")

		c, err := startingCube(startCfen)
		if err != nil {
			fmt.Printf("Error parsing starting CFEN: %v\n", err)
			os.Exit(1)
		}

		if !useCfenOutput {
			fmt.Printf("Applying moves: %s\n", moves)
			if startCfen != "" {
				fmt.Printf("Starting from CFEN: %s\n", startCfen)
			}
		}

		parsedMoves, err := cube.ParseScramble(moves)
		if err != nil {
			if !useCfenOutput {
				fmt.Printf("Error parsing moves: %v\n", err)
			}
			os.Exit(1)
		}
		c = cube.ApplyAll(c, parsedMoves)

		if useCfenOutput {
			fmt.Print(cfen.GenerateCFEN(c))
			return
		}

		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")

		fmt.Printf("\nCube state after applying moves:\n%s\n", unfoldedString(c, useColor, useLetters))
		fmt.Printf("Moves applied: %d\n", len(parsedMoves))
		if c.IsSolved() {
			fmt.Println("Status: SOLVED")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}

func init() {
	twistCmd.Flags().BoolP("color", "c", false, "Use colored output (Unicode blocks by default)")
	twistCmd.Flags().Bool("letters", false, "Use colored letters instead of Unicode blocks when using --color")
	twistCmd.Flags().Bool("cfen", false, "Output final cube state as CFEN string")
	twistCmd.Flags().String("start", "", "Starting cube state as CFEN string (default: solved)")
}
