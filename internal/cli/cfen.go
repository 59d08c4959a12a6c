package cli

import (
	"fmt"

	"github.com/ehrlich-b/cube333/internal/cfen"
	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/spf13/cobra"
)

var parseCfenCmd = &cobra.Command{
	Use:   "parse-cfen <cfen-string>",
	Short: "Parse and display a CFEN string as a cube state",
	Long: `Parse a CFEN (Cube Forsyth-Edwards Notation) string and display the resulting cube state.

Examples:
  cube parse-cfen "WG|W9/R9/G9/Y9/O9/B9"                    # Solved cube
  cube parse-cfen "WG|?W?WWW?W?/R9/G9/Y9/O9/B9"             # White cross only`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfenStr := args[0]
		state, err := cfen.Parse(cfenStr)
		if err != nil {
			return fmt.Errorf("failed to parse CFEN: %w", err)
		}
		c, err := state.ToCubieCube()
		if err != nil {
			return fmt.Errorf("failed to convert CFEN to cube: %w", err)
		}

		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")

		fmt.Printf("CFEN: %s\n", cfenStr)
		fmt.Printf("Orientation: %s up, %s front\n", state.Orientation.Up, state.Orientation.Front)
		fmt.Printf("Solved: %t\n\n", c.IsSolved())
		fmt.Print(unfoldedString(c, useColor, useLetters))
		return nil
	},
}

var generateCfenCmd = &cobra.Command{
	Use:   "generate-cfen <scramble>",
	Short: "Apply scramble moves and output the resulting CFEN string",
	Long: `Apply a scramble sequence to a cube and output the resulting state as a CFEN string.

Examples:
  cube generate-cfen "R U R' U'"
  cube generate-cfen "R U R' U'" --start "WG|..."`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble := args[0]
		startCfen, _ := cmd.Flags().GetString("start")

		c, err := startingCube(startCfen)
		if err != nil {
			return fmt.Errorf("invalid starting CFEN: %w", err)
		}
		if scramble != "" {
			moves, err := cube.ParseScramble(scramble)
			if err != nil {
				return fmt.Errorf("invalid scramble: %w", err)
			}
			c = cube.ApplyAll(c, moves)
		}
		fmt.Println(cfen.GenerateCFEN(c))
		return nil
	},
}

var verifyCfenCmd = &cobra.Command{
	Use:   "verify-cfen <scramble> <solution> --target <cfen>",
	Short: "Verify that a solution reaches the target CFEN state",
	Long: `Apply a scramble and solution, then verify the result matches the target
CFEN pattern. Supports wildcard matching where '?' positions are ignored.

Examples:
  cube verify-cfen "R U R' U'" "U R U' R'" --target "WG|W9/R9/G9/Y9/O9/B9"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble, solution := args[0], args[1]

		targetCfen, _ := cmd.Flags().GetString("target")
		if targetCfen == "" {
			return fmt.Errorf("--target flag is required")
		}
		target, err := cfen.Parse(targetCfen)
		if err != nil {
			return fmt.Errorf("invalid target CFEN: %w", err)
		}

		c := cube.Solved()
		for _, moveStr := range []string{scramble, solution} {
			if moveStr == "" {
				continue
			}
			moves, err := cube.ParseScramble(moveStr)
			if err != nil {
				return fmt.Errorf("invalid moves %q: %w", moveStr, err)
			}
			c = cube.ApplyAll(c, moves)
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		if target.Matches(c) {
			fmt.Println("PASS: solution matches target CFEN pattern")
			if verbose {
				fmt.Printf("Target:  %s\n", targetCfen)
				fmt.Printf("Actual:  %s\n", cfen.GenerateCFEN(c))
			}
			return nil
		}
		fmt.Println("FAIL: solution does not match target CFEN pattern")
		if verbose {
			fmt.Printf("Target:  %s\n", targetCfen)
			fmt.Printf("Actual:  %s\n", cfen.GenerateCFEN(c))
		}
		return fmt.Errorf("verification failed")
	},
}

var matchCfenCmd = &cobra.Command{
	Use:   "match-cfen <current-cfen> <target-cfen>",
	Short: "Compare two CFEN strings and report whether they match",
	Long: `Compare two CFEN strings, treating '?' positions in the target as
wildcards.

Examples:
  cube match-cfen "WG|W9/R9/G9/Y9/O9/B9" "WG|W9/R9/G9/Y9/O9/B9"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		currentCfen, targetCfen := args[0], args[1]

		current, err := cfen.Parse(currentCfen)
		if err != nil {
			return fmt.Errorf("invalid current CFEN: %w", err)
		}
		target, err := cfen.Parse(targetCfen)
		if err != nil {
			return fmt.Errorf("invalid target CFEN: %w", err)
		}
		currentCube, err := current.ToCubieCube()
		if err != nil {
			return fmt.Errorf("failed to convert current CFEN to cube: %w", err)
		}

		if target.Matches(currentCube) {
			fmt.Println("MATCH: current state matches target pattern")
		} else {
			fmt.Println("NO MATCH: current state does not match target pattern")
		}
		fmt.Printf("Current: %s\n", currentCfen)
		fmt.Printf("Target:  %s\n", targetCfen)
		return nil
	},
}

func init() {
	parseCfenCmd.Flags().Bool("color", false, "Use colored output")
	parseCfenCmd.Flags().Bool("letters", false, "Use colored letters instead of blocks")

	generateCfenCmd.Flags().String("start", "", "Starting CFEN state (default: solved)")

	verifyCfenCmd.Flags().String("target", "", "Target CFEN pattern (required)")
	verifyCfenCmd.Flags().Bool("verbose", false, "Show detailed comparison")
	verifyCfenCmd.MarkFlagRequired("target")

	rootCmd.AddCommand(parseCfenCmd)
	rootCmd.AddCommand(generateCfenCmd)
	rootCmd.AddCommand(verifyCfenCmd)
	rootCmd.AddCommand(matchCfenCmd)
}
