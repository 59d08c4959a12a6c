package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ehrlich-b/cube333/internal/cfen"
	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/solver"
	"github.com/ehrlich-b/cube333/internal/step"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve a scrambled cube using an EO/DR/HTR/FR/Finish reduction pipeline.
The scramble should be provided as a string of moves.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]
		headless, _ := cmd.Flags().GetBool("headless")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")
		stepsFlag, _ := cmd.Flags().GetString("steps")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		c, err := startingCube(startCfen)
		if err != nil {
			fail(headless, "Error parsing starting state: %v\n", err)
		}

		if !headless {
			fmt.Printf("Solving with scramble: %s\n", scramble)
			if startCfen != "" {
				fmt.Printf("Starting from CFEN: %s\n", startCfen)
			}
		}

		moves, err := cube.ParseScramble(scramble)
		if err != nil {
			fail(headless, "Error parsing scramble: %v\n", err)
		}
		c = cube.ApplyAll(c, moves)

		configs, err := step.ParseConfigs(stepsFlag)
		if err != nil {
			fail(headless, "Error parsing --steps: %v\n", err)
		}
		pipelineStage, err := solver.Build(configs)
		if err != nil {
			fail(headless, "Error building solve pipeline: %v\n", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		sol, ok := solver.Solve(ctx, c, pipelineStage)
		elapsed := time.Since(start)
		if !ok {
			fail(headless, "No solution found within the configured step bounds\n")
		}

		final := sol.Apply(c)
		alg := sol.Algorithm()
		moveStr := cube.TurnsToString(cube.OptimizeTurns(alg.Flatten()))

		switch {
		case useCfenOutput:
			fmt.Print(cfen.GenerateCFEN(final))
		case headless:
			fmt.Print(moveStr)
		default:
			fmt.Printf("\n%s\n\n", sol.String())
			fmt.Printf("Solution: %s\n", moveStr)
			fmt.Printf("Move count: %d\n", len(cube.OptimizeTurns(alg.Flatten())))
			fmt.Printf("Time: %v\n", elapsed)
			fmt.Printf("Solved: %t\n", final.IsSolved())
		}
	},
}

// startingCube parses startCfen (if non-empty) into a CubieCube, or
// returns a solved cube.
func startingCube(startCfen string) (cube.CubieCube, error) {
	if startCfen == "" {
		return cube.Solved(), nil
	}
	state, err := cfen.Parse(startCfen)
	if err != nil {
		return cube.CubieCube{}, err
	}
	return state.ToCubieCube()
}

func fail(headless bool, format string, args ...interface{}) {
	if !headless {
		fmt.Printf(format, args...)
	}
	os.Exit(1)
}

func init() {
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Bool("cfen", false, "Output final cube state as CFEN string instead of moves")
	solveCmd.Flags().String("start", "", "Starting cube state as a CFEN string (default: solved)")
	solveCmd.Flags().String("steps", solver.DefaultSteps, "Stage pipeline: kind:key=value:key=value;kind:...")
	solveCmd.Flags().Duration("timeout", 10*time.Second, "Maximum time to search before giving up")
}
