package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ehrlich-b/cube333/internal/solver"
	"github.com/ehrlich-b/cube333/internal/stats"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [count]",
	Short: "Solve a batch of random scrambles and report length statistics",
	Long: `Analyze generates count random scrambles, solves each with the
configured step pipeline, and reports the resulting solution-length
distribution (mean, standard deviation). Pass --histogram to also
render the distribution to an SVG file.

Examples:
  cube analyze 50
  cube analyze 200 --histogram lengths.svg`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count := 25
		if len(args) == 1 {
			if _, err := fmt.Sscanf(args[0], "%d", &count); err != nil || count <= 0 {
				return fmt.Errorf("invalid count %q", args[0])
			}
		}

		scrambleLen, _ := cmd.Flags().GetInt("scramble-length")
		stepsFlag, _ := cmd.Flags().GetString("steps")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		histogramPath, _ := cmd.Flags().GetString("histogram")

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		samples, err := stats.Run(ctx, rng, count, scrambleLen, stepsFlag)
		if err != nil {
			return err
		}

		summary := stats.Summarize(samples)
		fmt.Printf("Solved %d/%d scrambles\n", summary.Solved, summary.Count)
		if summary.Solved > 0 {
			fmt.Printf("Mean length:   %.2f\n", summary.Mean)
			fmt.Printf("Std deviation: %.2f\n", summary.StdDev)
		}

		if histogramPath != "" {
			if err := stats.PlotHistogram(samples, histogramPath); err != nil {
				return fmt.Errorf("error rendering histogram: %w", err)
			}
			fmt.Printf("Histogram written to %s\n", histogramPath)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Int("scramble-length", 20, "Number of moves per random scramble")
	analyzeCmd.Flags().String("steps", solver.DefaultSteps, "Stage pipeline: kind:key=value:key=value;kind:...")
	analyzeCmd.Flags().Duration("timeout", 30*time.Second, "Maximum total time to search across the whole batch")
	analyzeCmd.Flags().String("histogram", "", "Render a solution-length histogram to this SVG path")
	rootCmd.AddCommand(analyzeCmd)
}
