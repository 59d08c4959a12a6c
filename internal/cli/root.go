package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A 3x3x3 Rubik's cube solver",
	Long: `Cube is a 3x3x3 Rubik's cube solver built around a human-style
multi-stage reduction (EO, DR, HTR, FR, Finish) with IDDFS+NISS search.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(showCmd)
}
