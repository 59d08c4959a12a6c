// Package stats gathers solve-length distributions across random
// scrambles, the way the teacher's algorithm-database tooling used to
// aggregate move-count statistics before charting them.
package stats

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/solver"
	"github.com/ehrlich-b/cube333/internal/step"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Sample is one scramble's outcome: the scramble applied and the
// optimized move count of the solution found, or ok=false if no
// solution was found within the pipeline's bounds.
type Sample struct {
	Scramble string
	Length   int
	OK       bool
}

// Run generates count random scrambles of scrambleLen turns each,
// solves each against the same pipeline configuration, and returns
// one Sample per scramble.
func Run(ctx context.Context, rng *rand.Rand, count, scrambleLen int, stepsFlag string) ([]Sample, error) {
	configs, err := step.ParseConfigs(stepsFlag)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	samples := make([]Sample, count)
	for i := range samples {
		top, err := solver.Build(configs)
		if err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
		turns, c := cube.RandomScramble(rng, scrambleLen)

		sol, ok := solver.Solve(ctx, c, top)
		samples[i] = Sample{Scramble: cube.TurnsToString(turns)}
		if ok {
			samples[i].Length = len(cube.OptimizeTurns(sol.Algorithm().Flatten()))
			samples[i].OK = true
		}
	}
	return samples, nil
}

// Summary is the mean and standard deviation of the solved samples'
// lengths, computed the way gonum/stat's unweighted Mean/StdDev pair
// is normally called together.
type Summary struct {
	Count  int
	Solved int
	Mean   float64
	StdDev float64
}

// Summarize reduces samples to a Summary, ignoring unsolved entries.
func Summarize(samples []Sample) Summary {
	var lengths []float64
	for _, s := range samples {
		if s.OK {
			lengths = append(lengths, float64(s.Length))
		}
	}
	sm := Summary{Count: len(samples), Solved: len(lengths)}
	if len(lengths) == 0 {
		return sm
	}
	sm.Mean = stat.Mean(lengths, nil)
	sm.StdDev = stat.StdDev(lengths, nil)
	return sm
}

// PlotHistogram renders a histogram of solved samples' lengths to
// path, mirroring how plotter.NewHist feeds a plotter.Values into a
// plot.Plot before saving it. Plot.Save picks its output backend
// (vg/vgsvg, vg/vgimg, ...) from path's extension; an ".svg" path
// renders through gonum's SVG backend with no extra wiring needed.
func PlotHistogram(samples []Sample, path string) error {
	var values plotter.Values
	for _, s := range samples {
		if s.OK {
			values = append(values, float64(s.Length))
		}
	}
	if len(values) == 0 {
		return fmt.Errorf("stats: no solved samples to plot")
	}

	p := plot.New()
	p.Title.Text = "Solution length distribution"
	p.X.Label.Text = "moves"
	p.Y.Label.Text = "count"

	hist, err := plotter.NewHist(values, 16)
	if err != nil {
		return fmt.Errorf("stats: building histogram: %w", err)
	}
	p.Add(hist)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("stats: saving plot: %w", err)
	}
	return nil
}
