package pipeline

import (
	"context"
	"testing"

	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/search"
	"github.com/ehrlich-b/cube333/internal/solution"
	"github.com/ehrlich-b/cube333/internal/step"
	"github.com/stretchr/testify/require"
)

func TestRunOnSolvedCubeYieldsEmptySolution(t *testing.T) {
	eo := NewVariantStage(step.NewEO(cube.AxisY), search.Params{Min: 0, Max: 0, Niss: step.NissNever})

	var sols []solution.Solution
	for sol := range Run(context.Background(), cube.Solved(), eo) {
		sols = append(sols, sol)
	}
	require.Len(t, sols, 1)
	require.Equal(t, 0, sols[0].Len())
}

func TestFilterDupRemovesRepeatedKeys(t *testing.T) {
	in := make(chan solution.Solution, 2)
	in <- solution.Empty()
	in <- solution.Empty()
	close(in)

	out := FilterDup(context.Background(), in)
	var got []solution.Solution
	for sol := range out {
		got = append(got, sol)
	}
	require.Len(t, got, 1, "two identical solutions must dedupe to one")
}

func TestParallelMergesBothBranches(t *testing.T) {
	a := NewVariantStage(step.NewEO(cube.AxisY), search.Params{Min: 0, Max: 0, Niss: step.NissNever})
	b := NewVariantStage(step.NewEO(cube.AxisX), search.Params{Min: 0, Max: 0, Niss: step.NissNever})
	group := NewParallel(a, b)

	seed := make(chan solution.Solution, 1)
	seed <- solution.Empty()
	close(seed)

	count := 0
	for range group.Run(context.Background(), cube.Solved(), seed) {
		count++
	}
	require.Equal(t, 2, count, "a solved cube is EO-ready on both axes at depth 0")
}
