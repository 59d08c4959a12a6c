package solver

import (
	"context"
	"testing"

	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/step"
	"github.com/stretchr/testify/require"
)

func TestBuildRejectsOutOfOrderStages(t *testing.T) {
	configs, err := step.ParseConfigs("dr:max=5")
	require.NoError(t, err)
	_, err = Build(configs)
	require.Error(t, err, "dr cannot be the first stage")
}

func TestBuildRejectsUnknownKind(t *testing.T) {
	configs, err := step.ParseConfigs("bogus:max=5")
	require.NoError(t, err)
	_, err = Build(configs)
	require.Error(t, err)
}

func TestBuildAcceptsDefaultSteps(t *testing.T) {
	configs, err := step.ParseConfigs(DefaultSteps)
	require.NoError(t, err)
	_, err = Build(configs)
	require.NoError(t, err)
}

func TestSolveOnAlreadySolvedCube(t *testing.T) {
	configs, err := step.ParseConfigs(DefaultSteps)
	require.NoError(t, err)
	top, err := Build(configs)
	require.NoError(t, err)

	sol, ok := Solve(context.Background(), cube.Solved(), top)
	require.True(t, ok)
	require.Equal(t, 0, sol.Len(), "a solved cube needs zero moves from every stage")
}
