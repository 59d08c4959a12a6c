// Package solver turns a parsed stage-configuration list into a
// runnable pipeline.Stage, the way solver.rs's build_steps function
// turns a Vec<StepConfig> into a Vec<(Step, DefaultStepOptions)>:
// validating stage order and wiring each Config onto the matching
// step.Variant constructor.
package solver

import (
	"context"
	"fmt"
	"strings"

	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/pipeline"
	"github.com/ehrlich-b/cube333/internal/search"
	"github.com/ehrlich-b/cube333/internal/solution"
	"github.com/ehrlich-b/cube333/internal/step"
)

// DefaultSteps is the stage sequence the CLI runs when the caller
// doesn't supply --steps of its own: a full EO/DR/HTR/FR/FIN reduction
// on the UD axis with depth bounds loose enough to finish in a
// reasonable time on an unscrambled-ish cube.
const DefaultSteps = "eo:max=5;dr:max=12;htr:max=14;fr:max=10;fin:max=13"

// Build validates configs' stage order and assembles them into one
// pipeline.Stage.
func Build(configs []step.Config) (pipeline.Stage, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("no steps configured")
	}
	stages := make([]pipeline.Stage, 0, len(configs))
	prev := ""
	for _, cfg := range configs {
		st, err := buildStage(cfg, prev)
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
		prev = cfg.Kind
	}
	return pipeline.NewSequential(stages...), nil
}

func buildStage(cfg step.Config, prev string) (pipeline.Stage, error) {
	axes := axesFor(cfg)
	params := paramsFor(cfg)
	switch cfg.Kind {
	case "eo":
		if prev != "" {
			return nil, fmt.Errorf("eo is not supported as a non-first step")
		}
		return variantsOf(axes, params, func(a cube.Axis) step.Variant { return step.NewEO(a) }), nil
	case "rzp":
		if prev != "eo" {
			return nil, fmt.Errorf("rzp must directly follow eo")
		}
		return variantsOf(axes, params, func(a cube.Axis) step.Variant { return step.NewRZP(a) }), nil
	case "dr":
		if prev != "eo" && prev != "rzp" {
			return nil, fmt.Errorf("dr must follow eo or rzp")
		}
		opts, err := drOptions(cfg)
		if err != nil {
			return nil, err
		}
		return variantsOf(axes, params, func(a cube.Axis) step.Variant { return step.NewDR(a, opts...) }), nil
	case "ar":
		if prev != "eo" {
			return nil, fmt.Errorf("ar must directly follow eo")
		}
		return variantsOf(axes, params, func(a cube.Axis) step.Variant { return step.NewAR(a) }), nil
	case "htr":
		if prev != "dr" {
			return nil, fmt.Errorf("htr must directly follow dr")
		}
		return variantsOf(axes, params, func(a cube.Axis) step.Variant { return step.NewHTR(a) }), nil
	case "fr":
		if prev != "htr" {
			return nil, fmt.Errorf("fr must directly follow htr")
		}
		return variantsOf(axes, params, func(a cube.Axis) step.Variant { return step.NewFR(a) }), nil
	case "frls":
		if prev != "htr" {
			return nil, fmt.Errorf("frls must directly follow htr")
		}
		return variantsOf(axes, params, func(a cube.Axis) step.Variant { return step.NewFRLS(a) }), nil
	case "fin":
		switch prev {
		case "fr":
			return variantsOf(axes, params, func(a cube.Axis) step.Variant { return step.NewFinish(a) }), nil
		case "frls":
			return variantsOf(axes, params, func(a cube.Axis) step.Variant { return step.NewFinishLS(a) }), nil
		case "htr":
			return variantsOf(axes, params, func(a cube.Axis) step.Variant { return step.NewFinishFromHTR(a) }), nil
		default:
			return nil, fmt.Errorf("fin must follow fr, frls, or htr")
		}
	default:
		return nil, fmt.Errorf("unknown step kind %q", cfg.Kind)
	}
}

func drOptions(cfg step.Config) ([]step.VariantOption, error) {
	var opts []step.VariantOption
	if val, ok := cfg.Params["triggers"]; ok {
		triggers, err := step.ParseTriggers(val)
		if err != nil {
			return nil, err
		}
		opts = append(opts, step.WithTriggers(triggers))
	}
	if val, ok := cfg.Params["subsets"]; ok {
		opts = append(opts, step.WithSubsetFilter(strings.Split(val, ",")))
	}
	return opts, nil
}

func axesFor(cfg step.Config) []cube.Axis {
	if len(cfg.Substeps) == 0 {
		return []cube.Axis{cube.AxisY}
	}
	var axes []cube.Axis
	for _, s := range cfg.Substeps {
		switch strings.ToLower(s) {
		case "ud":
			axes = append(axes, cube.AxisY)
		case "fb":
			axes = append(axes, cube.AxisZ)
		case "lr":
			axes = append(axes, cube.AxisX)
		}
	}
	if len(axes) == 0 {
		return []cube.Axis{cube.AxisY}
	}
	return axes
}

func paramsFor(cfg step.Config) search.Params {
	return search.Params{Min: cfg.Min, Max: cfg.Max, Niss: cfg.Niss}
}

// variantsOf builds one VariantStage per axis; for more than one axis
// it fans them out with Parallel so every requested substep races the
// others over the same input solutions, deduplicating via FilterDup at
// the next Sequential boundary (Run does this once, at the very top).
func variantsOf(axes []cube.Axis, params search.Params, build func(cube.Axis) step.Variant) pipeline.Stage {
	if len(axes) == 1 {
		return pipeline.NewVariantStage(build(axes[0]), params)
	}
	stages := make([]pipeline.Stage, len(axes))
	for i, a := range axes {
		stages[i] = pipeline.NewVariantStage(build(a), params)
	}
	return pipeline.NewParallel(stages...)
}

// Solve runs top to completion against base and returns the first
// solution found (pipeline stages emit in nondecreasing length order),
// or false if the search space is exhausted (or ctx is cancelled)
// without producing one.
func Solve(ctx context.Context, base cube.CubieCube, top pipeline.Stage) (solution.Solution, bool) {
	for sol := range pipeline.Run(ctx, base, top) {
		return sol, true
	}
	return solution.Solution{}, false
}
