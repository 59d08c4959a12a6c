package pipeline

import (
	"context"
	"sync"

	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/solution"
)

// Sequential chains stages so each one only ever sees the solutions
// the previous stage has already produced, preserving the
// nondecreasing-length guarantee stage by stage (spec.md section 5).
type Sequential struct {
	Stages []Stage
}

// NewSequential builds a Sequential pipeline from one or more stages.
func NewSequential(stages ...Stage) *Sequential {
	return &Sequential{Stages: stages}
}

func (s *Sequential) Run(ctx context.Context, base cube.CubieCube, in <-chan solution.Solution) <-chan solution.Solution {
	cur := in
	for _, stage := range s.Stages {
		cur = stage.Run(ctx, base, cur)
	}
	return cur
}

// Parallel fans the same input stream out to every stage and merges
// their outputs, the way group.rs's Broadcaster/Sampler pair lets
// several StepVariants (e.g. one per axis) race each other on the
// same set of partial solutions (spec.md section 5).
type Parallel struct {
	Stages []Stage
}

// NewParallel builds a Parallel group from one or more stages.
func NewParallel(stages ...Stage) *Parallel {
	return &Parallel{Stages: stages}
}

func (p *Parallel) Run(ctx context.Context, base cube.CubieCube, in <-chan solution.Solution) <-chan solution.Solution {
	branches := broadcast(ctx, in, len(p.Stages))
	outs := make([]<-chan solution.Solution, len(p.Stages))
	for i, stage := range p.Stages {
		outs[i] = stage.Run(ctx, base, branches[i])
	}
	return fanIn(ctx, outs)
}

// broadcast reads in once and republishes every value to n bounded
// output channels (the Broadcaster role): each stage in a Parallel
// group gets its own copy of the upstream stream, in the same order.
func broadcast(ctx context.Context, in <-chan solution.Solution, n int) []chan solution.Solution {
	outs := make([]chan solution.Solution, n)
	for i := range outs {
		outs[i] = make(chan solution.Solution, bufferSize)
	}
	go func() {
		defer func() {
			for _, o := range outs {
				close(o)
			}
		}()
		for sol := range in {
			for _, o := range outs {
				select {
				case o <- sol:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return outs
}

// fanIn merges several solution streams into one (the Sampler role):
// across stages the interleaving is opportunistic, but within one
// stage's own stream the nondecreasing order it already guarantees is
// preserved end to end.
func fanIn(ctx context.Context, ins []<-chan solution.Solution) <-chan solution.Solution {
	out := make(chan solution.Solution, bufferSize)
	var wg sync.WaitGroup
	wg.Add(len(ins))
	for _, in := range ins {
		go func(in <-chan solution.Solution) {
			defer wg.Done()
			for sol := range in {
				select {
				case out <- sol:
				case <-ctx.Done():
					return
				}
			}
		}(in)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// FilterDup deduplicates a solution stream by full-algorithm equality
// (solution.Solution.Key), the terminal predicate spec.md section 5
// requires after a Parallel group to collapse solutions two variants
// both happened to produce.
func FilterDup(ctx context.Context, in <-chan solution.Solution) <-chan solution.Solution {
	out := make(chan solution.Solution, bufferSize)
	go func() {
		defer close(out)
		seen := make(map[[32]byte]bool)
		for sol := range in {
			k := sol.Key()
			if seen[k] {
				continue
			}
			seen[k] = true
			select {
			case out <- sol:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
