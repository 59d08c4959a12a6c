// Package pipeline assembles per-stage Searchers into streaming
// combinators over solution.Solution values: Sequential chains stages
// so each downstream stage extends only the solutions its upstream has
// already produced, Parallel fans the same input out to a set of
// stages and merges their outputs, and FilterDup removes the
// duplicate solutions a Parallel group can produce when two variants
// reach the same algorithm (spec.md section 5).
package pipeline

import (
	"context"

	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/search"
	"github.com/ehrlich-b/cube333/internal/solution"
	"github.com/ehrlich-b/cube333/internal/step"
)

// bufferSize is the bounded-channel capacity every stage boundary
// uses, matching the reference implementation's BUFFER_SIZE (spec.md
// section 5: "bounded MPSC channels (buffer size ~10)").
const bufferSize = 10

// Stage is one link in a pipeline: given the base (pre-scramble) cube
// and a stream of partial solutions, it returns a stream of solutions
// each extended by one more frame. Implementations must close their
// output channel once the input channel closes and no more work is
// outstanding.
type Stage interface {
	Run(ctx context.Context, base cube.CubieCube, in <-chan solution.Solution) <-chan solution.Solution
}

// VariantStage drives one StepVariant's Searcher over every solution
// the upstream stage produces, extending each with the resulting
// frame.
type VariantStage struct {
	Variant step.Variant
	Params  search.Params
}

// NewVariantStage builds a Stage around one Variant.
func NewVariantStage(v step.Variant, p search.Params) *VariantStage {
	return &VariantStage{Variant: v, Params: p}
}

// Run seeds top with the empty Solution and filters its output for
// duplicates, the entry point a CLI or server hands a fully-built
// pipeline to (mirrors SolverWorker::new seeding its input channel
// with Solution::new() before starting the worker).
func Run(ctx context.Context, base cube.CubieCube, top Stage) <-chan solution.Solution {
	seed := make(chan solution.Solution, 1)
	seed <- solution.Empty()
	close(seed)
	return FilterDup(ctx, top.Run(ctx, base, seed))
}

// Run buffers in by incoming length (upstream already guarantees that
// stream is nondecreasing, so a length change marks a group boundary)
// and, one group at a time, advances a single extension-length cursor
// from Min to Max across every input in the group before moving on to
// the next group. This is "the key contract" spec.md section 4.6
// assigns every stage: a later group's shortest possible total length
// is never less than an earlier group's longest, so draining the
// whole group at each cursor value before advancing it keeps the
// stage's own output nondecreasing even when the group holds more
// than one input (e.g. a Parallel fan-in feeding this stage several
// same-length solutions from different upstream variants).
func (s *VariantStage) Run(ctx context.Context, base cube.CubieCube, in <-chan solution.Solution) <-chan solution.Solution {
	out := make(chan solution.Solution, bufferSize)
	go func() {
		defer close(out)
		searcher := search.New(s.Variant, s.Params)
		var carry *solution.Solution
		for {
			var group []solution.Solution
			group, carry = collectGroup(in, carry)
			if len(group) == 0 {
				return
			}
			if !s.runGroup(ctx, base, searcher, group, out) {
				return
			}
		}
	}()
	return out
}

// collectGroup drains in (starting from carry, if set) until it reads
// a solution whose length differs from the group's, or in closes. The
// differently-lengthed solution, if any, is returned as the next
// call's carry so it isn't lost.
func collectGroup(in <-chan solution.Solution, carry *solution.Solution) ([]solution.Solution, *solution.Solution) {
	var group []solution.Solution
	length := 0
	if carry != nil {
		group = append(group, *carry)
		length = carry.Len()
	}
	for {
		sol, ok := <-in
		if !ok {
			return group, nil
		}
		if len(group) == 0 {
			length = sol.Len()
		} else if sol.Len() != length {
			next := sol
			return group, &next
		}
		group = append(group, sol)
	}
}

// groupSearch tracks one group member's search stream and the next
// unconsumed algorithm it has produced (if any), so runGroup can drain
// every member at one extension length before advancing to the next.
type groupSearch struct {
	sol    solution.Solution
	cube   cube.CubieCube
	algs   <-chan cube.Algorithm
	head   cube.Algorithm
	have   bool
	closed bool
}

// fill reads the next algorithm into head if none is buffered yet,
// reporting whether head now holds one.
func (g *groupSearch) fill() bool {
	if g.have || g.closed {
		return g.have
	}
	alg, ok := <-g.algs
	if !ok {
		g.closed = true
		return false
	}
	g.head, g.have = alg, true
	return true
}

// runGroup runs every group member's Searcher concurrently and merges
// their outputs by extension length: at each length from Min to Max it
// drains every member whose buffered algorithm is exactly that length
// before moving to the next length, so two members producing
// different-length solutions never emit out of order.
func (s *VariantStage) runGroup(ctx context.Context, base cube.CubieCube, searcher *search.Searcher, group []solution.Solution, out chan<- solution.Solution) bool {
	members := make([]*groupSearch, len(group))
	for i, sol := range group {
		c := sol.Apply(base)
		members[i] = &groupSearch{sol: sol, cube: c, algs: searcher.Run(ctx, nil, c)}
	}
	for depth := s.Params.Min; s.Params.Max < 0 || depth <= s.Params.Max; depth++ {
		if ctx.Err() != nil {
			return false
		}
		anyPending := false
		for _, m := range members {
			if !m.fill() {
				continue
			}
			anyPending = true
			for m.have && m.head.Len() == depth {
				if s.Variant.IsSolutionAdmissible(m.cube, m.head) {
					frame := solution.Frame{
						Kind:    s.Variant.Kind(),
						Variant: s.Variant.Name(),
						Alg:     m.head,
					}
					select {
					case out <- m.sol.WithFrame(frame):
					case <-ctx.Done():
						return false
					}
				}
				m.have = false
				m.fill()
			}
		}
		if !anyPending {
			break
		}
	}
	return true
}
