// Package search implements the iterative-deepening depth-first
// search a StepVariant is driven by: IDDFS over increasing total
// length, with NISS (Normal-Inverse Scramble Switch) scheduled either
// never, only before a stage begins, or at any node (spec.md section
// 4.6), emitting algorithms nondecreasing in length.
package search

import (
	"context"
	"sync/atomic"

	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/moveset"
	"github.com/ehrlich-b/cube333/internal/step"
)

// CancelToken is the atomic cancellation flag spec.md section 5
// assigns one of to every worker: cheap to check at every DFS
// descent and every channel send, set once from outside the search
// goroutine. Mirrors the sync/atomic.Bool pattern the retrieval
// pack's graph and BLAS packages use for the same purpose.
type CancelToken struct {
	cancelled atomic.Bool
}

// Cancel requests the search stop at its next check point.
func (c *CancelToken) Cancel() { c.cancelled.Store(true) }

// Cancelled reports whether Cancel has been called.
func (c *CancelToken) Cancelled() bool { return c.cancelled.Load() }

// Params bounds one Searcher run: a move-count window and a NISS
// mode (spec.md section 6's min/max/niss stage-config fields).
type Params struct {
	Min  int
	Max  int // -1 means unbounded; the Searcher still needs an outer bound from the caller to terminate.
	Niss step.NissMode
}

// Searcher drives one StepVariant's IDDFS. It holds no mutable state
// of its own beyond what a single Run call needs, so one Searcher can
// be reused (or shared read-only) across concurrent Run calls, the
// way PruningTables are shared read-only across workers.
type Searcher struct {
	Variant step.Variant
	Params  Params
}

// New builds a Searcher for one Variant.
func New(v step.Variant, p Params) *Searcher {
	return &Searcher{Variant: v, Params: p}
}

// Run searches c with the Searcher's Variant and Params, streaming
// every solution found on an unbuffered channel in nondecreasing
// length order; it closes the channel when the search space (bounded
// by Params.Max, or by ctx/token cancellation) is exhausted. The
// caller must drain the channel or cancel ctx/token to let the
// goroutine exit.
func (s *Searcher) Run(ctx context.Context, token *CancelToken, c cube.CubieCube) <-chan cube.Algorithm {
	out := make(chan cube.Algorithm)
	go func() {
		defer close(out)
		trs := s.Variant.PreStepTrans()
		c0 := cube.ApplyTransforms(c, trs)
		if !s.Variant.IsReady(c0) {
			return
		}
		for depth := s.Params.Min; s.Params.Max < 0 || depth <= s.Params.Max; depth++ {
			if cancelled(ctx, token) {
				return
			}
			if !s.searchDepth(ctx, token, c0, depth, trs, out) {
				return
			}
		}
	}()
	return out
}

func cancelled(ctx context.Context, token *CancelToken) bool {
	if token != nil && token.Cancelled() {
		return true
	}
	if ctx != nil && ctx.Err() != nil {
		return true
	}
	return false
}

// searchDepth finds every solution of exactly depth moves, branching
// on NISS mode the way StepIORunner.find_solutions does: Never walks
// a single branch (inverted up front if the input wasn't already
// ending on the normal branch — a concern the Pipeline layer resolves
// before calling Run, so here it is always the normal branch); Before
// walks the normal branch then the pure-inverse branch as two
// independent searches; Always additionally allows the normal-branch
// search to switch into the inverse mid-descent.
func (s *Searcher) searchDepth(ctx context.Context, token *CancelToken, c cube.CubieCube, depth int, trs []cube.Transformation, out chan<- cube.Algorithm) bool {
	switch s.Params.Niss {
	case step.NissNever:
		return s.dfs(ctx, token, newState(c, true), depth, false, trs, out)
	case step.NissBefore:
		if !s.dfs(ctx, token, newState(c, true), depth, false, trs, out) {
			return false
		}
		return s.dfs(ctx, token, newState(cube.Invert(c), false), depth, false, trs, out)
	case step.NissAlways:
		if !s.dfs(ctx, token, newState(c, true), depth, true, trs, out) {
			return false
		}
		return s.dfs(ctx, token, newState(cube.Invert(c), false), depth, false, trs, out)
	default:
		return s.dfs(ctx, token, newState(c, true), depth, false, trs, out)
	}
}

// dfsState tracks both branches of an in-progress algorithm: the
// moves recorded so far on each, and which branch new moves are
// currently being appended to. cube always reflects the current
// branch's state (inverted once when recordNormal is false).
type dfsState struct {
	cube         cube.CubieCube
	normal       []cube.Turn
	inverse      []cube.Turn
	prevNormal   cube.Turn
	havePrevNorm bool
	prevInverse  cube.Turn
	havePrevInv  bool
	recordNormal bool
}

func newState(c cube.CubieCube, recordNormal bool) dfsState {
	return dfsState{cube: c, recordNormal: recordNormal}
}

func (st dfsState) algorithm() cube.Algorithm {
	return cube.Algorithm{Normal: st.normal, Inverse: st.inverse}
}

func (st dfsState) prevTurn() (cube.Turn, bool) {
	if st.recordNormal {
		return st.prevNormal, st.havePrevNorm
	}
	return st.prevInverse, st.havePrevInv
}

func (st dfsState) extend(mv cube.Turn, nc cube.CubieCube) dfsState {
	next := st
	next.cube = nc
	if st.recordNormal {
		next.normal = appendCopy(st.normal, mv)
		next.prevNormal, next.havePrevNorm = mv, true
	} else {
		next.inverse = appendCopy(st.inverse, mv)
		next.prevInverse, next.havePrevInv = mv, true
	}
	return next
}

func appendCopy(turns []cube.Turn, mv cube.Turn) []cube.Turn {
	out := make([]cube.Turn, len(turns)+1)
	copy(out, turns)
	out[len(turns)] = mv
	return out
}

// switchBranch inverts the cube and flips which branch is recording,
// the NISS move: the moves recorded so far stay put, only the branch
// new moves land in changes (spec.md section 4.6's "a recursion
// parameter" at the Searcher level).
func (st dfsState) switchBranch() dfsState {
	next := st
	next.cube = cube.Invert(st.cube)
	next.recordNormal = !st.recordNormal
	return next
}

func (s *Searcher) dfs(ctx context.Context, token *CancelToken, st dfsState, depthLeft int, nissAvailable bool, trs []cube.Transformation, out chan<- cube.Algorithm) bool {
	if cancelled(ctx, token) {
		return false
	}
	h := s.Variant.Heuristic(st.cube, nissAvailable)
	if depthLeft == 0 && h == 0 {
		return emit(ctx, token, untransform(st.algorithm(), trs), out)
	}
	if h == 0 || h > depthLeft {
		return true
	}
	prev, hasPrev := st.prevTurn()
	ms := s.Variant.MoveSet(st.cube, depthLeft)
	for _, mv := range allowedMoves(ms, prev, hasPrev, depthLeft) {
		nc := st.cube.Turn(mv)
		next := st.extend(mv, nc)
		if !s.dfs(ctx, token, next, depthLeft-1, nissAvailable, trs, out) {
			return false
		}
		if nissAvailable && isStateChange(ms, mv) && depthLeft > 1 {
			if !s.dfs(ctx, token, next.switchBranch(), depthLeft-1, false, trs, out) {
				return false
			}
		}
	}
	return true
}

// untransform reverses a StepVariant's pre-transformations on an
// emitted algorithm so it's expressed in the caller's (un-rotated)
// frame: each pre-transform is undone in reverse order (spec.md
// section 4.6 step 6).
func untransform(alg cube.Algorithm, trs []cube.Transformation) cube.Algorithm {
	for i := len(trs) - 1; i >= 0; i-- {
		alg = alg.Transform(trs[i].Invert())
	}
	return alg
}

// allowedMoves filters a MoveSet down to the moves legal after prev,
// dropping aux moves once only one move remains (a solution must end
// on a state-change move, the one kind guaranteed to still be
// reducing the stage's coordinate).
func allowedMoves(ms moveset.MoveSet, prev cube.Turn, hasPrev bool, depthLeft int) []cube.Turn {
	var out []cube.Turn
	for _, mv := range ms.StateChange {
		if ms.Allowed(prev, mv, hasPrev) {
			out = append(out, mv)
		}
	}
	if depthLeft > 1 {
		for _, mv := range ms.Aux {
			if ms.Allowed(prev, mv, hasPrev) {
				out = append(out, mv)
			}
		}
	}
	return out
}

func isStateChange(ms moveset.MoveSet, mv cube.Turn) bool {
	for _, t := range ms.StateChange {
		if t == mv {
			return true
		}
	}
	return false
}

func emit(ctx context.Context, token *CancelToken, alg cube.Algorithm, out chan<- cube.Algorithm) bool {
	select {
	case out <- alg:
		return true
	case <-doneCh(ctx):
		return false
	}
}

func doneCh(ctx context.Context) <-chan struct{} {
	if ctx == nil {
		return nil
	}
	return ctx.Done()
}
