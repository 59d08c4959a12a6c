package step

import (
	"sync"

	"github.com/ehrlich-b/cube333/internal/cube"
	"github.com/ehrlich-b/cube333/internal/moveset"
	"github.com/ehrlich-b/cube333/internal/pruning"
)

// Pruning tables are process-wide immutable state (spec.md section 9:
// "global mutable state ... becomes process-wide immutable state with
// an explicit init phase"): each is built at most once, the first time
// a StepVariant that needs it is constructed, and shared read-only by
// every Searcher and pipeline worker afterward.
type tableCache struct {
	once  sync.Once
	table *pruning.Table
}

func (c *tableCache) get(size int, coordFn pruning.CoordFunc, seed cube.CubieCube, ms moveset.MoveSet) *pruning.Table {
	c.once.Do(func() {
		c.table = pruning.Build(size, coordFn, seed, ms)
	})
	return c.table
}

type nissTableCache struct {
	once  sync.Once
	table *pruning.NissTable
}

func (c *nissTableCache) get(size int, coordFn pruning.CoordFunc, seed cube.CubieCube, ms moveset.MoveSet) *pruning.NissTable {
	c.once.Do(func() {
		c.table = pruning.BuildNISS(size, coordFn, seed, ms)
	})
	return c.table
}

func (c *tableCache) asHeuristicTable(size int, coordFn pruning.CoordFunc, seed cube.CubieCube, ms moveset.MoveSet) heuristicTable {
	return plainTable{get: func(coord int) int { return c.get(size, coordFn, seed, ms).Get(coord) }}
}

func (c *nissTableCache) asHeuristicTable(size int, coordFn pruning.CoordFunc, seed cube.CubieCube, ms moveset.MoveSet) heuristicTable {
	return nissTable{get: func(coord int) (int, int) { return c.get(size, coordFn, seed, ms).Get(coord) }}
}
