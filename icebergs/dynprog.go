// SPDX-License-Identifier: MIT
// Package: icepath/icebergs
//
// dynprog.go — dynamic-programming path counter.
//
// Recurrence (T = count table, sized exactly R×C):
//   T[0][0] = 1 if (0,0) is open, else 0
//   T[i][j] = 0                              if (i,j) is an iceberg
//   T[i][j] = T[i-1][j] + T[i][j-1]          otherwise, missing terms = 0
//
// Iteration order is row-major with columns innermost. This is what makes
// the recurrence correct: when (i,j) is visited, (i-1,j) was finalized on
// the previous row and (i,j-1) one step earlier on this row.
//
// Rolling form: one row slice r is updated in place. Before cell j is
// written, r[j] still holds T[i-1][j] (0 on the first row) and r[j-1]
// already holds T[i][j-1]. FullTable snapshots r after every row.
//
// Overflow: a cell whose sum carries out of uint64 is poisoned, and so is
// every open cell it feeds; an iceberg stops the spread. DynProg fails only
// when the goal is poisoned, Table fails on any poisoned cell.
//
// Complexity: O(R·C) time; O(R·C) memory (FullTable) or O(C) (RollingRow).

package icebergs

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/icepath/grid"
)

const (
	methodDynProg = "DynProg"
	methodTable   = "Table"
)

// DynProg counts iceberg-avoiding monotone paths in O(R·C).
// Returns ErrEmptyGrid, ErrTableCapacity, or ErrCountOverflow when the
// goal's count does not fit in uint64. Overflow in cells that never feed
// the goal is not an error.
func DynProg(g *grid.Grid, opts ...Option) (uint64, error) {
	cfg := newConfig(opts...)
	if err := checkTable(methodDynProg, g, cfg); err != nil {
		return 0, err
	}
	rows, cols := g.Rows(), g.Columns()
	if cfg.mode == FullTable {
		table, s := fillTable(g)
		if s.goalPoisoned {
			return 0, goalOverflow(methodDynProg, rows, cols)
		}

		return table[rows-1][cols-1], nil
	}

	row := make([]uint64, cols)
	if s := sweep(g, row, make([]bool, cols), nil); s.goalPoisoned {
		return 0, goalOverflow(methodDynProg, rows, cols)
	}

	return row[cols-1], nil
}

// Table returns the complete count table: Table[i][j] is the number of
// iceberg-avoiding monotone paths from (0,0) to (i,j). The memory mode
// option is ignored. Any cell whose count overflows uint64 fails the
// whole table with ErrCountOverflow.
func Table(g *grid.Grid, opts ...Option) ([][]uint64, error) {
	cfg := newConfig(opts...)
	if err := checkTable(methodTable, g, cfg); err != nil {
		return nil, err
	}
	table, s := fillTable(g)
	if s.overflowed {
		return nil, fmt.Errorf("%s: cell (%d,%d): %w", methodTable, s.firstRow, s.firstCol, ErrCountOverflow)
	}

	return table, nil
}

// sweepStats reports where the sweep lost precision.
type sweepStats struct {
	overflowed         bool // some cell overflowed
	firstRow, firstCol int  // first overflowed cell, row-major
	goalPoisoned       bool // the goal's count is not representable
}

// fillTable runs the sweep and keeps a copy of every finished row.
// Poisoned cells hold 0 in the table.
func fillTable(g *grid.Grid) ([][]uint64, sweepStats) {
	rows, cols := g.Rows(), g.Columns()
	backing := make([]uint64, rows*cols)
	table := make([][]uint64, rows)
	for i := range table {
		table[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	s := sweep(g, make([]uint64, cols), make([]bool, cols), func(i int, row []uint64) {
		copy(table[i], row)
	})

	return table, s
}

// sweep applies the recurrence row by row into row (len == Columns, all
// zero on entry). poison runs parallel to row: a cell is poisoned when
// its own sum carried or when a poisoned neighbour feeds it; icebergs
// clear poison. Poisoned cells store 0. done, if non-nil, observes each
// finished row.
func sweep(g *grid.Grid, row []uint64, poison []bool, done func(i int, row []uint64)) sweepStats {
	var s sweepStats
	for i := 0; i < g.Rows(); i++ {
		for j := range row {
			if !g.IsOpen(i, j) {
				row[j], poison[j] = 0, false
				continue
			}
			if i == 0 && j == 0 {
				row[j] = 1
				continue
			}
			var left uint64
			leftPoisoned := false
			if j > 0 {
				left, leftPoisoned = row[j-1], poison[j-1]
			}
			if poison[j] || leftPoisoned {
				row[j], poison[j] = 0, true
				continue
			}
			sum, carry := bits.Add64(row[j], left, 0)
			if carry != 0 {
				row[j], poison[j] = 0, true
				if !s.overflowed {
					s.overflowed, s.firstRow, s.firstCol = true, i, j
				}
				continue
			}
			row[j] = sum
		}
		if done != nil {
			done(i, row)
		}
	}
	s.goalPoisoned = poison[len(poison)-1]

	return s
}

// goalOverflow reports an unrepresentable count at the goal cell.
func goalOverflow(method string, rows, cols int) error {
	return fmt.Errorf("%s: cell (%d,%d): %w", method, rows-1, cols-1, ErrCountOverflow)
}

// checkTable validates g and the table capacity before any allocation.
func checkTable(method string, g *grid.Grid, cfg config) error {
	if err := checkGrid(method, g); err != nil {
		return err
	}
	cells := uint64(g.Rows()) * uint64(g.Columns())
	if cells > uint64(cfg.maxCells) {
		return fmt.Errorf("%s: %dx%d grid has %d cells (capacity %d): %w",
			method, g.Rows(), g.Columns(), cells, cfg.maxCells, ErrTableCapacity)
	}

	return nil
}
