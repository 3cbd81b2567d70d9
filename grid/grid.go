// SPDX-License-Identifier: MIT
// Package: icepath/grid
//
// grid.go — construction and read-only queries.
//
// Contract:
//   • New deep-copies its input; the caller may reuse or mutate it afterwards.
//   • A Grid never changes after construction. With returns a new Grid.
//   • Get panics on out-of-range coordinates like slice indexing does;
//     At is the checked variant returning ErrOutOfRange.

package grid

import "fmt"

const (
	methodNew   = "New"
	methodEmpty = "Empty"
	methodAt    = "At"
	methodWith  = "With"
	minGridDim  = 1
)

// New builds a Grid from a non-empty rectangular matrix of cells.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadCell (wrapped with
// the offending coordinates).
// Complexity: O(R·C) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) < minGridDim || len(cells[0]) < minGridDim {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrEmptyGrid)
	}
	rows, cols := len(cells), len(cells[0])
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, 0, rows*cols)}
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w",
				methodNew, r, len(row), cols, ErrNonRectangular)
		}
		for c, cell := range row {
			if !cell.valid() {
				return nil, fmt.Errorf("%s: cell (%d,%d)=%d: %w", methodNew, r, c, cell, ErrBadCell)
			}
			if cell == CellIceberg {
				g.icebergs++
			}
			g.cells = append(g.cells, cell)
		}
	}

	return g, nil
}

// Empty returns an all-open rows×cols grid.
func Empty(rows, cols int) (*Grid, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d: %w", methodEmpty, rows, cols, ErrEmptyGrid)
	}

	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.cols }

// Icebergs returns the number of iceberg cells.
func (g *Grid) Icebergs() int { return g.icebergs }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the state of cell (row, col). It panics if the
// coordinates are out of range.
func (g *Grid) Get(row, col int) Cell {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid: Get(%d,%d) out of range for %dx%d grid", row, col, g.rows, g.cols))
	}

	return g.cells[g.index(row, col)]
}

// At is the checked form of Get.
func (g *Grid) At(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%s(%d,%d): %w", methodAt, row, col, ErrOutOfRange)
	}

	return g.cells[g.index(row, col)], nil
}

// IsOpen reports whether (row, col) is in bounds and not an iceberg.
func (g *Grid) IsOpen(row, col int) bool {
	return g.InBounds(row, col) && g.cells[g.index(row, col)] == CellOpen
}

// With returns a copy of g with cell (row, col) set to c.
// The receiver is left untouched.
// Complexity: O(R·C).
func (g *Grid) With(row, col int, c Cell) (*Grid, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%s(%d,%d): %w", methodWith, row, col, ErrOutOfRange)
	}
	if !c.valid() {
		return nil, fmt.Errorf("%s(%d,%d)=%d: %w", methodWith, row, col, c, ErrBadCell)
	}
	out := &Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells)), icebergs: g.icebergs}
	copy(out.cells, g.cells)
	i := g.index(row, col)
	if out.cells[i] == CellIceberg {
		out.icebergs--
	}
	if c == CellIceberg {
		out.icebergs++
	}
	out.cells[i] = c

	return out, nil
}

// Cells returns a deep copy of the grid as a row-major matrix.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range out {
		out[r] = make([]Cell, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}

	return out
}

// index maps (row, col) to the row-major slot row*cols + col.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}
