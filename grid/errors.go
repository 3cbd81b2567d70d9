// SPDX-License-Identifier: MIT
// Package: icepath/grid
//
// errors.go — sentinel errors for the grid package.
//
// Callers branch with errors.Is; context is attached with %w at the
// call site, never baked into the sentinel text.

package grid

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrBadCell indicates a cell value outside {CellOpen, CellIceberg}.
	ErrBadCell = errors.New("grid: invalid cell value")

	// ErrOutOfRange indicates a (row, col) pair outside the grid.
	ErrOutOfRange = errors.New("grid: coordinates out of range")

	// ErrParse indicates malformed textual grid input.
	ErrParse = errors.New("grid: parse error")
)
