// SPDX-License-Identifier: MIT
// Package: icepath/grid
//
// types.go — Cell states and the Grid type.

package grid

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// CellOpen is a cell a path may occupy.
	CellOpen Cell = iota
	// CellIceberg is an obstacle no path may pass through.
	CellIceberg
)

// Text symbols used by Parse and String.
const (
	symbolOpen    = '.'
	symbolIceberg = 'X'
	symbolComment = '#'
)

// String returns the text symbol of c ("." or "X").
func (c Cell) String() string {
	switch c {
	case CellOpen:
		return string(symbolOpen)
	case CellIceberg:
		return string(symbolIceberg)
	default:
		return "?"
	}
}

// valid reports whether c is one of the defined states.
func (c Cell) valid() bool {
	return c == CellOpen || c == CellIceberg
}

// Grid is an immutable rows×cols matrix of cells.
// cells is stored row-major in a single slice: cells[r*cols+c].
type Grid struct {
	rows, cols int
	cells      []Cell
	icebergs   int
}
