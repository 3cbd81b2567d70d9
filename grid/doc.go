// Package grid provides the immutable rectangular cell matrix that the
// iceberg path counters operate on.
//
// 🚀 What is a Grid?
//
//	A Grid is an R×C matrix of cells, each either open or an iceberg
//	(an obstacle no path may cross). Row 0 is the top, column 0 is the
//	left; the start cell is (0,0) and the goal cell is (R-1,C-1).
//
//	  . . X
//	  . X .
//	  . . .
//
// ✨ Key features:
//   - deep-copied, read-only storage: safe for concurrent queries
//   - text format: '.' open, 'X' iceberg, '#' comments (Parse / String)
//   - deterministic random generation (Random + WithSeed/WithDensity)
//   - copy-on-write edits via With, for "what if" comparisons
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadCell: a cell value other than CellOpen or CellIceberg.
//   - ErrOutOfRange: coordinates outside the grid.
//   - ErrParse: malformed text input.
//
// Complexity:
//
//   - New / Parse / Random / With: O(R·C) time and memory.
//   - Get / At / IsOpen / InBounds: O(1).
package grid
