// Package icebergs counts the monotone paths across a grid.Grid that avoid
// iceberg cells, moving only right or down from the top-left cell to the
// bottom-right cell.
//
// 🚀 Two independent counters, one answer:
//
//	Exhaustive — enumerates all 2^steps right/down sequences
//	             (steps = R+C-2), replays each on a path.Path and
//	             counts those that stay legal and end on the goal.
//	             Ground truth for small grids.
//
//	DynProg    — fills a count table where each open cell holds the
//	             sum of its upper and left neighbours and icebergs
//	             hold 0. O(R·C).
//
//	For every grid small enough to enumerate, both return the same
//	value; CrossCheck runs them side by side and reports any mismatch.
//
// ✨ Key features:
//   - explicit, checked bounds: steps < 64 for Exhaustive, a cell
//     capacity for DynProg (WithMaxCells), overflow detection on uint64
//   - full table or a single rolling row (WithMemoryMode)
//   - DynProgBig for exact counts beyond uint64
//   - Table exposes every per-cell count for inspection
//
// Enumeration order:
//
//	Sequence number b in [0, 2^steps) is read least-significant bit first;
//	bit j selects move j, 1 = right, 0 = down. Sequence 0 is therefore
//	"all down", and ExhaustivePaths lists paths in ascending b.
//
// Errors:
//
//   - ErrEmptyGrid:      nil grid, zero rows or zero columns.
//   - ErrTooManySteps:   Exhaustive on a grid with R+C-2 ≥ 64.
//   - ErrTableCapacity:  DynProg on a grid with more cells than allowed.
//   - ErrCountOverflow:  the goal's count (any cell's, for Table) does not
//     fit in uint64.
//   - ErrDisagreement:   CrossCheck found differing results.
//
// An unreachable goal is not an error: every counter returns 0.
//
// Concurrency:
//
//	All counters are pure functions with private working state. Grids are
//	read-only, so concurrent calls on a shared grid are safe.
package icebergs
