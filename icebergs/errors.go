// SPDX-License-Identifier: MIT
// Package: icepath/icebergs
//
// errors.go — sentinel errors for the icebergs package.
//
// Error classes:
//   • invalid input   — ErrEmptyGrid
//   • capacity        — ErrTooManySteps, ErrTableCapacity, ErrCountOverflow
//   • oracle mismatch — ErrDisagreement
//
// All are returned before any result is produced; a caller either gets a
// correct count or one of these. Match with errors.Is.

package icebergs

import "errors"

var (
	// ErrEmptyGrid indicates a nil grid or one without rows or columns.
	ErrEmptyGrid = errors.New("icebergs: grid must be non-empty")

	// ErrTooManySteps indicates R+C-2 ≥ MaxExhaustiveSteps, so the move
	// sequences cannot be indexed by a 64-bit counter.
	ErrTooManySteps = errors.New("icebergs: too many steps for exhaustive enumeration")

	// ErrTableCapacity indicates the grid has more cells than the count
	// table is allowed to hold.
	ErrTableCapacity = errors.New("icebergs: grid exceeds count table capacity")

	// ErrCountOverflow indicates a path count that does not fit in uint64.
	ErrCountOverflow = errors.New("icebergs: path count overflows uint64")

	// ErrDisagreement indicates the exhaustive and dynamic-programming
	// counters returned different values for the same grid.
	ErrDisagreement = errors.New("icebergs: counters disagree")
)
