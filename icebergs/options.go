// SPDX-License-Identifier: MIT
// Package: icepath/icebergs
//
// options.go — functional options for the dynamic-programming counters.
//
// Option constructors panic on meaningless values; counters never panic.

package icebergs

const (
	// MaxExhaustiveSteps bounds the move count of Exhaustive: sequences are
	// indexed by a uint64, so steps must stay below 64.
	MaxExhaustiveSteps = 64

	// DefaultMaxCells is the default count table capacity (rows × columns).
	// The table is always sized to the grid; this only rejects grids whose
	// table would be unreasonably large.
	DefaultMaxCells = 1 << 24
)

// MemoryMode selects how DynProg stores its count table.
//
//   - FullTable  — keep every row; O(R·C) memory. Same layout Table returns.
//   - RollingRow — keep one row, updated in place; O(C) memory.
type MemoryMode int

const (
	// FullTable stores the complete R×C table.
	FullTable MemoryMode = iota
	// RollingRow stores a single row of C counts.
	RollingRow
)

// String returns "full" or "rolling".
func (m MemoryMode) String() string {
	switch m {
	case FullTable:
		return "full"
	case RollingRow:
		return "rolling"
	default:
		return "unknown"
	}
}

// Option customizes DynProg, DynProgBig, Table and CrossCheck.
type Option func(*config)

type config struct {
	maxCells int
	mode     MemoryMode
}

func newConfig(opts ...Option) config {
	cfg := config{maxCells: DefaultMaxCells, mode: FullTable}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxCells sets the count table capacity in cells. Panics if n < 1.
func WithMaxCells(n int) Option {
	if n < 1 {
		panic("icebergs: WithMaxCells(n < 1)")
	}
	return func(c *config) { c.maxCells = n }
}

// WithMemoryMode selects FullTable or RollingRow storage.
// Panics on an unknown mode.
func WithMemoryMode(m MemoryMode) Option {
	if m != FullTable && m != RollingRow {
		panic("icebergs: WithMemoryMode(unknown)")
	}
	return func(c *config) { c.mode = m }
}
