// SPDX-License-Identifier: MIT
// Package: icepath/grid
//
// random.go — Random(rows, cols, opts...) generator.
//
// Determinism: cells are drawn in row-major order, one rng.Float64 per
// cell, so a fixed seed and shape always yield the same grid.

package grid

import "fmt"

const methodRandom = "Random"

// Random builds a rows×cols grid whose cells are icebergs with the
// configured density. Returns ErrEmptyGrid if rows < 1 or cols < 1.
// Complexity: O(R·C).
func Random(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodRandom, rows, cols, minGridDim, ErrEmptyGrid)
	}
	cfg := newRandomConfig(opts...)

	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for i := range g.cells {
		// Draw for every cell, corners included, to keep the stream stable
		// regardless of openCorners.
		if cfg.rng.Float64() < cfg.density {
			g.cells[i] = CellIceberg
		}
	}
	if cfg.openCorners {
		g.cells[0] = CellOpen
		g.cells[len(g.cells)-1] = CellOpen
	}
	for _, c := range g.cells {
		if c == CellIceberg {
			g.icebergs++
		}
	}

	return g, nil
}
