// SPDX-License-Identifier: MIT
// Package: icepath/icebergs
//
// big.go — arbitrary-precision variant of DynProg.

package icebergs

import (
	"math/big"

	"github.com/katalvlaran/icepath/grid"
)

const methodDynProgBig = "DynProgBig"

// DynProgBig is DynProg with big.Int counts, so it never overflows.
// It always uses a single rolling row; the memory mode option is ignored,
// the capacity option is honoured.
// Complexity: O(R·C) big additions, O(C) big integers of memory.
func DynProgBig(g *grid.Grid, opts ...Option) (*big.Int, error) {
	cfg := newConfig(opts...)
	if err := checkTable(methodDynProgBig, g, cfg); err != nil {
		return nil, err
	}
	row := make([]big.Int, g.Columns())
	for i := 0; i < g.Rows(); i++ {
		for j := range row {
			switch {
			case !g.IsOpen(i, j):
				row[j].SetUint64(0)
			case i == 0 && j == 0:
				row[j].SetUint64(1)
			case j > 0:
				row[j].Add(&row[j], &row[j-1])
			}
		}
	}

	return new(big.Int).Set(&row[len(row)-1]), nil
}
