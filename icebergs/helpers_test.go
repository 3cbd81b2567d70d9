package icebergs_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/icepath/grid"
	"github.com/stretchr/testify/require"
)

// mustParse builds a grid from text or fails the test.
func mustParse(tb testing.TB, s string) *grid.Grid {
	tb.Helper()
	g, err := grid.ParseString(s)
	require.NoError(tb, err)

	return g
}

// mustEmpty builds an all-open grid or fails the test.
func mustEmpty(tb testing.TB, rows, cols int) *grid.Grid {
	tb.Helper()
	g, err := grid.Empty(rows, cols)
	require.NoError(tb, err)

	return g
}

// binomial returns C(rows+cols-2, rows-1), the open-grid path count.
func binomial(rows, cols int) *big.Int {
	return new(big.Int).Binomial(int64(rows+cols-2), int64(rows-1))
}

// randomGrids yields a deterministic family of small grids for oracle checks.
func randomGrids(tb testing.TB) []*grid.Grid {
	tb.Helper()
	var out []*grid.Grid
	seed := int64(0)
	for rows := 1; rows <= 6; rows++ {
		for cols := 1; cols <= 6; cols++ {
			for _, density := range []float64{0, 0.15, 0.3, 0.5} {
				seed++
				g, err := grid.Random(rows, cols,
					grid.WithSeed(seed),
					grid.WithDensity(density),
					grid.WithOpenCorners(seed%5 != 0),
				)
				require.NoError(tb, err)
				out = append(out, g)
			}
		}
	}

	return out
}
