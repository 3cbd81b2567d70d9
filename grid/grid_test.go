package grid_test

import (
	"testing"

	"github.com/katalvlaran/icepath/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	o = grid.CellOpen
	x = grid.CellIceberg
)

// TestNew_Errors verifies that New rejects empty, ragged and invalid inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]grid.Cell
		err   error
	}{
		{"NilRows", nil, grid.ErrEmptyGrid},
		{"EmptyRows", [][]grid.Cell{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]grid.Cell{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]grid.Cell{{o, o}, {o}}, grid.ErrNonRectangular},
		{"BadCell", [][]grid.Cell{{o, grid.Cell(7)}}, grid.ErrBadCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.cells)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, g)
		})
	}
}

// TestNew_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestNew_DeepCopy(t *testing.T) {
	in := [][]grid.Cell{{o, x}, {o, o}}
	g, err := grid.New(in)
	require.NoError(t, err)

	in[0][1] = o
	in[1][1] = x
	assert.Equal(t, grid.CellIceberg, g.Get(0, 1))
	assert.Equal(t, grid.CellOpen, g.Get(1, 1))
	assert.Equal(t, 1, g.Icebergs())
}

// TestGrid_Queries checks dimensions, bounds and cell lookups on a 2×3 grid.
func TestGrid_Queries(t *testing.T) {
	g, err := grid.New([][]grid.Cell{
		{o, x, o},
		{o, o, x},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Columns())
	assert.Equal(t, 2, g.Icebergs())

	for _, rc := range [][2]int{{0, 0}, {1, 2}, {0, 2}} {
		assert.True(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		assert.False(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
		assert.False(t, g.IsOpen(rc[0], rc[1]), "IsOpen(%d,%d)", rc[0], rc[1])
		_, err := g.At(rc[0], rc[1])
		assert.ErrorIs(t, err, grid.ErrOutOfRange)
	}

	assert.True(t, g.IsOpen(0, 0))
	assert.False(t, g.IsOpen(0, 1))
	c, err := g.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, grid.CellIceberg, c)

	assert.Panics(t, func() { g.Get(2, 0) })
}

// TestEmpty checks the all-open constructor and its size validation.
func TestEmpty(t *testing.T) {
	g, err := grid.Empty(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Columns())
	assert.Zero(t, g.Icebergs())

	_, err = grid.Empty(0, 4)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.Empty(4, 0)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// TestWith confirms copy-on-write semantics and iceberg bookkeeping.
func TestWith(t *testing.T) {
	g, err := grid.Empty(2, 2)
	require.NoError(t, err)

	h, err := g.With(0, 1, grid.CellIceberg)
	require.NoError(t, err)
	assert.Equal(t, grid.CellOpen, g.Get(0, 1), "receiver must stay unchanged")
	assert.Equal(t, grid.CellIceberg, h.Get(0, 1))
	assert.Equal(t, 1, h.Icebergs())

	k, err := h.With(0, 1, grid.CellOpen)
	require.NoError(t, err)
	assert.Zero(t, k.Icebergs())

	_, err = g.With(2, 0, grid.CellIceberg)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.With(0, 0, grid.Cell(9))
	assert.ErrorIs(t, err, grid.ErrBadCell)
}

// TestCells returns an independent copy.
func TestCells(t *testing.T) {
	g, err := grid.New([][]grid.Cell{{o, x}})
	require.NoError(t, err)

	cells := g.Cells()
	assert.Equal(t, [][]grid.Cell{{o, x}}, cells)
	cells[0][0] = x
	assert.Equal(t, grid.CellOpen, g.Get(0, 0))
}
