package icebergs_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/icepath/icebergs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCrossCheck_Agrees runs the concurrent oracle over random grids.
func TestCrossCheck_Agrees(t *testing.T) {
	ctx := context.Background()
	for _, g := range randomGrids(t) {
		want, err := icebergs.DynProg(g)
		require.NoError(t, err)
		got, err := icebergs.CrossCheck(ctx, g)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

// TestCrossCheck_Errors propagates counter and context failures.
func TestCrossCheck_Errors(t *testing.T) {
	_, err := icebergs.CrossCheck(context.Background(), mustEmpty(t, 1, 70))
	assert.ErrorIs(t, err, icebergs.ErrTooManySteps)

	_, err = icebergs.CrossCheck(context.Background(), mustEmpty(t, 5, 5), icebergs.WithMaxCells(4))
	assert.ErrorIs(t, err, icebergs.ErrTableCapacity)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = icebergs.CrossCheck(ctx, mustEmpty(t, 3, 3))
	assert.ErrorIs(t, err, context.Canceled)
}
