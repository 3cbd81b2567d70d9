// SPDX-License-Identifier: MIT
// Package: icepath/icebergs
//
// crosscheck.go — run both counters concurrently and compare.

package icebergs

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/icepath/grid"
)

const methodCrossCheck = "CrossCheck"

// CrossCheck runs Exhaustive and DynProg on g in parallel and returns the
// shared count. Any counter error is returned as is; differing results
// yield ErrDisagreement. ctx is only consulted before each counter
// starts, since neither has suspension points.
func CrossCheck(ctx context.Context, g *grid.Grid, opts ...Option) (uint64, error) {
	var exhaustive, dynamic uint64
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := Exhaustive(g)
		exhaustive = n
		return err
	})
	eg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := DynProg(g, opts...)
		dynamic = n
		return err
	})
	if err := eg.Wait(); err != nil {
		return 0, fmt.Errorf("%s: %w", methodCrossCheck, err)
	}
	if exhaustive != dynamic {
		return 0, fmt.Errorf("%s: exhaustive=%d dynprog=%d: %w",
			methodCrossCheck, exhaustive, dynamic, ErrDisagreement)
	}

	return dynamic, nil
}
