// SPDX-License-Identifier: MIT
// Package: icepath/icebergs
//
// exhaustive.go — brute-force enumeration of right/down move sequences.
//
// Algorithm:
//  1. steps = R + C - 2; require steps < MaxExhaustiveSteps.
//  2. For b = 0 .. 2^steps-1:
//     a fresh path.Path starts at (0,0);
//     for j = 0 .. steps-1 (LSB first): bit j of b = 1 → right, 0 → down;
//     an illegal move abandons the candidate.
//  3. A candidate that applied every move and ends on (R-1,C-1) counts.
//
// Complexity: O(2^steps · steps) time, O(steps) memory per candidate.

package icebergs

import (
	"fmt"

	"github.com/katalvlaran/icepath/grid"
	"github.com/katalvlaran/icepath/path"
)

const (
	methodExhaustive      = "Exhaustive"
	methodExhaustivePaths = "ExhaustivePaths"
)

// Exhaustive counts iceberg-avoiding monotone paths by trying every move
// sequence. Returns ErrEmptyGrid or ErrTooManySteps before enumerating.
func Exhaustive(g *grid.Grid) (uint64, error) {
	steps, err := exhaustiveSteps(methodExhaustive, g)
	if err != nil {
		return 0, err
	}
	var count uint64
	enumerate(g, steps, func(*path.Path) { count++ })

	return count, nil
}

// ExhaustivePaths returns every legal path as its move list, in
// enumeration order. Same preconditions as Exhaustive.
func ExhaustivePaths(g *grid.Grid) ([][]path.Step, error) {
	steps, err := exhaustiveSteps(methodExhaustivePaths, g)
	if err != nil {
		return nil, err
	}
	var out [][]path.Step
	enumerate(g, steps, func(p *path.Path) { out = append(out, p.Steps()) })

	return out, nil
}

// exhaustiveSteps validates g and returns its path length.
func exhaustiveSteps(method string, g *grid.Grid) (uint, error) {
	if err := checkGrid(method, g); err != nil {
		return 0, err
	}
	steps := g.Rows() + g.Columns() - 2
	if steps >= MaxExhaustiveSteps {
		return 0, fmt.Errorf("%s: %dx%d grid needs %d steps (max %d): %w",
			method, g.Rows(), g.Columns(), steps, MaxExhaustiveSteps-1, ErrTooManySteps)
	}

	return uint(steps), nil
}

// enumerate calls found for every candidate that reaches the goal.
// Caller guarantees steps < 64.
func enumerate(g *grid.Grid, steps uint, found func(*path.Path)) {
	// No candidate can start on an iceberg.
	if !g.IsOpen(0, 0) {
		return
	}
	total := uint64(1) << steps
	for b := uint64(0); b < total; b++ {
		p := path.New(g)
		legal := true
		for j := uint(0); j < steps; j++ {
			s := path.StepDown
			if (b>>j)&1 == 1 {
				s = path.StepRight
			}
			if err := p.AddStep(s); err != nil {
				legal = false
				break
			}
		}
		if legal && p.AtGoal() {
			found(p)
		}
	}
}

// checkGrid rejects nil and empty grids.
func checkGrid(method string, g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("%s: nil grid: %w", method, ErrEmptyGrid)
	}
	if g.Rows() < 1 || g.Columns() < 1 {
		return fmt.Errorf("%s: %dx%d grid: %w", method, g.Rows(), g.Columns(), ErrEmptyGrid)
	}

	return nil
}
