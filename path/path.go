// SPDX-License-Identifier: MIT
// Package: icepath/path
//
// path.go — Step directions and the Path cursor.

package path

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/icepath/grid"
)

// ErrInvalidStep indicates a move that leaves the grid or lands on an iceberg.
var ErrInvalidStep = errors.New("path: invalid step")

// Step is a single monotone move.
type Step uint8

const (
	// StepDown advances one row.
	StepDown Step = iota
	// StepRight advances one column.
	StepRight
)

// String returns "down" or "right".
func (s Step) String() string {
	switch s {
	case StepDown:
		return "down"
	case StepRight:
		return "right"
	default:
		return fmt.Sprintf("Step(%d)", uint8(s))
	}
}

// delta returns the (row, col) offset of s.
func (s Step) delta() (dr, dc int) {
	switch s {
	case StepDown:
		return 1, 0
	case StepRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Path is a cursor over a grid tracking its current cell and the moves
// taken so far.
type Path struct {
	g        *grid.Grid
	row, col int
	steps    []Step
}

// New returns a Path bound to g, positioned at the origin.
func New(g *grid.Grid) *Path {
	return &Path{g: g}
}

// IsStepValid reports whether s can be applied from the current cell.
// Complexity: O(1).
func (p *Path) IsStepValid(s Step) bool {
	dr, dc := s.delta()
	if dr == 0 && dc == 0 {
		return false
	}

	return p.g.IsOpen(p.row+dr, p.col+dc)
}

// AddStep applies s, or returns ErrInvalidStep without moving.
func (p *Path) AddStep(s Step) error {
	if !p.IsStepValid(s) {
		return fmt.Errorf("AddStep(%s) from (%d,%d): %w", s, p.row, p.col, ErrInvalidStep)
	}
	dr, dc := s.delta()
	p.row += dr
	p.col += dc
	p.steps = append(p.steps, s)

	return nil
}

// FinalRow returns the row of the current cell.
func (p *Path) FinalRow() int { return p.row }

// FinalColumn returns the column of the current cell.
func (p *Path) FinalColumn() int { return p.col }

// Len returns the number of moves applied.
func (p *Path) Len() int { return len(p.steps) }

// Steps returns a copy of the applied moves in order.
func (p *Path) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)

	return out
}

// AtGoal reports whether the cursor sits on the bottom-right cell.
func (p *Path) AtGoal() bool {
	return p.row == p.g.Rows()-1 && p.col == p.g.Columns()-1
}
