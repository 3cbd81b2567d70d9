// SPDX-License-Identifier: MIT
// Package: icepath/grid
//
// text.go — textual grid format.
//
// Format:
//   • One line per row, top row first.
//   • '.' is an open cell, 'X' (or 'x') is an iceberg.
//   • Blank lines and lines starting with '#' are skipped.
//   • Trailing whitespace (including '\r') is ignored.
//
// String renders the same format, so Parse(String(g)) reproduces g.

package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const methodParse = "Parse"

// Parse reads a grid in text format from r.
// Returns ErrParse for unknown symbols or read failures, plus the
// sentinels of New for shape violations.
// Complexity: O(R·C).
func Parse(r io.Reader) (*Grid, error) {
	var cells [][]Cell
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if text == "" || text[0] == symbolComment {
			continue
		}
		row := make([]Cell, 0, len(text))
		for col, ch := range text {
			switch ch {
			case symbolOpen:
				row = append(row, CellOpen)
			case symbolIceberg, 'x':
				row = append(row, CellIceberg)
			default:
				return nil, fmt.Errorf("%s: line %d, column %d: unexpected %q: %w",
					methodParse, line, col+1, ch, ErrParse)
			}
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodParse, err, ErrParse)
	}

	g, err := New(cells)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodParse, err)
	}

	return g, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// String renders g in text format, one newline-terminated line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteString(g.cells[g.index(r, c)].String())
		}
		b.WriteByte('\n')
	}

	return b.String()
}
