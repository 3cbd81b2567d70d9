// SPDX-License-Identifier: MIT
// Package: icepath/cmd/icepath

// Command icepath counts iceberg-avoiding monotone paths across grids.
//
// Usage:
//
//	icepath count  [grid-file|-] [--method dynprog|exhaustive|both] [--memory-mode full|rolling] [--big]
//	icepath verify [grid-file|-]
//	icepath gen    [--rows N] [--cols N] [--density P] [--seed S]
//
// Grid files use one line per row: '.' open, 'X' iceberg, '#' comments.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "icepath:", err)
		os.Exit(exitCode(err))
	}
}
