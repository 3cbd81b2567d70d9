// SPDX-License-Identifier: MIT
// Package: icepath/cmd/icepath
//
// count.go — `icepath count`.

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/icepath/grid"
	"github.com/katalvlaran/icepath/icebergs"
	"github.com/katalvlaran/icepath/internal/config"
)

func newCountCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [grid-file|-]",
		Short: "Count iceberg-avoiding paths with the selected method",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, name, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			a.log.Info("grid loaded", "source", name, "rows", g.Rows(), "cols", g.Columns(), "icebergs", g.Icebergs())

			var results []countResult
			switch a.cfg.Method {
			case config.MethodExhaustive:
				results, err = a.runExhaustive(g, results)
			case config.MethodDynProg:
				results, err = a.runDynProg(g, results)
			case config.MethodBoth:
				if results, err = a.runExhaustive(g, results); err == nil {
					results, err = a.runDynProg(g, results)
				}
			}
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "method=%s count=%s\n", r.method, r.count)
			}
			if len(results) == 2 && results[0].count != results[1].count {
				return fmt.Errorf("exhaustive=%s dynprog=%s: %w", results[0].count, results[1].count, icebergs.ErrDisagreement)
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.String("method", config.MethodDynProg, "counter: dynprog, exhaustive or both")
	f.String("memory-mode", config.MemoryFull, "dynprog table layout: full or rolling")
	f.Int("max-cells", icebergs.DefaultMaxCells, "dynprog table capacity in cells")
	f.Bool("big", false, "use arbitrary-precision counts for dynprog")

	return cmd
}

// countResult is one printed line of `icepath count`.
type countResult struct {
	method string
	count  string
}

func (a *app) runExhaustive(g *grid.Grid, acc []countResult) ([]countResult, error) {
	start := time.Now()
	n, err := icebergs.Exhaustive(g)
	if err != nil {
		return nil, err
	}
	a.log.Info("counted", "method", config.MethodExhaustive, "count", n, "elapsed", time.Since(start))

	return append(acc, countResult{config.MethodExhaustive, strconv.FormatUint(n, 10)}), nil
}

func (a *app) runDynProg(g *grid.Grid, acc []countResult) ([]countResult, error) {
	start := time.Now()
	opts := a.cfg.CounterOptions()
	if a.cfg.Big {
		n, err := icebergs.DynProgBig(g, opts...)
		if err != nil {
			return nil, err
		}
		a.log.Info("counted", "method", config.MethodDynProg, "big", true, "count", n.String(), "elapsed", time.Since(start))

		return append(acc, countResult{config.MethodDynProg, n.String()}), nil
	}
	n, err := icebergs.DynProg(g, opts...)
	if err != nil {
		return nil, err
	}
	a.log.Info("counted", "method", config.MethodDynProg, "memory_mode", a.cfg.MemoryMode, "count", n, "elapsed", time.Since(start))

	return append(acc, countResult{config.MethodDynProg, strconv.FormatUint(n, 10)}), nil
}
