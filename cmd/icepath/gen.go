// SPDX-License-Identifier: MIT
// Package: icepath/cmd/icepath
//
// gen.go — `icepath gen`: print a random grid.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/icepath/grid"
	"github.com/katalvlaran/icepath/internal/config"
)

func newGenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print a random grid in text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gc := a.cfg.Generate
			g, err := grid.Random(gc.Rows, gc.Cols, grid.WithSeed(gc.Seed), grid.WithDensity(gc.Density))
			if err != nil {
				return err
			}
			a.log.Debug("grid generated", "rows", gc.Rows, "cols", gc.Cols, "density", gc.Density, "seed", gc.Seed)
			_, err = fmt.Fprint(cmd.OutOrStdout(), g)

			return err
		},
	}
	def := config.Default().Generate
	f := cmd.Flags()
	f.Int("rows", def.Rows, "number of rows")
	f.Int("cols", def.Cols, "number of columns")
	f.Float64("density", def.Density, "iceberg probability per cell, in [0,1]")
	f.Int64("seed", def.Seed, "random seed")

	return cmd
}

// applyGenerateFlags copies changed gen flags into gc. Commands without
// these flags leave gc untouched.
func applyGenerateFlags(cmd *cobra.Command, gc *config.Generate) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("rows") {
		if gc.Rows, err = flags.GetInt("rows"); err != nil {
			return err
		}
	}
	if flags.Changed("cols") {
		if gc.Cols, err = flags.GetInt("cols"); err != nil {
			return err
		}
	}
	if flags.Changed("density") {
		if gc.Density, err = flags.GetFloat64("density"); err != nil {
			return err
		}
	}
	if flags.Changed("seed") {
		if gc.Seed, err = flags.GetInt64("seed"); err != nil {
			return err
		}
	}

	return nil
}
