// SPDX-License-Identifier: MIT
// Package: icepath/cmd/icepath
//
// verify.go — `icepath verify`: cross-check both counters.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/icepath/icebergs"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [grid-file|-]",
		Short: "Run both counters concurrently and fail if they disagree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, name, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			n, err := icebergs.CrossCheck(cmd.Context(), g, a.cfg.CounterOptions()...)
			if err != nil {
				a.log.Error("cross-check failed", "source", name, "err", err)
				return err
			}
			a.log.Info("cross-check passed", "source", name, "count", n)
			fmt.Fprintf(cmd.OutOrStdout(), "ok count=%d\n", n)

			return nil
		},
	}
}
