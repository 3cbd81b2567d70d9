// SPDX-License-Identifier: MIT
// Package: icepath/cmd/icepath
//
// root.go — command tree, shared flags and config resolution.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/icepath/grid"
	"github.com/katalvlaran/icepath/internal/config"
)

// errUsage marks errors caused by bad command-line input (exit code 2).
var errUsage = errors.New("usage error")

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	cfg        config.Config
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "icepath",
		Short:         "Count monotone paths that avoid icebergs on a grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")

	root.AddCommand(newCountCmd(a), newVerifyCmd(a), newGenCmd(a))

	return root
}

// resolve loads the config file, applies changed flags on top, validates
// and builds the logger.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	flags := cmd.Flags()
	overrides := []struct {
		name string
		dst  *string
	}{
		{"log-level", &cfg.LogLevel},
		{"log-format", &cfg.LogFormat},
		{"method", &cfg.Method},
		{"memory-mode", &cfg.MemoryMode},
	}
	for _, o := range overrides {
		if f := flags.Lookup(o.name); f != nil && f.Changed {
			*o.dst = f.Value.String()
		}
	}
	if flags.Changed("max-cells") {
		if cfg.MaxCells, err = flags.GetInt("max-cells"); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
	}
	if flags.Changed("big") {
		if cfg.Big, err = flags.GetBool("big"); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
	}
	if err := applyGenerateFlags(cmd, &cfg.Generate); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	a.cfg = cfg
	a.log = cfg.NewLogger(cmd.ErrOrStderr())
	a.log.Debug("configuration resolved",
		"config", a.configPath, "method", cfg.Method, "memory_mode", cfg.MemoryMode,
		"max_cells", cfg.MaxCells, "big", cfg.Big)

	return nil
}

// readGrid parses the grid named by args[0], or stdin when absent or "-".
func readGrid(cmd *cobra.Command, args []string) (*grid.Grid, string, error) {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}
	var r io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, name, err
		}
		defer f.Close()
		r = f
	}
	g, err := grid.Parse(r)
	if err != nil {
		return nil, name, fmt.Errorf("%s: %w", name, err)
	}

	return g, name, nil
}

// exitCode maps usage errors to 2 and everything else to 1.
func exitCode(err error) int {
	if errors.Is(err, errUsage) {
		return 2
	}

	return 1
}
