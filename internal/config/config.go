// SPDX-License-Identifier: MIT
// Package: icepath/internal/config
//
// config.go — run configuration for the icepath command.
//
// Sources, lowest to highest precedence:
//   • Default()
//   • an optional YAML file (Load)
//   • command-line flags (applied by the caller, then Validate again)

// Package config loads and validates icepath run settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/icepath/icebergs"
)

// ErrInvalidConfig indicates a configuration that failed to load or validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Counting methods.
const (
	MethodExhaustive = "exhaustive"
	MethodDynProg    = "dynprog"
	MethodBoth       = "both"
)

// Memory modes as spelled in YAML and on the command line.
const (
	MemoryFull    = "full"
	MemoryRolling = "rolling"
)

// Config holds every knob of an icepath run.
type Config struct {
	// Method selects the counter(s) to run.
	Method string `yaml:"method" validate:"required,oneof=exhaustive dynprog both"`
	// MemoryMode selects the DynProg table layout.
	MemoryMode string `yaml:"memory_mode" validate:"required,oneof=full rolling"`
	// MaxCells caps the DynProg table size.
	MaxCells int `yaml:"max_cells" validate:"gte=1"`
	// Big switches DynProg to arbitrary precision.
	Big bool `yaml:"big"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"required,oneof=debug info warn error"`
	// LogFormat is text or json.
	LogFormat string `yaml:"log_format" validate:"required,oneof=text json"`
	// Generate configures the gen command.
	Generate Generate `yaml:"generate"`
}

// Generate configures random grid generation.
type Generate struct {
	Rows    int     `yaml:"rows" validate:"gte=1"`
	Cols    int     `yaml:"cols" validate:"gte=1"`
	Density float64 `yaml:"density" validate:"gte=0,lte=1"`
	Seed    int64   `yaml:"seed"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Method:     MethodDynProg,
		MemoryMode: MemoryFull,
		MaxCells:   icebergs.DefaultMaxCells,
		LogLevel:   "info",
		LogFormat:  "text",
		Generate: Generate{
			Rows:    10,
			Cols:    10,
			Density: 0.2,
			Seed:    1,
		},
	}
}

// Load returns Default overlaid with the YAML file at path. An empty
// path yields the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %v: %w", path, err, ErrInvalidConfig)
	}

	return cfg.overlay(path, bytes.NewReader(data))
}

// overlay decodes YAML from r on top of cfg and validates the result.
func (cfg Config) overlay(name string, r io.Reader) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %v: %w", name, err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", name, err)
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (cfg Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}

	return nil
}

// CounterOptions translates the DynProg settings into icebergs options.
func (cfg Config) CounterOptions() []icebergs.Option {
	mode := icebergs.FullTable
	if cfg.MemoryMode == MemoryRolling {
		mode = icebergs.RollingRow
	}

	return []icebergs.Option{
		icebergs.WithMaxCells(cfg.MaxCells),
		icebergs.WithMemoryMode(mode),
	}
}

// SlogLevel maps LogLevel onto slog levels; unknown values mean info.
func (cfg Config) SlogLevel() slog.Level {
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a slog.Logger writing to w in the configured format.
func (cfg Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
