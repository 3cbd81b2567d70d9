// SPDX-License-Identifier: MIT
// Package: icepath/grid
//
// options.go — functional options for Random.
//
// Option constructors validate and panic on meaningless inputs; Random
// itself never panics and reports size problems as errors.

package grid

import (
	"math"
	"math/rand"
)

// Option customizes Random.
type Option func(*randomConfig)

// randomConfig holds the resolved knobs for Random.
type randomConfig struct {
	rng         *rand.Rand
	density     float64
	openCorners bool
}

const (
	defaultDensity = 0.2
	defaultSeed    = int64(1)
)

// newRandomConfig applies opts over deterministic defaults (last wins).
func newRandomConfig(opts ...Option) randomConfig {
	cfg := randomConfig{density: defaultDensity, openCorners: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// WithDensity sets the probability that a cell becomes an iceberg.
// Panics unless 0 ≤ p ≤ 1.
func WithDensity(p float64) Option {
	if math.IsNaN(p) || p < 0 || p > 1 {
		panic("grid: WithDensity outside [0,1]")
	}
	return func(c *randomConfig) { c.density = p }
}

// WithSeed seeds a fresh RNG; equal seeds give equal grids.
func WithSeed(seed int64) Option {
	return func(c *randomConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("grid: WithRand(nil)")
	}
	return func(c *randomConfig) { c.rng = r }
}

// WithOpenCorners controls whether the start and goal cells are forced
// open (the default).
func WithOpenCorners(open bool) Option {
	return func(c *randomConfig) { c.openCorners = open }
}
