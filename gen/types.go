// SPDX-License-Identifier: MIT

// Package gen: sentinel errors and generation options.
package gen

import (
	"errors"
	"math/rand"
)

// Domain bounds for generator parameters.
const (
	minVertices = 1
	minLabels   = 1
	probMin     = 0.0
	probMax     = 1.0
)

// Sentinel errors for generator parameter validation.
var (
	// ErrTooFewVertices indicates a vertex or query size below 1.
	ErrTooFewVertices = errors.New("gen: too few vertices")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("gen: probability outside [0,1]")

	// ErrTooFewLabels indicates a label-alphabet size below 1.
	ErrTooFewLabels = errors.New("gen: too few labels")

	// ErrNeedRandSource indicates that no random source was configured.
	// Supply WithSeed or WithRand; generation never falls back to global
	// randomness.
	ErrNeedRandSource = errors.New("gen: random source required")

	// ErrQueryTooLarge indicates a requested query size exceeding the
	// data graph's order.
	ErrQueryTooLarge = errors.New("gen: query larger than graph")

	// ErrWalkExhausted indicates the random walk ran out of unvisited
	// successors before reaching the requested query size.
	ErrWalkExhausted = errors.New("gen: walk exhausted before reaching query size")
)

// Option configures a generation call.
type Option func(*genConfig)

// genConfig holds the resolved configuration; rng stays nil until an
// option provides one.
type genConfig struct {
	rng *rand.Rand
}

// WithSeed returns an Option installing a fresh deterministic source
// seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand returns an Option installing r as the random source. A nil r
// has no effect.
func WithRand(r *rand.Rand) Option {
	return func(c *genConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// gatherOptions folds opts over the zero configuration.
func gatherOptions(opts []Option) genConfig {
	var cfg genConfig
	for _, fn := range opts {
		fn(&cfg)
	}

	return cfg
}
