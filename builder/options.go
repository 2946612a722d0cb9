// SPDX-License-Identifier: MIT
// Package: lol/builder
//
// options.go — functional options for RandomSparse, following the
// WithSeed/WithRand pattern the graph builder this package is modeled
// on uses for its own stochastic constructors.

package builder

import "math/rand"

// RandomOption customizes RandomSparse's RNG source.
type RandomOption func(*randomConfig)

type randomConfig struct {
	rng *rand.Rand
}

func resolveRandomConfig(opts []RandomOption) randomConfig {
	var c randomConfig
	for _, apply := range opts {
		apply(&c)
	}
	return c
}

// WithRand supplies an explicit RNG. Panics on nil: an option
// constructor validating its argument is the caller's earliest chance
// to catch a programmer error, before any sampling has happened.
func WithRand(r *rand.Rand) RandomOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *randomConfig) { c.rng = r }
}

// WithSeed creates a new deterministic RNG from seed. Two RandomSparse
// calls with the same shape, probability and seed sample the same
// coordinates in the same trial order.
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
