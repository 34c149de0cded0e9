// SPDX-License-Identifier: MIT
// Package: standings/fixture
//
// options.go - functional options for fixture generators.
//
// Option constructors validate and panic on meaningless inputs; generators
// themselves never panic and report problems through sentinel errors.

package fixture

import (
	"math/rand"
	"time"
)

// Option customizes a generator by mutating its config before use.
type Option func(*config)

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fixture: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithMeanGoals sets the Poisson mean of goals per side. Panics if mu <= 0.
func WithMeanGoals(mu float64) Option {
	if mu <= 0 {
		panic("fixture: WithMeanGoals(mu<=0)")
	}
	return func(c *config) {
		c.meanGoals = mu
	}
}

// WithMaxGoals caps the goals any side can score. Panics if n < 0.
func WithMaxGoals(n int) Option {
	if n < 0 {
		panic("fixture: WithMaxGoals(n<0)")
	}
	return func(c *config) {
		c.maxGoals = n
	}
}

// WithStartDate sets the date of the first round.
func WithStartDate(t time.Time) Option {
	return func(c *config) {
		c.start = t
	}
}

// WithTournament sets the tournament label. Empty keeps the default.
func WithTournament(name string) Option {
	return func(c *config) {
		if name != "" {
			c.tournament = name
		}
	}
}

// WithDoubleRound appends a second leg with home and away swapped.
func WithDoubleRound() Option {
	return func(c *config) {
		c.double = true
	}
}
