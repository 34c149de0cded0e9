// SPDX-License-Identifier: MIT
// Package: standings/fixture
//
// config.go - internal configuration and deterministic defaults.

package fixture

import (
	"math"
	"math/rand"
	"time"
)

const (
	defaultSeed       = 1
	defaultMeanGoals  = 1.4
	defaultMaxGoals   = 9
	defaultTournament = "Friendly"
)

// config is resolved once per generator call and passed by value.
type config struct {
	rng        *rand.Rand
	meanGoals  float64
	maxGoals   int
	start      time.Time
	tournament string
	double     bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		meanGoals:  defaultMeanGoals,
		maxGoals:   defaultMaxGoals,
		start:      time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		tournament: defaultTournament,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// goals draws a Poisson(meanGoals) sample capped at maxGoals (Knuth's method).
func (c config) goals() int {
	limit := math.Exp(-c.meanGoals)
	k, p := 0, 1.0
	for {
		p *= c.rng.Float64()
		if p <= limit {
			break
		}
		k++
	}

	return min(k, c.maxGoals)
}
