// SPDX-License-Identifier: MIT

// Package fixture generates deterministic synthetic match records for tests,
// benchmarks, examples and the CLI demo mode.
//
// The main entry point is RoundRobin, which schedules every pair of teams
// with the circle method (one bye per round for an odd team count) and
// draws each side's goals from a seeded Poisson sampler.
//
// Determinism
//
//	The same team list, options and seed always produce the same matches.
//	Without WithSeed or WithRand a fixed default seed is used, so fixtures
//	are reproducible out of the box.
//
// Options
//
//   - WithSeed(seed)        seeded math/rand source.
//   - WithRand(r)           explicit RNG (panics on nil).
//   - WithMeanGoals(mu)     Poisson mean per side (panics on mu <= 0).
//   - WithMaxGoals(n)       cap per side (panics on n < 0).
//   - WithStartDate(t)      date of round one; each round adds one day.
//   - WithTournament(name)  tournament label on every match.
//   - WithDoubleRound()     second leg with home and away swapped.
//
// Errors
//
//   - ErrTooFewTeams   fewer than two teams.
//   - ErrInvalidTeam   empty or duplicated team name.
package fixture
