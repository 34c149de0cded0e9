// SPDX-License-Identifier: MIT
// Package: standings/fixture
//
// round_robin.go - circle-method league schedule.
//
// Contract:
//   • len(teams) ≥ 2, names non-empty and unique.
//   • Single round: n(n-1)/2 matches; WithDoubleRound doubles it.
//   • Rounds are emitted in order; each round is dated one day after the last.
//   • The caller's slice is never modified.

package fixture

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/standings/core"
)

const methodRoundRobin = "RoundRobin"

// RoundRobin schedules every pair of teams once (twice with WithDoubleRound)
// and fills in seeded scores.
func RoundRobin(teams []string, opts ...Option) ([]core.Match, error) {
	if len(teams) < 2 {
		return nil, fmt.Errorf("%s: n=%d < 2: %w", methodRoundRobin, len(teams), ErrTooFewTeams)
	}
	seen := make(map[string]bool, len(teams))
	for _, name := range teams {
		if strings.TrimSpace(name) == "" || seen[name] {
			return nil, fmt.Errorf("%s: %q: %w", methodRoundRobin, name, ErrInvalidTeam)
		}
		seen[name] = true
	}
	cfg := newConfig(opts...)

	rounds := schedule(teams)
	out := make([]core.Match, 0, len(teams)*(len(teams)-1))
	day := 0
	emit := func(home, away string) {
		out = append(out, core.Match{
			Date:       cfg.start.AddDate(0, 0, day),
			HomeTeam:   home,
			AwayTeam:   away,
			HomeScore:  cfg.goals(),
			AwayScore:  cfg.goals(),
			Tournament: cfg.tournament,
			Country:    home,
		})
	}
	for _, round := range rounds {
		for _, p := range round {
			emit(p[0], p[1])
		}
		day++
	}
	if cfg.double {
		for _, round := range rounds {
			for _, p := range round {
				emit(p[1], p[0])
			}
			day++
		}
	}

	return out, nil
}

// schedule returns rounds of [home, away] pairs. An odd team count gets a
// bye slot whose pairings are dropped.
func schedule(teams []string) [][][2]string {
	ring := append([]string(nil), teams...)
	if len(ring)%2 != 0 {
		ring = append(ring, "")
	}
	n := len(ring)

	rounds := make([][][2]string, 0, n-1)
	for r := 0; r < n-1; r++ {
		round := make([][2]string, 0, n/2)
		for i := 0; i < n/2; i++ {
			home, away := ring[i], ring[n-1-i]
			if home == "" || away == "" {
				continue
			}
			// alternate the fixed team's venue so home games spread evenly
			if i == 0 && r%2 == 1 {
				home, away = away, home
			}
			round = append(round, [2]string{home, away})
		}
		rounds = append(rounds, round)

		// rotate all but the first slot
		last := ring[n-1]
		copy(ring[2:], ring[1:n-1])
		ring[1] = last
	}

	return rounds
}
