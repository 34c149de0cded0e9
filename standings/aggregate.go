// SPDX-License-Identifier: MIT

package standings

import (
	"fmt"

	"github.com/katalvlaran/standings/core"
)

// Aggregate reduces matches into one Team per distinct name, ordered by
// first appearance. Matches are processed once, in input order. The first
// invalid match aborts with an error wrapping core.ErrInvalidMatch.
// Empty input returns an empty, non-nil slice.
func Aggregate(matches []core.Match, opts ...Option) ([]*core.Team, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return aggregate(matches, o)
}

func aggregate(matches []core.Match, o Options) ([]*core.Team, error) {
	teams := make([]*core.Team, 0)
	index := make(map[string]*core.Team)
	entry := func(name string) *core.Team {
		if t, ok := index[name]; ok {
			return t
		}
		t := &core.Team{Name: name}
		index[name] = t
		teams = append(teams, t)
		return t
	}

	for i, m := range matches {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("standings: match %d (%s vs %s): %w", i, m.HomeTeam, m.AwayTeam, err)
		}
		home, away := entry(m.HomeTeam), entry(m.AwayTeam)
		record(home, m.HomeScore, m.AwayScore, o.Policy)
		record(away, m.AwayScore, m.HomeScore, o.Policy)
	}
	o.Logger.Printf("aggregated %d matches into %d teams (policy %s)", len(matches), len(teams), o.Policy.Name())

	return teams, nil
}

// record applies one side's result to its running totals.
func record(t *core.Team, goalsFor, goalsAgainst int, p ScoringPolicy) {
	t.Played++
	t.GoalsFor += goalsFor
	t.GoalsAgainst += goalsAgainst
	switch {
	case goalsFor > goalsAgainst:
		t.Wins++
	case goalsFor < goalsAgainst:
		t.Losses++
	default:
		t.Draws++
	}
	t.Score += p.Points(goalsFor, goalsAgainst)
}
