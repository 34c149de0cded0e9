// SPDX-License-Identifier: MIT

package standings_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/katalvlaran/standings/core"
	"github.com/katalvlaran/standings/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func m(home string, hs, as int, away string) core.Match {
	return core.Match{HomeTeam: home, AwayTeam: away, HomeScore: hs, AwayScore: as}
}

func scores(teams []*core.Team) map[string]int {
	out := make(map[string]int, len(teams))
	for _, t := range teams {
		out[t.Name] = t.Score
	}
	return out
}

// TestAggregate_BrazilChile is the documented two-match example.
func TestAggregate_BrazilChile(t *testing.T) {
	matches := []core.Match{m("Brazil", 2, 1, "Chile"), m("Chile", 0, 3, "Brazil")}

	teams, err := standings.Aggregate(matches)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Brazil", teams[0].Name, "order of first appearance")
	assert.Equal(t, 6, teams[0].Score)
	assert.Equal(t, "Chile", teams[1].Name)
	assert.Equal(t, 0, teams[1].Score)

	assert.Equal(t, 2, teams[0].Wins)
	assert.Equal(t, 5, teams[0].GoalsFor)
	assert.Equal(t, 1, teams[0].GoalsAgainst)
	assert.Equal(t, 2, teams[1].Losses)
	assert.Equal(t, 2, teams[1].Played)
}

// TestAggregate_Policies runs the same fixtures through every built-in policy.
func TestAggregate_Policies(t *testing.T) {
	matches := []core.Match{
		m("Brazil", 2, 1, "Chile"),
		m("Chile", 0, 3, "Brazil"),
		m("Peru", 1, 1, "Chile"),
	}
	cases := []struct {
		policy standings.ScoringPolicy
		want   map[string]int
	}{
		{standings.ThreePointsForWin, map[string]int{"Brazil": 6, "Chile": 1, "Peru": 1}},
		{standings.TwoPointsForWin, map[string]int{"Brazil": 4, "Chile": 1, "Peru": 1}},
		{standings.GoalsScored, map[string]int{"Brazil": 5, "Chile": 2, "Peru": 1}},
		{standings.GoalDifference, map[string]int{"Brazil": 4, "Chile": -4, "Peru": 0}},
		{standings.WinDrawLoss(1, 0, -1), map[string]int{"Brazil": 2, "Chile": -2, "Peru": 0}},
	}
	for _, tc := range cases {
		t.Run(tc.policy.Name(), func(t *testing.T) {
			teams, err := standings.Aggregate(matches, standings.WithPolicy(tc.policy))
			require.NoError(t, err)
			assert.Equal(t, tc.want, scores(teams))
		})
	}
}

// TestAggregate_Idempotent re-runs aggregation on the same input.
func TestAggregate_Idempotent(t *testing.T) {
	matches := []core.Match{
		m("Uruguay", 4, 2, "Argentina"),
		m("Italy", 2, 1, "Czechoslovakia"),
		m("Argentina", 1, 1, "Italy"),
		m("Uruguay", 0, 0, "Italy"),
	}
	first, err := standings.Aggregate(matches)
	require.NoError(t, err)
	second, err := standings.Aggregate(matches)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestAggregate_EmptyAndInvalid covers the degenerate and failing inputs.
func TestAggregate_EmptyAndInvalid(t *testing.T) {
	teams, err := standings.Aggregate(nil)
	require.NoError(t, err)
	assert.NotNil(t, teams)
	assert.Empty(t, teams)

	_, err = standings.Aggregate([]core.Match{m("Brazil", 1, 0, "Chile"), m("", 1, 0, "Chile")})
	assert.ErrorIs(t, err, core.ErrInvalidMatch)
	assert.Contains(t, err.Error(), "match 1")

	_, err = standings.Aggregate([]core.Match{m("Brazil", -1, 0, "Chile")})
	assert.ErrorIs(t, err, core.ErrInvalidMatch)

	_, err = standings.Aggregate(nil, standings.WithPolicy(nil))
	assert.ErrorIs(t, err, standings.ErrOptionViolation)
}

func TestPolicyByName(t *testing.T) {
	p, err := standings.PolicyByName(" 3-1-0 ")
	require.NoError(t, err)
	assert.Equal(t, standings.ThreePointsForWin, p)

	p, err = standings.PolicyByName("Goal-Difference")
	require.NoError(t, err)
	assert.Equal(t, "goal-difference", p.Name())

	_, err = standings.PolicyByName("elo")
	assert.ErrorIs(t, err, standings.ErrUnknownPolicy)

	assert.Equal(t, []string{"2-1-0", "3-1-0", "goal-difference", "goals-scored"}, standings.PolicyNames())
}

// TestAggregate_Logger checks that a supplied logger receives the stage line.
func TestAggregate_Logger(t *testing.T) {
	var buf bytes.Buffer
	_, err := standings.Aggregate([]core.Match{m("Brazil", 1, 0, "Chile")},
		standings.WithLogger(log.New(&buf, "", 0)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "aggregated 1 matches into 2 teams (policy 3-1-0)")
}
