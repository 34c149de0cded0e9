// SPDX-License-Identifier: MIT

package fixture_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/standings/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundRobin_Errors covers parameter validation.
func TestRoundRobin_Errors(t *testing.T) {
	_, err := fixture.RoundRobin(nil)
	assert.ErrorIs(t, err, fixture.ErrTooFewTeams)
	_, err = fixture.RoundRobin([]string{"Solo"})
	assert.ErrorIs(t, err, fixture.ErrTooFewTeams)
	_, err = fixture.RoundRobin([]string{"A", "A"})
	assert.ErrorIs(t, err, fixture.ErrInvalidTeam)
	_, err = fixture.RoundRobin([]string{"A", " "})
	assert.ErrorIs(t, err, fixture.ErrInvalidTeam)
}

// TestRoundRobin_EveryPairOnce checks pair coverage for even and odd team counts.
func TestRoundRobin_EveryPairOnce(t *testing.T) {
	for _, teams := range [][]string{
		{"A", "B"},
		{"A", "B", "C"},
		{"A", "B", "C", "D", "E", "F"},
		{"A", "B", "C", "D", "E", "F", "G"},
	} {
		matches, err := fixture.RoundRobin(teams)
		require.NoError(t, err)
		n := len(teams)
		require.Len(t, matches, n*(n-1)/2)

		pairs := map[[2]string]int{}
		for _, m := range matches {
			require.NoError(t, m.Validate())
			require.NotEqual(t, m.HomeTeam, m.AwayTeam)
			key := [2]string{m.HomeTeam, m.AwayTeam}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			pairs[key]++
		}
		assert.Len(t, pairs, n*(n-1)/2, "teams %v", teams)
		for p, c := range pairs {
			assert.Equal(t, 1, c, "pair %v", p)
		}
	}
}

// TestRoundRobin_DoubleRound checks the mirrored second leg.
func TestRoundRobin_DoubleRound(t *testing.T) {
	teams := []string{"A", "B", "C", "D"}
	matches, err := fixture.RoundRobin(teams, fixture.WithDoubleRound())
	require.NoError(t, err)
	require.Len(t, matches, 12)

	half := len(matches) / 2
	for i := 0; i < half; i++ {
		assert.Equal(t, matches[i].HomeTeam, matches[half+i].AwayTeam)
		assert.Equal(t, matches[i].AwayTeam, matches[half+i].HomeTeam)
	}
}

// TestRoundRobin_Deterministic verifies seeding and option plumbing.
func TestRoundRobin_Deterministic(t *testing.T) {
	teams := []string{"Brazil", "Chile", "Peru", "Uruguay"}
	a, err := fixture.RoundRobin(teams, fixture.WithSeed(9))
	require.NoError(t, err)
	b, err := fixture.RoundRobin(teams, fixture.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	start := time.Date(1930, time.July, 13, 0, 0, 0, 0, time.UTC)
	c, err := fixture.RoundRobin(teams,
		fixture.WithStartDate(start),
		fixture.WithTournament("FIFA World Cup"),
		fixture.WithMaxGoals(0),
	)
	require.NoError(t, err)
	assert.Equal(t, start, c[0].Date)
	assert.Equal(t, start.AddDate(0, 0, 2), c[len(c)-1].Date, "three rounds for four teams")
	for _, m := range c {
		assert.Equal(t, "FIFA World Cup", m.Tournament)
		assert.Equal(t, "0-0", m.ScoreLine())
	}
	assert.Equal(t, []string{"Brazil", "Chile", "Peru", "Uruguay"}, teams, "input untouched")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { fixture.WithRand(nil) })
	assert.Panics(t, func() { fixture.WithMeanGoals(0) })
	assert.Panics(t, func() { fixture.WithMaxGoals(-1) })
}
