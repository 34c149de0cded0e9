// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/standings/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMatch() core.Match {
	return core.Match{
		Date:      time.Date(1950, time.July, 16, 0, 0, 0, 0, time.UTC),
		HomeTeam:  "Uruguay",
		AwayTeam:  "Brazil",
		HomeScore: 2,
		AwayScore: 1,
		City:      "Rio de Janeiro",
		Country:   "Brazil",
	}
}

// TestMatch_Validate covers each invariant of Match.
func TestMatch_Validate(t *testing.T) {
	require.NoError(t, sampleMatch().Validate())

	m := sampleMatch()
	m.HomeTeam = "  "
	assert.ErrorIs(t, m.Validate(), core.ErrInvalidMatch, "blank home team")

	m = sampleMatch()
	m.AwayTeam = ""
	assert.ErrorIs(t, m.Validate(), core.ErrInvalidMatch, "empty away team")

	m = sampleMatch()
	m.AwayScore = -1
	assert.ErrorIs(t, m.Validate(), core.ErrInvalidMatch, "negative score")

	m = sampleMatch()
	m.HomeScore, m.AwayScore = 0, 0
	assert.NoError(t, m.Validate(), "0-0 is a valid score")
}

// TestMatch_Helpers checks Year, ScoreLine and Outcome.
func TestMatch_Helpers(t *testing.T) {
	m := sampleMatch()
	assert.Equal(t, 1950, m.Year())
	assert.Equal(t, "2-1", m.ScoreLine())
	assert.Equal(t, core.HomeWin, m.Outcome())

	m.HomeScore, m.AwayScore = 0, 3
	assert.Equal(t, core.AwayWin, m.Outcome())
	assert.Equal(t, "0-3", m.ScoreLine())

	m.HomeScore = 3
	assert.Equal(t, core.Draw, m.Outcome())
	assert.Equal(t, "draw", m.Outcome().String())
}

// TestTeam_Comparators verifies the key extractors and three-way comparators.
func TestTeam_Comparators(t *testing.T) {
	a := &core.Team{Name: "Argentina", Score: 9}
	b := &core.Team{Name: "Belgium", Score: 4}
	c := &core.Team{Name: "Chile", Score: 9}

	assert.Equal(t, 1, core.CompareScore(a, b))
	assert.Equal(t, -1, core.CompareScore(b, a))
	assert.Equal(t, 0, core.CompareScore(a, c), "equal scores compare equal regardless of name")
	assert.Equal(t, -1, core.CompareName(a, b))
	assert.Equal(t, "Chile", core.TeamName(c))
	assert.Equal(t, 9, core.TeamScore(c))
}

func TestTeam_GoalDiffAndString(t *testing.T) {
	tm := &core.Team{Name: "Peru", Score: 7, GoalsFor: 5, GoalsAgainst: 8}
	assert.Equal(t, -3, tm.GoalDiff())
	assert.Equal(t, "Peru: 7", tm.String())

	var nilTeam *core.Team
	assert.Equal(t, "<nil>", nilTeam.String())
}

func TestDuplicatePolicy_String(t *testing.T) {
	assert.Equal(t, "overwrite", core.Overwrite.String())
	assert.Equal(t, "keep-first", core.KeepFirst.String())
}
