// SPDX-License-Identifier: MIT

package core

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for core types.
var (
	// ErrInvalidMatch indicates a Match with an empty team name or a negative score.
	ErrInvalidMatch = errors.New("core: invalid match")

	// ErrNilTeam indicates a nil *Team was passed where a team is required.
	ErrNilTeam = errors.New("core: team is nil")

	// ErrPrecondition indicates that a caller violated an operation's contract.
	ErrPrecondition = errors.New("core: invalid precondition")
)

// Outcome is the result of a Match from the home side's point of view.
type Outcome int

const (
	// Draw means both sides scored the same number of goals.
	Draw Outcome = iota
	// HomeWin means the home side scored more.
	HomeWin
	// AwayWin means the away side scored more.
	AwayWin
)

// String returns a short lowercase label.
func (o Outcome) String() string {
	switch o {
	case HomeWin:
		return "home"
	case AwayWin:
		return "away"
	default:
		return "draw"
	}
}

// Match is a single historical fixture. It is treated as immutable once loaded.
type Match struct {
	Date       time.Time
	HomeTeam   string
	AwayTeam   string
	HomeScore  int
	AwayScore  int
	Tournament string
	City       string
	Country    string
	Neutral    bool
}

// Validate checks that both team names are non-empty and both scores are non-negative.
func (m Match) Validate() error {
	if strings.TrimSpace(m.HomeTeam) == "" {
		return fmt.Errorf("%w: empty home team", ErrInvalidMatch)
	}
	if strings.TrimSpace(m.AwayTeam) == "" {
		return fmt.Errorf("%w: empty away team", ErrInvalidMatch)
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return fmt.Errorf("%w: negative score %d-%d", ErrInvalidMatch, m.HomeScore, m.AwayScore)
	}

	return nil
}

// Year returns the calendar year the match was played in.
func (m Match) Year() int { return m.Date.Year() }

// ScoreLine renders the score as "H-A", e.g. "2-1".
func (m Match) ScoreLine() string {
	return fmt.Sprintf("%d-%d", m.HomeScore, m.AwayScore)
}

// Outcome reports which side won, or Draw.
func (m Match) Outcome() Outcome {
	switch {
	case m.HomeScore > m.AwayScore:
		return HomeWin
	case m.HomeScore < m.AwayScore:
		return AwayWin
	default:
		return Draw
	}
}

// Team holds the standings of one side across all processed matches.
//
// Score is the aggregate standings value produced by the active scoring
// policy; the remaining counters are plain table statistics.
type Team struct {
	Name         string
	Score        int
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

// GoalDiff returns GoalsFor minus GoalsAgainst.
func (t *Team) GoalDiff() int { return t.GoalsFor - t.GoalsAgainst }

// String renders "Name: Score".
func (t *Team) String() string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %d", t.Name, t.Score)
}

// TeamName extracts the name key of a team.
func TeamName(t *Team) string { return t.Name }

// TeamScore extracts the score key of a team.
func TeamScore(t *Team) int { return t.Score }

// CompareScore orders teams by ascending Score. Equal scores compare equal.
func CompareScore(a, b *Team) int { return cmp.Compare(a.Score, b.Score) }

// CompareName orders teams lexicographically by Name.
func CompareName(a, b *Team) int { return strings.Compare(a.Name, b.Name) }

// DuplicatePolicy decides what an ordered index does when a key is inserted twice.
// bst.Tree and avl.Tree share this type so both indexes behave identically.
type DuplicatePolicy int

const (
	// Overwrite replaces the stored value (last write wins). This is the default.
	Overwrite DuplicatePolicy = iota
	// KeepFirst ignores the new value and keeps the one inserted first.
	KeepFirst
)

// String returns the policy label.
func (p DuplicatePolicy) String() string {
	if p == KeepFirst {
		return "keep-first"
	}
	return "overwrite"
}
