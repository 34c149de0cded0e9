// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/standings/core"
)

// SummaryHeader is the header row written by WriteSummary.
var SummaryHeader = []string{"year", "country", "home_team", "away_team", "score"}

// StandingsHeader is the header row written by WriteStandings.
var StandingsHeader = []string{"rank", "team", "score", "played", "wins", "draws", "losses", "goals_for", "goals_against"}

// SummaryRow renders one match as a WriteSummary row.
func SummaryRow(m core.Match) []string {
	return []string{strconv.Itoa(m.Year()), m.Country, m.HomeTeam, m.AwayTeam, m.ScoreLine()}
}

// WriteSummary writes one summary row per match.
func WriteSummary(w io.Writer, matches []core.Match) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SummaryHeader); err != nil {
		return fmt.Errorf("dataset: write summary header: %w", err)
	}
	for i, m := range matches {
		if err := cw.Write(SummaryRow(m)); err != nil {
			return fmt.Errorf("dataset: write summary row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteStandings writes teams in the given order, ranked from 1.
func WriteStandings(w io.Writer, teams []*core.Team) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(StandingsHeader); err != nil {
		return fmt.Errorf("dataset: write standings header: %w", err)
	}
	for i, t := range teams {
		row := []string{
			strconv.Itoa(i + 1), t.Name, strconv.Itoa(t.Score), strconv.Itoa(t.Played),
			strconv.Itoa(t.Wins), strconv.Itoa(t.Draws), strconv.Itoa(t.Losses),
			strconv.Itoa(t.GoalsFor), strconv.Itoa(t.GoalsAgainst),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("dataset: write standings row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// CreateFile creates path and any missing parent directories.
func CreateFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("dataset: create dir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: create %s: %w", path, err)
	}

	return f, nil
}
