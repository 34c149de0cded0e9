// SPDX-License-Identifier: MIT

package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/katalvlaran/standings/core"
	_ "modernc.org/sqlite"
)

var schema = []string{
	`DROP TABLE IF EXISTS teams`,
	`DROP TABLE IF EXISTS match_summary`,
	`CREATE TABLE teams (
		name          TEXT    PRIMARY KEY,
		score         INTEGER NOT NULL,
		played        INTEGER NOT NULL,
		wins          INTEGER NOT NULL,
		draws         INTEGER NOT NULL,
		losses        INTEGER NOT NULL,
		goals_for     INTEGER NOT NULL,
		goals_against INTEGER NOT NULL
	)`,
	`CREATE TABLE match_summary (
		id        INTEGER PRIMARY KEY,
		year      INTEGER NOT NULL,
		country   TEXT    NOT NULL,
		home_team TEXT    NOT NULL,
		away_team TEXT    NOT NULL,
		score     TEXT    NOT NULL
	)`,
}

// ExportSQLite writes teams and the match summary into the SQLite database
// at path, replacing both tables. Everything happens in one transaction.
func ExportSQLite(ctx context.Context, path string, teams []*core.Team, matches []core.Match) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("dataset: open sqlite %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("dataset: begin: %w", err)
	}
	defer tx.Rollback()

	for _, q := range schema {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("dataset: migrate: %w", err)
		}
	}

	teamStmt, err := tx.PrepareContext(ctx, `INSERT INTO teams
		(name, score, played, wins, draws, losses, goals_for, goals_against)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("dataset: prepare teams: %w", err)
	}
	defer teamStmt.Close()
	for _, t := range teams {
		if _, err := teamStmt.ExecContext(ctx, t.Name, t.Score, t.Played, t.Wins, t.Draws,
			t.Losses, t.GoalsFor, t.GoalsAgainst); err != nil {
			return fmt.Errorf("dataset: insert team %s: %w", t.Name, err)
		}
	}

	matchStmt, err := tx.PrepareContext(ctx, `INSERT INTO match_summary
		(year, country, home_team, away_team, score) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("dataset: prepare match_summary: %w", err)
	}
	defer matchStmt.Close()
	for i, m := range matches {
		if _, err := matchStmt.ExecContext(ctx, m.Year(), m.Country, m.HomeTeam, m.AwayTeam, m.ScoreLine()); err != nil {
			return fmt.Errorf("dataset: insert match %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("dataset: commit: %w", err)
	}

	return nil
}
