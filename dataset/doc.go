// SPDX-License-Identifier: MIT

// Package dataset moves match records and standings in and out of files.
//
// Reading
//
//	ReadMatches parses a header-driven CSV of historical results with the
//	columns date, home_team, away_team, home_score, away_score and the
//	optional tournament, city, country, neutral. Rows with a missing
//	required value ("", "na", "n/a", "null", "none", "-") or a value that
//	does not convert (date layout 2006-01-02, non-negative integer scores)
//	are skipped and counted in Stats.Filtered instead of failing the load.
//
// Writing
//
//   - WriteSummary:   year,country,home_team,away_team,score with score "H-A".
//   - WriteStandings: one ranked row per team.
//   - ExportSQLite:   teams and match_summary tables in a SQLite file,
//     dropped and recreated on every export.
//
// Errors
//
//   - ErrMissingColumn  the header lacks a required column.
//   - I/O and SQL errors are wrapped with the failing step.
package dataset
