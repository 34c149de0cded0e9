// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/standings/core"
)

// ErrMissingColumn is returned when the CSV header lacks a required column.
var ErrMissingColumn = errors.New("dataset: missing required column")

// DateLayout is the date format of the date column.
const DateLayout = "2006-01-02"

// Column names understood by ReadMatches.
const (
	ColDate       = "date"
	ColHomeTeam   = "home_team"
	ColAwayTeam   = "away_team"
	ColHomeScore  = "home_score"
	ColAwayScore  = "away_score"
	ColTournament = "tournament"
	ColCity       = "city"
	ColCountry    = "country"
	ColNeutral    = "neutral"
)

var requiredColumns = []string{ColDate, ColHomeTeam, ColAwayTeam, ColHomeScore, ColAwayScore}

var missingMarkers = map[string]bool{"": true, "na": true, "n/a": true, "null": true, "none": true, "-": true}

// Stats counts what happened to the data rows of a CSV.
type Stats struct {
	Loaded   int
	Filtered int
}

// Missing reports whether v is an empty or placeholder value.
func Missing(v string) bool {
	return missingMarkers[strings.ToLower(strings.TrimSpace(v))]
}

// LoadFile opens path and reads it with ReadMatches.
func LoadFile(path string) ([]core.Match, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadMatches(f)
}

// ReadMatches parses match records from CSV. Invalid rows are filtered, not fatal.
func ReadMatches(r io.Reader) ([]core.Match, Stats, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, Stats{}, fmt.Errorf("dataset: empty input: %w", ErrMissingColumn)
		}
		return nil, Stats{}, fmt.Errorf("dataset: read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\uFEFF")
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, Stats{}, fmt.Errorf("dataset: column %q: %w", c, ErrMissingColumn)
		}
	}

	var (
		matches []core.Match
		stats   Stats
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			stats.Filtered++
			continue
		}
		if err != nil {
			return nil, stats, fmt.Errorf("dataset: read row: %w", err)
		}

		m, ok := parseRow(rec, cols)
		if !ok {
			stats.Filtered++
			continue
		}
		matches = append(matches, m)
		stats.Loaded++
	}

	return matches, stats, nil
}

// parseRow converts one record; ok is false when the row must be filtered.
func parseRow(rec []string, cols map[string]int) (core.Match, bool) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	for _, c := range requiredColumns {
		if Missing(field(c)) {
			return core.Match{}, false
		}
	}

	date, err := time.Parse(DateLayout, field(ColDate))
	if err != nil {
		return core.Match{}, false
	}
	hs, err := strconv.Atoi(field(ColHomeScore))
	if err != nil {
		return core.Match{}, false
	}
	as, err := strconv.Atoi(field(ColAwayScore))
	if err != nil {
		return core.Match{}, false
	}

	m := core.Match{
		Date:       date,
		HomeTeam:   field(ColHomeTeam),
		AwayTeam:   field(ColAwayTeam),
		HomeScore:  hs,
		AwayScore:  as,
		Tournament: field(ColTournament),
		City:       field(ColCity),
		Country:    field(ColCountry),
		Neutral:    strings.EqualFold(field(ColNeutral), "true"),
	}
	if m.Validate() != nil {
		return core.Match{}, false
	}

	return m, true
}
