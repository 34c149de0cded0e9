// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-andiamo/splitter"
	"github.com/katalvlaran/standings/standings"
)

// Environment variables that seed flag defaults.
const (
	envInput     = "STANDINGS_INPUT"
	envSummary   = "STANDINGS_SUMMARY"
	envStandings = "STANDINGS_STANDINGS"
	envSQLite    = "STANDINGS_SQLITE"
	envTop       = "STANDINGS_TOP"
	envPolicy    = "STANDINGS_POLICY"
	envAddr      = "STANDINGS_ADDR"
)

type config struct {
	input     string
	summary   string
	standings string
	sqlite    string
	top       int
	policy    string
	find      string
	addr      string
	demo      bool
	seed      int64
	verbose   bool
}

// loadConfig builds a config from env defaults overridden by args.
func loadConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	top := standings.DefaultTopN
	if v := getenv(envTop); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return config{}, fmt.Errorf("%s=%q: %w", envTop, v, err)
		}
		top = n
	}
	policy := getenv(envPolicy)
	if policy == "" {
		policy = standings.ThreePointsForWin.Name()
	}

	var cfg config
	fs := flag.NewFlagSet("standings", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "input", getenv(envInput), "match results CSV")
	fs.StringVar(&cfg.summary, "summary", getenv(envSummary), "write the match summary CSV here")
	fs.StringVar(&cfg.standings, "standings", getenv(envStandings), "write the ranked standings CSV here")
	fs.StringVar(&cfg.sqlite, "sqlite", getenv(envSQLite), "export teams and match summary to this SQLite file")
	fs.IntVar(&cfg.top, "top", top, "size of the top and bottom rankings")
	fs.StringVar(&cfg.policy, "policy", policy,
		"scoring policy, one of: "+strings.Join(standings.PolicyNames(), ", "))
	fs.StringVar(&cfg.find, "find", "", `team names to look up, space separated; quote names with spaces ("Costa Rica")`)
	fs.StringVar(&cfg.addr, "serve", getenv(envAddr), "serve the report over HTTP on this address, e.g. :8080")
	fs.BoolVar(&cfg.demo, "demo", false, "use a generated round-robin instead of -input")
	fs.Int64Var(&cfg.seed, "seed", 1, "random seed for -demo")
	fs.BoolVar(&cfg.verbose, "v", false, "log pipeline details")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.top < 0 {
		return config{}, fmt.Errorf("-top must not be negative, got %d", cfg.top)
	}
	if cfg.input == "" && !cfg.demo {
		return config{}, fmt.Errorf("no input: set -input, %s, or -demo", envInput)
	}

	return cfg, nil
}

var quotes = strings.NewReplacer(`"`, "", "“", "", "”", "")

// splitNames splits a -find value on spaces, keeping quoted names whole.
func splitNames(s string) ([]string, error) {
	sp, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := sp.Split(s)
	if err != nil {
		return nil, fmt.Errorf("-find %q: %w", s, err)
	}

	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = quotes.Replace(p)
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}

	return names, nil
}
