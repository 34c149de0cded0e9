// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadConfig_EnvThenFlags(t *testing.T) {
	getenv := env(map[string]string{
		envInput:  "results.csv",
		envTop:    "5",
		envPolicy: "2-1-0",
		envAddr:   ":9000",
	})

	cfg, err := loadConfig(nil, getenv, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "results.csv", cfg.input)
	assert.Equal(t, 5, cfg.top)
	assert.Equal(t, "2-1-0", cfg.policy)
	assert.Equal(t, ":9000", cfg.addr)

	cfg, err = loadConfig([]string{"-top", "3", "-policy", "goals-scored", "-input", "other.csv"}, getenv, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.top)
	assert.Equal(t, "goals-scored", cfg.policy)
	assert.Equal(t, "other.csv", cfg.input)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig([]string{"-demo"}, env(nil), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.top)
	assert.Equal(t, "3-1-0", cfg.policy)
	assert.True(t, cfg.demo)
	assert.Empty(t, cfg.addr)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(nil, env(nil), io.Discard)
	assert.ErrorContains(t, err, "no input")

	_, err = loadConfig([]string{"-demo"}, env(map[string]string{envTop: "many"}), io.Discard)
	assert.Error(t, err)

	_, err = loadConfig([]string{"-demo", "-top", "-2"}, env(nil), io.Discard)
	assert.Error(t, err)

	_, err = loadConfig([]string{"-nope"}, env(nil), io.Discard)
	assert.Error(t, err)
}

func TestSplitNames(t *testing.T) {
	names, err := splitNames(`Brazil "Costa Rica"  Peru`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Brazil", "Costa Rica", "Peru"}, names)

	names, err = splitNames(`“Trinidad and Tobago” Chile`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Trinidad and Tobago", "Chile"}, names)
}

func TestRun_Demo(t *testing.T) {
	dir := t.TempDir()
	cfg, err := loadConfig([]string{
		"-demo", "-seed", "7", "-top", "3",
		"-find", "Brazil Brazl",
		"-summary", filepath.Join(dir, "out", "summary.csv"),
		"-standings", filepath.Join(dir, "out", "standings.csv"),
		"-sqlite", filepath.Join(dir, "standings.db"),
	}, env(nil), io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &out, log.New(io.Discard, "", 0)))

	report := out.String()
	assert.Contains(t, report, "Matches: 90 loaded, 0 filtered")
	assert.Contains(t, report, "Policy: 3-1-0, 10 teams")
	assert.Contains(t, report, "Top 3:")
	assert.Contains(t, report, "Bottom 3:")
	assert.Contains(t, report, "Lookups:")
	assert.Contains(t, report, "  Brazil: ")
	assert.Contains(t, report, "Brazl: not found, did you mean Brazil")

	summary, err := os.ReadFile(filepath.Join(dir, "out", "summary.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(summary)), "\n")
	assert.Len(t, lines, 91)
	assert.Equal(t, "year,country,home_team,away_team,score", lines[0])

	ranked, err := os.ReadFile(filepath.Join(dir, "out", "standings.csv"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(ranked)), "\n"), 11)

	assert.FileExists(t, filepath.Join(dir, "standings.db"))
}

func TestRun_UnknownPolicy(t *testing.T) {
	cfg, err := loadConfig([]string{"-demo", "-policy", "bonus-points"}, env(nil), io.Discard)
	require.NoError(t, err)
	err = run(context.Background(), cfg, io.Discard, log.New(io.Discard, "", 0))
	assert.Error(t, err)
}
