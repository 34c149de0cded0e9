// SPDX-License-Identifier: MIT

// Command standings aggregates football results into team standings.
//
//	standings -input results.csv -top 5 -find 'Brazil "Costa Rica"'
//	standings -demo -summary out/summary.csv -sqlite out/standings.db
//	standings -demo -serve :8080
//
// Flags default from STANDINGS_* environment variables, which may also come
// from a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/standings/core"
	"github.com/katalvlaran/standings/dataset"
	"github.com/katalvlaran/standings/fixture"
	"github.com/katalvlaran/standings/httpapi"
	"github.com/katalvlaran/standings/sorting"
	"github.com/katalvlaran/standings/standings"
)

// demoTeams plays the -demo round-robin.
var demoTeams = []string{
	"Argentina", "Bolivia", "Brazil", "Chile", "Colombia",
	"Ecuador", "Paraguay", "Peru", "Uruguay", "Venezuela",
}

func main() {
	logger := log.New(os.Stderr, "standings: ", log.LstdFlags)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Fatalf("load .env: %v", err)
	}
	cfg, err := loadConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(ctx context.Context, cfg config, stdout io.Writer, logger *log.Logger) error {
	matches, stats, err := loadMatches(cfg)
	if err != nil {
		return err
	}
	logger.Printf("loaded %d matches (%d filtered)", stats.Loaded, stats.Filtered)

	policy, err := standings.PolicyByName(cfg.policy)
	if err != nil {
		return err
	}
	opts := []standings.Option{standings.WithPolicy(policy), standings.WithTopN(cfg.top)}
	if cfg.verbose {
		opts = append(opts, standings.WithLogger(logger))
	}
	r, err := standings.Build(matches, opts...)
	if err != nil {
		return err
	}

	printReport(stdout, r, stats)
	if cfg.find != "" {
		names, err := splitNames(cfg.find)
		if err != nil {
			return err
		}
		printLookups(stdout, r, names)
	}

	ranked, _, err := sorting.TopRankings(r.Sorted, len(r.Sorted))
	if err != nil {
		return err
	}
	if err := writeOutputs(ctx, cfg, matches, ranked, logger); err != nil {
		return err
	}

	if cfg.addr != "" {
		return serve(ctx, cfg.addr, r, logger)
	}

	return nil
}

func loadMatches(cfg config) ([]core.Match, dataset.Stats, error) {
	if cfg.demo {
		ms, err := fixture.RoundRobin(demoTeams,
			fixture.WithSeed(cfg.seed), fixture.WithDoubleRound(), fixture.WithTournament("Demo Qualifiers"))
		if err != nil {
			return nil, dataset.Stats{}, err
		}
		return ms, dataset.Stats{Loaded: len(ms)}, nil
	}

	return dataset.LoadFile(cfg.input)
}

func writeOutputs(ctx context.Context, cfg config, matches []core.Match, ranked []*core.Team, logger *log.Logger) error {
	if cfg.summary != "" {
		if err := writeCSV(cfg.summary, func(w io.Writer) error { return dataset.WriteSummary(w, matches) }); err != nil {
			return err
		}
		logger.Printf("wrote %d summary rows to %s", len(matches), cfg.summary)
	}
	if cfg.standings != "" {
		if err := writeCSV(cfg.standings, func(w io.Writer) error { return dataset.WriteStandings(w, ranked) }); err != nil {
			return err
		}
		logger.Printf("wrote %d standings rows to %s", len(ranked), cfg.standings)
	}
	if cfg.sqlite != "" {
		if err := dataset.ExportSQLite(ctx, cfg.sqlite, ranked, matches); err != nil {
			return err
		}
		logger.Printf("exported %d teams and %d matches to %s", len(ranked), len(matches), cfg.sqlite)
	}

	return nil
}

func writeCSV(path string, write func(io.Writer) error) error {
	f, err := dataset.CreateFile(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}

// serve blocks until ctx is cancelled or the listener fails.
func serve(ctx context.Context, addr string, r *standings.Report, logger *log.Logger) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpapi.NewRouter(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Printf("serving on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Print("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
