// SPDX-License-Identifier: MIT

package standings

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/standings/core"
)

// Sentinel errors for the standings package.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("standings: invalid option supplied")

	// ErrUnknownPolicy is returned by PolicyByName for an unregistered name.
	ErrUnknownPolicy = errors.New("standings: unknown scoring policy")
)

// DefaultTopN is the ranking depth used by Build when WithTopN is not given.
const DefaultTopN = 10

// Option configures Aggregate and Build.
type Option func(*Options)

// Options holds aggregation and pipeline settings.
type Options struct {
	// Policy converts one side's goals into standings points.
	Policy ScoringPolicy

	// TopN is the depth of Report.Highest and Report.Lowest.
	TopN int

	// Duplicates is passed to all three tree indexes.
	Duplicates core.DuplicatePolicy

	// ParallelSortThreshold is forwarded to sorting.WithParallelThreshold.
	ParallelSortThreshold int

	// Logger receives one line per pipeline stage. Discards by default.
	Logger *log.Logger

	err error
}

// DefaultOptions returns 3/1/0 scoring, top 10, overwrite on duplicate keys,
// sequential sorting and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Policy:     ThreePointsForWin,
		TopN:       DefaultTopN,
		Duplicates: core.Overwrite,
		Logger:     log.New(io.Discard, "", 0),
	}
}

// WithPolicy sets the scoring policy. A nil policy is an option violation.
func WithPolicy(p ScoringPolicy) Option {
	return func(o *Options) {
		if p == nil {
			o.err = fmt.Errorf("%w: nil scoring policy", ErrOptionViolation)
			return
		}
		o.Policy = p
	}
}

// WithTopN sets the ranking depth. Negative values are an option violation.
func WithTopN(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: TopN cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.TopN = n
	}
}

// WithDuplicates sets the duplicate-key policy of every tree index.
func WithDuplicates(p core.DuplicatePolicy) Option {
	return func(o *Options) { o.Duplicates = p }
}

// WithParallelSort enables concurrent merge sort halves of at least n teams.
func WithParallelSort(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: parallel sort threshold cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ParallelSortThreshold = n
	}
}

// WithLogger routes stage logging to l. nil keeps the discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
