// SPDX-License-Identifier: MIT

package sorting

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/standings/core"
)

// ErrNegativeTopN is returned by TopRankings for topN < 0.
var ErrNegativeTopN = fmt.Errorf("sorting: negative top-N: %w", core.ErrPrecondition)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("sorting: invalid option supplied")

// Option configures MergeSort.
type Option func(*Options)

// Options holds merge sort tuning knobs.
type Options struct {
	// ParallelThreshold, if > 0, sorts sub-slices of at least this many
	// elements concurrently. 0 keeps the sort sequential.
	ParallelThreshold int

	err error
}

// DefaultOptions returns sequential merge sort options.
func DefaultOptions() Options {
	return Options{}
}

// WithParallelThreshold enables concurrent sorting of halves with at least n
// elements. n == 0 disables it; n < 0 is recorded as ErrOptionViolation.
func WithParallelThreshold(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: ParallelThreshold cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ParallelThreshold = n
	}
}
