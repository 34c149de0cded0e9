// SPDX-License-Identifier: MIT

package search

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/standings/core"
)

// ErrUnsorted is returned by Binary when a probe observes keys out of order.
var ErrUnsorted = fmt.Errorf("search: sequence not sorted by key: %w", core.ErrPrecondition)

// Result is the outcome of a search. Index is -1 when nothing was found.
type Result[T any] struct {
	Value T
	Index int
	Found bool
}

func notFound[T any]() Result[T] {
	return Result[T]{Index: -1}
}

// Linear returns the first element of seq whose key equals target.
func Linear[T any, K comparable](seq []T, target K, key func(T) K) Result[T] {
	for i, v := range seq {
		if key(v) == target {
			return Result[T]{Value: v, Index: i, Found: true}
		}
	}

	return notFound[T]()
}

// Binary returns the leftmost element of sorted whose key equals target.
// sorted must be ascending by key; see the package doc for what is checked.
func Binary[T any, K cmp.Ordered](sorted []T, target K, key func(T) K) (Result[T], error) {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		kLo, kMid, kHi := key(sorted[lo]), key(sorted[mid]), key(sorted[hi-1])
		if cmp.Less(kMid, kLo) || cmp.Less(kHi, kMid) {
			return notFound[T](), fmt.Errorf("Binary: window [%d,%d) keys %v,%v,%v: %w",
				lo, hi, kLo, kMid, kHi, ErrUnsorted)
		}
		if cmp.Less(kMid, target) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(sorted) && key(sorted[lo]) == target {
		return Result[T]{Value: sorted[lo], Index: lo, Found: true}, nil
	}

	return notFound[T](), nil
}

// TeamByName is Linear over team names.
func TeamByName(teams []*core.Team, name string) Result[*core.Team] {
	return Linear(teams, name, core.TeamName)
}

// TeamByScore is Binary over teams sorted ascending by score.
func TeamByScore(sorted []*core.Team, score int) (Result[*core.Team], error) {
	return Binary(sorted, score, core.TeamScore)
}
