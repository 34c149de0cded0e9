// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/standings/core"
)

// TopRankings takes a slice sorted ascending and returns its topN highest
// entries in descending order and its topN lowest entries in ascending
// order. When len(sorted) < topN both slices hold every element.
// The returned slices are fresh; sorted is not modified.
func TopRankings[T any](sorted []T, topN int) (highest, lowest []T, err error) {
	if topN < 0 {
		return nil, nil, fmt.Errorf("TopRankings(topN=%d): %w", topN, ErrNegativeTopN)
	}
	n := min(topN, len(sorted))

	highest = make([]T, 0, n)
	for i := len(sorted) - 1; i >= len(sorted)-n; i-- {
		highest = append(highest, sorted[i])
	}
	lowest = make([]T, n)
	copy(lowest, sorted[:n])

	return highest, lowest, nil
}

// MergeSortTeams sorts teams ascending by score, keeping input order for ties.
func MergeSortTeams(teams []*core.Team, opts ...Option) error {
	return MergeSort(teams, core.CompareScore, opts...)
}

// BubbleSortTeams is the O(n²) counterpart of MergeSortTeams.
func BubbleSortTeams(teams []*core.Team) {
	BubbleSort(teams, core.CompareScore)
}
