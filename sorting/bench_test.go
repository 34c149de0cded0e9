// SPDX-License-Identifier: MIT

package sorting_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/standings/sorting"
)

func BenchmarkMergeSort(b *testing.B) {
	base := randomTeams(1, 10000, 500)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := slices.Clone(base)
		_ = sorting.MergeSortTeams(s)
	}
}

func BenchmarkMergeSort_Parallel(b *testing.B) {
	base := randomTeams(1, 10000, 500)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := slices.Clone(base)
		_ = sorting.MergeSortTeams(s, sorting.WithParallelThreshold(1024))
	}
}

func BenchmarkBubbleSort(b *testing.B) {
	base := randomTeams(1, 1000, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := slices.Clone(base)
		sorting.BubbleSortTeams(s)
	}
}
