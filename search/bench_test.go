// SPDX-License-Identifier: MIT

package search_test

import (
	"testing"

	"github.com/katalvlaran/standings/search"
)

func sortedInts(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i * 2
	}
	return s
}

func BenchmarkLinear(b *testing.B) {
	s := sortedInts(10000)
	for i := 0; i < b.N; i++ {
		_ = search.Linear(s, (i%10000)*2, identity)
	}
}

func BenchmarkBinary(b *testing.B) {
	s := sortedInts(10000)
	for i := 0; i < b.N; i++ {
		_, _ = search.Binary(s, (i%10000)*2, identity)
	}
}
