// SPDX-License-Identifier: MIT

// Package sorting implements the two comparison sorts used to rank teams,
// merge sort and bubble sort, plus TopRankings which slices a sorted
// sequence into its highest and lowest entries.
//
// Both sorts are in place, stable and driven by a three-way comparator
// func(a, b T) int. Given the same comparator they produce identical output,
// including the relative order of equal elements.
//
// Merge sort
//
//	Divide and conquer: split at the midpoint, sort both halves, merge by
//	repeatedly taking the smaller-or-equal front element (left wins ties).
//	Time O(n log n), one O(n) scratch buffer allocated per call.
//	WithParallelThreshold(n) sorts halves of at least n elements in separate
//	goroutines; the merge waits for both halves (strict join).
//
// Bubble sort
//
//	Adjacent swaps only when a > b, early exit on a clean pass.
//	Time O(n²), kept as a reference implementation for comparison.
//
// Errors
//
//   - ErrNegativeTopN  TopRankings called with topN < 0 (wraps core.ErrPrecondition).
package sorting
