// SPDX-License-Identifier: MIT

package sorting

import "sync"

// minParallel keeps tiny halves sequential regardless of the threshold.
const minParallel = 64

// MergeSort sorts s in place in ascending compare order. The sort is stable.
// An invalid option leaves s untouched and returns ErrOptionViolation.
func MergeSort[T any](s []T, compare func(a, b T) int, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if len(s) < 2 {
		return nil
	}

	threshold := 0
	if o.ParallelThreshold > 0 {
		threshold = max(o.ParallelThreshold, minParallel)
	}
	buf := make([]T, len(s))
	mergeSort(s, buf, compare, threshold)

	return nil
}

// mergeSort sorts s using buf (same length) as scratch space.
func mergeSort[T any](s, buf []T, compare func(a, b T) int, threshold int) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2

	if threshold > 0 && len(s) >= threshold {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			mergeSort(s[:mid], buf[:mid], compare, threshold)
		}()
		go func() {
			defer wg.Done()
			mergeSort(s[mid:], buf[mid:], compare, threshold)
		}()
		wg.Wait()
	} else {
		mergeSort(s[:mid], buf[:mid], compare, threshold)
		mergeSort(s[mid:], buf[mid:], compare, threshold)
	}

	// already ordered across the seam
	if compare(s[mid-1], s[mid]) <= 0 {
		return
	}
	merge(s, buf, mid, compare)
}

// merge combines the sorted runs s[:mid] and s[mid:] through buf.
func merge[T any](s, buf []T, mid int, compare func(a, b T) int) {
	copy(buf, s)
	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		if compare(buf[i], buf[j]) <= 0 {
			s[k] = buf[i]
			i++
		} else {
			s[k] = buf[j]
			j++
		}
		k++
	}
	k += copy(s[k:], buf[i:mid])
	copy(s[k:], buf[j:len(s)])
}
