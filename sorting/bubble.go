// SPDX-License-Identifier: MIT

package sorting

// BubbleSort sorts s in place in ascending compare order. The sort is stable.
func BubbleSort[T any](s []T, compare func(a, b T) int) {
	for end := len(s) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if compare(s[i], s[i+1]) > 0 {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
