// SPDX-License-Identifier: MIT

// Package search locates elements in slices by a derived key.
//
//   - Linear scans every element in order and returns the first whose key
//     equals the target. No ordering precondition, O(n).
//   - Binary halves a slice sorted ascending by the same key, O(log n). It
//     returns the leftmost match, which is the element Linear would report.
//
// Both return a Result; absence is Found == false with Index == -1 and is
// never an error.
//
// Caller contract for Binary
//
//	The slice must be sorted ascending by key. Binary does not scan the
//	whole slice to prove it; at every probe it only checks that
//	key(lo) <= key(mid) <= key(hi-1) for the current window, which costs
//	O(1) per step. When that check fails it returns ErrUnsorted (wrapping
//	core.ErrPrecondition). Disorder the probes never touch goes undetected
//	and the result is then unspecified.
package search
