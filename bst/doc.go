// SPDX-License-Identifier: MIT

// Package bst provides a generic, unbalanced binary search tree used as an
// ordered map from a totally ordered key to a value.
//
// What
//
//   - Insert descends from the root and attaches a new leaf at the first empty
//     slot found by ordinary BST ordering. No rebalancing is ever performed,
//     so the height depends only on insertion order.
//   - Search returns the stored value and a found flag.
//   - InOrder yields (key, value) pairs in ascending key order as an
//     iter.Seq2; the sequence is lazy, finite and can be ranged over again.
//
// Duplicates
//
//	Equal keys follow core.DuplicatePolicy: Overwrite (default, last write
//	wins) or KeepFirst. Either way the tree never holds two nodes with the
//	same key.
//
// Usage
//
//	byName := bst.New[string, *core.Team]()
//	byName.Insert(team.Name, team)
//	if t, ok := byName.Search("Brazil"); ok { ... }
//	for name, t := range byName.InOrder() { ... }
//
//	// explicit three-way comparison for keys that are not cmp.Ordered
//	byDate := bst.NewFunc[time.Time, core.Match](func(a, b time.Time) int { return a.Compare(b) })
//
// Complexity (h = height, n = size)
//
//   - Insert, Search: O(h), O(n) worst case for sorted input.
//   - InOrder:        O(n) total, O(h) stack.
//   - Height:         O(n).
package bst
