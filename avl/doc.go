// SPDX-License-Identifier: MIT

// Package avl provides a generic height-balanced (AVL) binary search tree and
// a score-keyed TeamTree built on top of it.
//
// What
//
//   - Insert attaches a new leaf with the same descent as an unbalanced BST,
//     then unwinds the insertion path recomputing each ancestor's height and
//     balance factor (height(left) - height(right)).
//   - A node whose balance leaves [-1, 1] is repaired by one of four cases:
//     left-left   (bf > 1,  left bf >= 0)  single right rotation
//     left-right  (bf > 1,  left bf < 0)   left on child, then right
//     right-right (bf < -1, right bf <= 0) single left rotation
//     right-left  (bf < -1, right bf > 0)  right on child, then left
//   - Heights are refreshed all the way back to the root, so Height is O(1).
//
// Height convention
//
//	An empty tree has height -1 and a single node has height 0, so a tree of
//	n nodes never exceeds ~1.44·log2(n+2) and a perfect tree of 7 nodes has
//	height 2.
//
// Duplicates
//
//	Equal keys follow core.DuplicatePolicy exactly like package bst, so the
//	two index types can be swapped without changing results.
//
// Usage
//
//	points := avl.BuildTeamTree(sortedTeams)
//	fmt.Println(points.Height())
//	for score, team := range points.InOrder() { ... }
//
// Errors
//
//   - ErrInvariant  returned by Verify when balance, ordering or stored
//     heights are inconsistent (should never happen through this API).
//   - core.ErrNilTeam from TeamTree.InsertTeam(nil).
package avl
