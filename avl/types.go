// SPDX-License-Identifier: MIT

package avl

import (
	"errors"

	"github.com/katalvlaran/standings/core"
)

// ErrInvariant is returned by Verify when the tree is not a valid AVL tree.
var ErrInvariant = errors.New("avl: invariant violated")

// Option configures a Tree at construction time.
type Option func(*Options)

// Options holds the tunable behavior of a Tree.
type Options struct {
	// Duplicates decides what Insert does with an already present key.
	Duplicates core.DuplicatePolicy
}

// DefaultOptions returns Options with the Overwrite duplicate policy.
func DefaultOptions() Options {
	return Options{Duplicates: core.Overwrite}
}

// WithDuplicates sets the duplicate-key policy.
func WithDuplicates(p core.DuplicatePolicy) Option {
	return func(o *Options) { o.Duplicates = p }
}

// node carries its own height; a leaf has height 0.
type node[K, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
	height      int
}

func nodeHeight[K, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *node[K, V]) update() {
	n.height = 1 + max(nodeHeight(n.left), nodeHeight(n.right))
}

func (n *node[K, V]) balance() int {
	return nodeHeight(n.left) - nodeHeight(n.right)
}
