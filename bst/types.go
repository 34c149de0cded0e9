// SPDX-License-Identifier: MIT

package bst

import "github.com/katalvlaran/standings/core"

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

// node is a single tree entry. Children are owned exclusively by their parent.
type node[K, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
}
