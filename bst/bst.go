// SPDX-License-Identifier: MIT

package bst

import (
	"cmp"
	"iter"

	"github.com/katalvlaran/standings/core"
)

// Tree is an unbalanced binary search tree keyed by K.
// The zero value is not usable; construct with New or NewFunc.
// A Tree is not safe for concurrent mutation.
type Tree[K, V any] struct {
	root    *node[K, V]
	compare func(a, b K) int
	opts    Options
	size    int
}

// New returns an empty Tree ordered by the natural order of K.
func New[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc returns an empty Tree ordered by compare, which must be a total
// order returning <0, 0 or >0. Panics if compare is nil.
func NewFunc[K, V any](compare func(a, b K) int, opts ...Option) *Tree[K, V] {
	if compare == nil {
		panic("bst: NewFunc(nil compare)")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[K, V]{compare: compare, opts: o}
}

// Insert stores value under key. It reports true when a new node was
// attached and false when key already existed, in which case the
// duplicate policy decides whether the stored value is replaced.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	if t.root == nil {
		t.root = &node[K, V]{key: key, value: value}
		t.size++
		return true
	}

	cur := t.root
	for {
		c := t.compare(key, cur.key)
		switch {
		case c < 0:
			if cur.left == nil {
				cur.left = &node[K, V]{key: key, value: value}
				t.size++
				return true
			}
			cur = cur.left
		case c > 0:
			if cur.right == nil {
				cur.right = &node[K, V]{key: key, value: value}
				t.size++
				return true
			}
			cur = cur.right
		default:
			if t.opts.Duplicates == core.Overwrite {
				cur.value = value
			}
			return false
		}
	}
}

// Search returns the value stored under key and whether it was found.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	cur := t.root
	for cur != nil {
		c := t.compare(key, cur.key)
		switch {
		case c < 0:
			cur = cur.left
		case c > 0:
			cur = cur.right
		default:
			return cur.value, true
		}
	}
	var zero V

	return zero, false
}

// InOrder returns an ascending (key, value) sequence. Each range over the
// result walks the tree afresh; breaking out of the loop stops the walk.
func (t *Tree[K, V]) InOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walk(t.root, yield)
	}
}

// walk is a recursive left-root-right traversal. It returns false once
// yield asks to stop so every enclosing frame unwinds immediately.
func walk[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return walk(n.left, yield) && yield(n.key, n.value) && walk(n.right, yield)
}

// Min returns the smallest key and its value.
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.key, n.value, true
}

// Max returns the largest key and its value.
func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, n.value, true
}

// Len returns the number of distinct keys.
func (t *Tree[K, V]) Len() int { return t.size }

// Height returns the number of edges on the longest root-to-leaf path:
// -1 for an empty tree, 0 for a single node.
func (t *Tree[K, V]) Height() int { return height(t.root) }

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}

	return 1 + max(height(n.left), height(n.right))
}
