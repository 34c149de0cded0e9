// SPDX-License-Identifier: MIT

package avl

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/katalvlaran/standings/core"
)

// Tree is a height-balanced binary search tree keyed by K.
// The zero value is not usable; construct with New or NewFunc.
// A Tree is not safe for concurrent mutation.
type Tree[K, V any] struct {
	root      *node[K, V]
	compare   func(a, b K) int
	opts      Options
	size      int
	rotations int
}

// New returns an empty Tree ordered by the natural order of K.
func New[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc returns an empty Tree ordered by compare. Panics if compare is nil.
func NewFunc[K, V any](compare func(a, b K) int, opts ...Option) *Tree[K, V] {
	if compare == nil {
		panic("avl: NewFunc(nil compare)")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[K, V]{compare: compare, opts: o}
}

// Insert stores value under key and rebalances the insertion path.
// It reports true when a node was added, false when key already existed.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	var added bool
	t.root, added = t.insert(t.root, key, value)
	if added {
		t.size++
	}

	return added
}

// insert returns the (possibly rotated) root of the subtree rooted at n.
func (t *Tree[K, V]) insert(n *node[K, V], key K, value V) (*node[K, V], bool) {
	if n == nil {
		return &node[K, V]{key: key, value: value}, true
	}

	var added bool
	c := t.compare(key, n.key)
	switch {
	case c < 0:
		n.left, added = t.insert(n.left, key, value)
	case c > 0:
		n.right, added = t.insert(n.right, key, value)
	default:
		if t.opts.Duplicates == core.Overwrite {
			n.value = value
		}
		return n, false
	}
	if !added {
		return n, false
	}

	n.update()
	return t.rebalance(n), true
}

// rebalance applies at most one single or double rotation at n.
func (t *Tree[K, V]) rebalance(n *node[K, V]) *node[K, V] {
	bf := n.balance()
	switch {
	case bf > 1:
		if n.left.balance() < 0 {
			n.left = t.rotateLeft(n.left)
		}
		return t.rotateRight(n)
	case bf < -1:
		if n.right.balance() > 0 {
			n.right = t.rotateRight(n.right)
		}
		return t.rotateLeft(n)
	}

	return n
}

// rotateRight lifts n.left into n's position.
func (t *Tree[K, V]) rotateRight(n *node[K, V]) *node[K, V] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n
	n.update()
	pivot.update()
	t.rotations++

	return pivot
}

// rotateLeft lifts n.right into n's position.
func (t *Tree[K, V]) rotateLeft(n *node[K, V]) *node[K, V] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n
	n.update()
	pivot.update()
	t.rotations++

	return pivot
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

// InOrder returns an ascending (key, value) sequence that can be ranged
// over repeatedly. Breaking out of the loop stops the walk.
func (t *Tree[K, V]) InOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walk(t.root, yield)
	}
}

func walk[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return walk(n.left, yield) && yield(n.key, n.value) && walk(n.right, yield)
}

// Height returns the root height: -1 when empty, 0 for a single node.
func (t *Tree[K, V]) Height() int { return nodeHeight(t.root) }

// Len returns the number of distinct keys.
func (t *Tree[K, V]) Len() int { return t.size }

// Rotations returns how many single rotations were performed so far.
// A double rotation counts as two.
func (t *Tree[K, V]) Rotations() int { return t.rotations }

// Verify walks the whole tree and checks that stored heights are correct,
// every balance factor is within [-1, 1] and keys are strictly ascending
// in order. It returns an error wrapping ErrInvariant on the first defect.
func (t *Tree[K, V]) Verify() error {
	_, err := t.verify(t.root, nil, nil)
	return err
}

func (t *Tree[K, V]) verify(n *node[K, V], lo, hi *K) (int, error) {
	if n == nil {
		return -1, nil
	}
	if lo != nil && t.compare(n.key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: key %v not above lower bound %v", ErrInvariant, n.key, *lo)
	}
	if hi != nil && t.compare(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: key %v not below upper bound %v", ErrInvariant, n.key, *hi)
	}
	lh, err := t.verify(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	rh, err := t.verify(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, fmt.Errorf("%w: balance factor %d at key %v", ErrInvariant, bf, n.key)
	}
	h := 1 + max(lh, rh)
	if h != n.height {
		return 0, fmt.Errorf("%w: stored height %d, actual %d at key %v", ErrInvariant, n.height, h, n.key)
	}

	return h, nil
}
