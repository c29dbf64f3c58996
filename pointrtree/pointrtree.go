// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointrtree

import "github.com/dustgrid/dustgrid/geom"

// DefaultFillFactor is the fill factor used by New.
const DefaultFillFactor = 4

// RTree is a spatial index binding 2D integer points to values. It
// supports exactly insert-or-replace and exact-point lookup; there are
// no deletions, range queries or nearest-neighbor queries.
//
// An RTree is not safe for concurrent use: inserts restructure
// subtrees in place, so a tree shared between goroutines needs all
// calls, lookups included, serialized by an external lock.
type RTree[C geom.Scalar, V any] struct {
	fillFactor int
	root       *node[C, V]
}

// New creates an empty index with the default fill factor.
func New[C geom.Scalar, V any]() *RTree[C, V] {
	return NewWithFillFactor[C, V](DefaultFillFactor)
}

// NewWithFillFactor creates an empty index whose interior nodes hold
// at most fillFactor children before they must split. Panics if
// fillFactor is less than 2.
func NewWithFillFactor[C geom.Scalar, V any](fillFactor int) *RTree[C, V] {
	if fillFactor < 2 {
		textPanic("fill factor must be at least 2")
	}
	return &RTree[C, V]{fillFactor: fillFactor}
}

// FillFactor returns the maximum child count of interior nodes.
func (t *RTree[C, V]) FillFactor() int {
	return t.fillFactor
}

// Insert binds value to point and returns the value previously bound
// to the same point, if any. Insert never fails: the index accepts any
// point, and validating a point against whatever logical arena the
// caller cares about is the caller's concern.
func (t *RTree[C, V]) Insert(point geom.Point[C], value V) (old V, replaced bool) {
	if t.root == nil {
		t.root = newLeaf[C, V](point, value)
		return old, false
	}
	if t.root.isLeaf() {
		if t.root.point == point {
			old, t.root.value = t.root.value, value
			return old, true
		}
		// A second distinct point grows the leaf root into an
		// interior root covering both leaves.
		leaf := newLeaf[C, V](point, value)
		t.root = &node[C, V]{
			coverage: t.root.extent().Union(leaf.extent()),
			children: []*node[C, V]{t.root, leaf},
		}
		return old, false
	}

	var overflow *node[C, V]
	old, replaced, overflow = t.root.insert(point, value, t.fillFactor)
	if overflow != nil {
		// The overflow has nowhere left to bubble: grow a new root
		// with the overflow and the old root as its two children.
		t.root = &node[C, V]{
			coverage: overflow.extent().Union(t.root.extent()),
			children: []*node[C, V]{overflow, t.root},
		}
	}
	return old, replaced
}

// Find returns the value bound to point and true, or the zero V and
// false when the point was never inserted.
func (t *RTree[C, V]) Find(point geom.Point[C]) (V, bool) {
	if v := t.ref(point); v != nil {
		return *v, true
	}
	var zero V
	return zero, false
}

// FindRef returns a pointer to the value bound to point for in-place
// mutation, or nil when the point is absent. The pointer stays valid
// across later inserts, but a later insert of the same point replaces
// the value it points at.
func (t *RTree[C, V]) FindRef(point geom.Point[C]) *V {
	return t.ref(point)
}

func (t *RTree[C, V]) ref(point geom.Point[C]) *V {
	if t.root == nil {
		return nil
	}
	if t.root.isLeaf() {
		// A leaf root has no parent applying the descent predicate,
		// so the equality check happens here.
		if t.root.point == point {
			return &t.root.value
		}
		return nil
	}
	return t.root.find(point)
}
