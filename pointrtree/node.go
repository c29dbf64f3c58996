// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointrtree

import (
	"sort"

	"github.com/dustgrid/dustgrid/geom"
)

// A node is one cell of the index tree: either a leaf binding a single
// point to its value, or an interior node owning an ordered list of
// child nodes. A node with a nil children slice is a leaf; an interior
// node always holds at least one child. Children are owned
// exclusively, so the tree is strictly a tree: no sharing, no back
// references, no cycles.
type node[C geom.Scalar, V any] struct {
	// point and value form the leaf binding. They are meaningful only
	// when children is nil.
	point geom.Point[C]
	value V
	// coverage caches the union of the children's extents on interior
	// nodes. It is restored after every structural mutation, before
	// the node is exposed to its parent again.
	coverage geom.Tile[C]
	children []*node[C, V]
}

func newLeaf[C geom.Scalar, V any](p geom.Point[C], v V) *node[C, V] {
	return &node[C, V]{point: p, value: v}
}

func (n *node[C, V]) isLeaf() bool {
	return n.children == nil
}

// extent returns the smallest tile covering the whole subtree: the
// cached coverage for an interior node, the degenerate tile at the
// stored point for a leaf.
func (n *node[C, V]) extent() geom.Tile[C] {
	if n.isLeaf() {
		return geom.TileAt(n.point)
	}
	return n.coverage
}

// relatePoint relates the node's extent to a query point, so that
// Greater or Equal reads as "the point is inside or on the boundary
// of the node's extent".
func (n *node[C, V]) relatePoint(p geom.Point[C]) geom.Relation {
	return n.extent().ComparePoint(p)
}

// relateLine relates the node's extent to a splitting line, flipped so
// that Less reads as "the subtree lies strictly before the line".
func (n *node[C, V]) relateLine(l geom.Line[C]) geom.Relation {
	return l.CompareTile(n.extent()).Invert()
}

// childFor returns the first child, in order, whose extent contains or
// equals p, or nil when no child qualifies.
func (n *node[C, V]) childFor(p geom.Point[C]) *node[C, V] {
	for _, c := range n.children {
		r := c.relatePoint(p)
		if r == geom.Equal || r == geom.Greater {
			return c
		}
	}
	return nil
}

// insert binds value to point somewhere under n. It returns the value
// previously bound to the same point, if any, plus an overflow node
// when a split at this level pushed part of the subtree out. The
// caller must attach the overflow as a sibling of n, one level up, and
// re-check its own fill factor.
func (n *node[C, V]) insert(point geom.Point[C], value V, fillFactor int) (old V, replaced bool, overflow *node[C, V]) {
	if n.isLeaf() {
		// Only reachable when this leaf already stores the exact
		// point: the descent predicate admits a leaf child solely on
		// equality.
		old, n.value = n.value, value
		return old, true, nil
	}

	if child := n.childFor(point); child != nil {
		var sibling *node[C, V]
		old, replaced, sibling = child.insert(point, value, fillFactor)
		if sibling == nil {
			n.coverage = n.coverage.Union(geom.TileAt(point))
			return old, replaced, nil
		}
		n.children = append(n.children, sibling)
	} else {
		// No subtree covers the point; it becomes a new leaf at this
		// level. This always succeeds: bounds validation against a
		// logical arena is the caller's concern, not the index's.
		n.children = append(n.children, newLeaf[C, V](point, value))
	}

	n.coverage = n.coverage.Union(geom.TileAt(point))
	if len(n.children) > fillFactor {
		overflow = n.split(fillFactor)
	}
	return old, replaced, overflow
}

// find returns a pointer to the value bound to p under n, or nil when
// no subtree stores p. The leaf arm needs no equality check of its
// own: the descent predicate only admits a leaf whose point equals p,
// and the RTree façade handles a leaf root itself.
func (n *node[C, V]) find(p geom.Point[C]) *V {
	if n.isLeaf() {
		return &n.value
	}
	if child := n.childFor(p); child != nil {
		return child.find(p)
	}
	return nil
}

// split applies the sweep heuristic to an interior node holding more
// children than the fill factor allows, partitions it along the chosen
// line, and returns the new right sibling. Nodes within the fill
// factor, and leaves, are left alone.
func (n *node[C, V]) split(fillFactor int) *node[C, V] {
	if n.isLeaf() || len(n.children) <= fillFactor {
		return nil
	}
	tiles := make([]geom.Tile[C], len(n.children))
	for i, c := range n.children {
		tiles[i] = c.extent()
	}
	return n.partition(sweep(tiles, fillFactor), fillFactor)
}

// sweep chooses the splitting line for a set of child extents. For
// each axis the extents are sorted by their bottom-left corner and the
// coordinate of the extent at index fillFactor becomes the candidate
// line; the candidate straddled by fewer extents wins. A tie keeps the
// vertical line.
//
// Minimizing straddling children approximates minimizing future
// recursive splits and keeps bounding tiles tight, the same greedy
// heuristic classic R-tree variants use.
func sweep[C geom.Scalar](tiles []geom.Tile[C], fillFactor int) geom.Line[C] {
	byX := make([]geom.Tile[C], len(tiles))
	copy(byX, tiles)
	sort.SliceStable(byX, func(i, j int) bool {
		return byX[i].Min.VerticalCompare(byX[j].Min) == geom.Less
	})
	vertical := geom.VerticalThrough(byX[fillFactor].Min)
	verticalCost := straddleCost(vertical, byX)

	byY := make([]geom.Tile[C], len(tiles))
	copy(byY, tiles)
	sort.SliceStable(byY, func(i, j int) bool {
		return byY[i].Min.HorizontalCompare(byY[j].Min) == geom.Less
	})
	horizontal := geom.HorizontalThrough(byY[fillFactor].Min)
	horizontalCost := straddleCost(horizontal, byY)

	if verticalCost > horizontalCost {
		return horizontal
	}
	return vertical
}

// straddleCost counts the tiles crossed by the candidate line.
func straddleCost[C geom.Scalar](l geom.Line[C], tiles []geom.Tile[C]) int {
	cost := 0
	for _, t := range tiles {
		if l.CompareTile(t) == geom.Equal {
			cost++
		}
	}
	return cost
}

// partition splits an interior node along line and returns the new
// right sibling. Children strictly before the line stay; children
// strictly after, or incomparable, move to the right sibling; children
// straddling the line are partitioned recursively, keeping their left
// remainder in place. A leaf has no internal structure to split and
// always stays on the left, even when it sits exactly on the line.
//
// The right sibling is nil when no child moved right, a single child
// directly when exactly one moved (no degenerate one-child wrapper),
// and a fresh interior node otherwise.
func (n *node[C, V]) partition(line geom.Line[C], fillFactor int) *node[C, V] {
	if n.isLeaf() {
		return nil
	}

	left := make([]*node[C, V], 0, fillFactor)
	var right []*node[C, V]
	for _, c := range n.children {
		switch c.relateLine(line) {
		case geom.Less:
			left = append(left, c)
		case geom.Equal:
			sibling := c.partition(line, fillFactor)
			left = append(left, c)
			if sibling != nil {
				right = append(right, sibling)
			}
		default:
			right = append(right, c)
		}
	}

	// left is never empty: a straddled node keeps at least one child
	// at or before the line, and splits only run on nodes with more
	// than fillFactor >= 2 children.
	n.children = left
	n.coverage = coverageOf(left)

	switch len(right) {
	case 0:
		return nil
	case 1:
		return right[0]
	default:
		return &node[C, V]{coverage: coverageOf(right), children: right}
	}
}

// coverageOf returns the union of the nodes' extents. nodes must not
// be empty.
func coverageOf[C geom.Scalar, V any](nodes []*node[C, V]) geom.Tile[C] {
	tiles := make([]geom.Tile[C], len(nodes))
	for i, n := range nodes {
		tiles[i] = n.extent()
	}
	bound, ok := geom.Bound(tiles)
	if !ok {
		textPanic("coverage of empty node list")
	}
	return bound
}
