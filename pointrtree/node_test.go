// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointrtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dustgrid/dustgrid/geom"
)

func leafNodes(points ...geom.Point[int]) []*node[int, int] {
	ns := make([]*node[int, int], len(points))
	for i, p := range points {
		ns[i] = newLeaf(p, i)
	}
	return ns
}

func interiorNode(children ...*node[int, int]) *node[int, int] {
	return &node[int, int]{coverage: coverageOf(children), children: children}
}

func TestSweep(t *testing.T) {
	testCases := []struct {
		name       string
		tiles      []geom.Tile[int]
		fillFactor int
		expected   geom.Line[int]
	}{
		{
			name: "HorizontalWins",
			tiles: []geom.Tile[int]{
				geom.NewTile(geom.Pt(0, 0), geom.Pt(2, 2)),
				geom.NewTile(geom.Pt(1, 5), geom.Pt(8, 6)),
				geom.NewTile(geom.Pt(4, 10), geom.Pt(7, 11)),
			},
			fillFactor: 2,
			expected:   geom.HorizontalLine(10),
		},
		{
			name: "VerticalWins",
			tiles: []geom.Tile[int]{
				geom.NewTile(geom.Pt(0, 0), geom.Pt(2, 2)),
				geom.NewTile(geom.Pt(1, 5), geom.Pt(3, 6)),
				geom.NewTile(geom.Pt(4, 4), geom.Pt(7, 11)),
			},
			fillFactor: 2,
			expected:   geom.VerticalLine(4),
		},
		{
			name: "TieFavorsVertical",
			tiles: []geom.Tile[int]{
				geom.TileAt(geom.Pt(0, 0)),
				geom.TileAt(geom.Pt(2, 2)),
				geom.TileAt(geom.Pt(4, 4)),
			},
			fillFactor: 2,
			expected:   geom.VerticalLine(4),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, sweep(testCase.tiles, testCase.fillFactor))
		})
	}
}

func TestStraddleCost(t *testing.T) {
	tiles := []geom.Tile[int]{
		geom.NewTile(geom.Pt(0, 0), geom.Pt(2, 2)),
		geom.NewTile(geom.Pt(3, 0), geom.Pt(5, 1)),
		geom.TileAt(geom.Pt(4, 4)),
		geom.NewTile(geom.Pt(6, 0), geom.Pt(9, 9)),
	}

	assert.Equal(t, 2, straddleCost(geom.VerticalLine(4), tiles))
	assert.Equal(t, 0, straddleCost(geom.VerticalLine(10), tiles))
	assert.Equal(t, 3, straddleCost(geom.HorizontalLine(1), tiles))
}

func TestNode_Partition(t *testing.T) {
	t.Run("RightWrapped", func(t *testing.T) {
		n := interiorNode(leafNodes(geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(6, 6), geom.Pt(7, 7))...)

		sibling := n.partition(geom.VerticalLine(4), 4)

		require.NotNil(t, sibling)
		assert.Len(t, sibling.children, 2)
		assert.Equal(t, geom.NewTile(geom.Pt(6, 6), geom.Pt(7, 7)), sibling.coverage)
		assert.Len(t, n.children, 2)
		assert.Equal(t, geom.NewTile(geom.Pt(1, 1), geom.Pt(2, 2)), n.coverage)
	})

	t.Run("RightUnwrapped", func(t *testing.T) {
		n := interiorNode(leafNodes(geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(6, 6))...)

		sibling := n.partition(geom.VerticalLine(4), 4)

		require.NotNil(t, sibling)
		assert.True(t, sibling.isLeaf())
		assert.Equal(t, geom.Pt(6, 6), sibling.point)
		assert.Len(t, n.children, 2)
	})

	t.Run("LeafOnLineStaysLeft", func(t *testing.T) {
		n := interiorNode(leafNodes(geom.Pt(1, 1), geom.Pt(4, 4), geom.Pt(2, 2))...)

		sibling := n.partition(geom.VerticalLine(4), 4)

		assert.Nil(t, sibling)
		assert.Len(t, n.children, 3)
		assert.Equal(t, geom.NewTile(geom.Pt(1, 1), geom.Pt(4, 4)), n.coverage)
	})

	t.Run("StraddlingChildSplitsRecursively", func(t *testing.T) {
		inner := interiorNode(leafNodes(geom.Pt(1, 1), geom.Pt(6, 6))...)
		n := interiorNode(inner, newLeaf(geom.Pt(8, 8), 9))

		sibling := n.partition(geom.VerticalLine(4), 4)

		// The straddling child keeps its left remainder in place; its
		// right remainder joins the moved leaf in the new sibling.
		require.NotNil(t, sibling)
		assert.Len(t, sibling.children, 2)
		assert.Equal(t, geom.NewTile(geom.Pt(6, 6), geom.Pt(8, 8)), sibling.coverage)
		assert.Equal(t, []*node[int, int]{inner}, n.children)
		assert.Equal(t, geom.TileAt(geom.Pt(1, 1)), n.coverage)
		assert.Len(t, inner.children, 1)
		assert.Equal(t, geom.Pt(1, 1), inner.children[0].point)
	})

	t.Run("Leaf", func(t *testing.T) {
		n := newLeaf(geom.Pt(4, 4), 0)

		assert.Nil(t, n.partition(geom.VerticalLine(4), 4))
	})
}

func TestNode_Split(t *testing.T) {
	t.Run("Leaf", func(t *testing.T) {
		assert.Nil(t, newLeaf(geom.Pt(1, 1), 0).split(2))
	})

	t.Run("WithinFillFactor", func(t *testing.T) {
		n := interiorNode(leafNodes(geom.Pt(1, 1), geom.Pt(2, 2))...)

		assert.Nil(t, n.split(2))
		assert.Len(t, n.children, 2)
	})

	t.Run("Overflowing", func(t *testing.T) {
		n := interiorNode(leafNodes(geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(5, 5), geom.Pt(8, 8), geom.Pt(9, 9))...)

		sibling := n.split(2)

		require.NotNil(t, sibling)
		assert.Len(t, sibling.children, 2)
		assert.Equal(t, geom.NewTile(geom.Pt(8, 8), geom.Pt(9, 9)), sibling.coverage)
		assert.Len(t, n.children, 3)
		assert.Equal(t, geom.NewTile(geom.Pt(0, 0), geom.Pt(5, 5)), n.coverage)
	})

	t.Run("SiblingUnwrapped", func(t *testing.T) {
		n := interiorNode(leafNodes(geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(5, 5), geom.Pt(9, 9))...)

		sibling := n.split(2)

		require.NotNil(t, sibling)
		assert.True(t, sibling.isLeaf())
		assert.Equal(t, geom.Pt(9, 9), sibling.point)
	})

	t.Run("EmptyRight", func(t *testing.T) {
		// The chosen line passes through the extreme child, which sits
		// exactly on it and stays left, so no sibling is produced. The
		// node is left holding one child past the fill factor.
		n := interiorNode(leafNodes(geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(3, 3), geom.Pt(4, 4))...)

		assert.Nil(t, n.split(4))
		assert.Len(t, n.children, 5)
	})
}
