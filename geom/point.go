// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import "fmt"

// A Point is an immutable coordinate pair in the 2D plane.
type Point[C Scalar] struct {
	X C
	Y C
}

// Pt is shorthand for Point[C]{X: x, Y: y}.
func Pt[C Scalar](x, y C) Point[C] {
	return Point[C]{X: x, Y: y}
}

// Add returns the point translated by the vector v.
func (p Point[C]) Add(v Point[C]) Point[C] {
	return Point[C]{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the point translated by the opposite of the vector v.
func (p Point[C]) Sub(v Point[C]) Point[C] {
	return Point[C]{X: p.X - v.X, Y: p.Y - v.Y}
}

// Compare relates two points under the dominance order. The result is
// Equal iff both coordinates are equal. It is Less or Greater when the
// points share one axis value and differ consistently on the other, or
// when one point dominates the other on both axes at once. Points that
// differ on both axes without dominance are incomparable and yield
// NoRelation.
func (p Point[C]) Compare(q Point[C]) Relation {
	if p.X == q.X {
		return compare(p.Y, q.Y)
	}
	if p.Y == q.Y {
		return compare(p.X, q.X)
	}
	if p.X < q.X && p.Y < q.Y {
		return Less
	}
	if p.X > q.X && p.Y > q.Y {
		return Greater
	}
	return NoRelation
}

// CompareTile relates the point to a tile. It is the exact inverse of
// Tile.ComparePoint: Less when the tile contains the point, Equal when
// the tile is degenerate at exactly p, Greater when the point lies
// outside.
func (p Point[C]) CompareTile(t Tile[C]) Relation {
	return t.ComparePoint(p).Invert()
}

// VerticalCompare orders two points by their x coordinates alone.
func (p Point[C]) VerticalCompare(q Point[C]) Relation {
	return compare(p.X, q.X)
}

// HorizontalCompare orders two points by their y coordinates alone.
func (p Point[C]) HorizontalCompare(q Point[C]) Relation {
	return compare(p.Y, q.Y)
}

// String formats the point as "x y".
func (p Point[C]) String() string {
	return fmt.Sprintf("%v %v", p.X, p.Y)
}
