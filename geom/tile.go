// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import "fmt"

// A Tile is a closed axis-aligned rectangle given by its bottom-left
// and top-right corners. A tile whose corners coincide is degenerate
// and covers a single point.
type Tile[C Scalar] struct {
	// Min is the bottom-left corner.
	Min Point[C]
	// Max is the top-right corner. Invariant: Min.X <= Max.X and
	// Min.Y <= Max.Y.
	Max Point[C]
}

// NewTile builds the tile with bottom-left corner min and top-right
// corner max. Panics if the corners are inverted on either axis: no
// valid tile exists in that case, so this is an invariant violation
// rather than a recoverable error.
func NewTile[C Scalar](min, max Point[C]) Tile[C] {
	if min.X > max.X || min.Y > max.Y {
		fmtPanic("inverted tile corners (min %v, max %v)", min, max)
	}
	return Tile[C]{Min: min, Max: max}
}

// TileAt returns the degenerate tile covering exactly the point p.
func TileAt[C Scalar](p Point[C]) Tile[C] {
	return Tile[C]{Min: p, Max: p}
}

// IsPoint reports whether the tile is degenerate.
func (t Tile[C]) IsPoint() bool {
	return t.Min == t.Max
}

// Union returns the smallest tile covering both t and u.
func (t Tile[C]) Union(u Tile[C]) Tile[C] {
	return Tile[C]{
		Min: Point[C]{X: min(t.Min.X, u.Min.X), Y: min(t.Min.Y, u.Min.Y)},
		Max: Point[C]{X: max(t.Max.X, u.Max.X), Y: max(t.Max.Y, u.Max.Y)},
	}
}

// Bound returns the smallest tile covering every tile in tiles, and
// false when tiles is empty.
func Bound[C Scalar](tiles []Tile[C]) (Tile[C], bool) {
	if len(tiles) == 0 {
		var zero Tile[C]
		return zero, false
	}
	b := tiles[0]
	for _, t := range tiles[1:] {
		b = b.Union(t)
	}
	return b, true
}

// VerticalCompare orders two tiles by their x-axis intervals: Less or
// Greater when both endpoints of t's interval compare the same way
// against u's, Equal otherwise (the intervals overlap).
func (t Tile[C]) VerticalCompare(u Tile[C]) Relation {
	lo := compare(t.Min.X, u.Min.X)
	hi := compare(t.Max.X, u.Max.X)
	if lo == hi && lo != Equal {
		return lo
	}
	return Equal
}

// HorizontalCompare orders two tiles by their y-axis intervals, with
// the same outcomes as VerticalCompare.
func (t Tile[C]) HorizontalCompare(u Tile[C]) Relation {
	lo := compare(t.Min.Y, u.Min.Y)
	hi := compare(t.Max.Y, u.Max.Y)
	if lo == hi && lo != Equal {
		return lo
	}
	return Equal
}

// ComparePoint relates the tile to a point under the containment
// order: Greater when the point lies within the closed tile, Equal
// when the tile is degenerate at exactly p, Less when the point lies
// outside.
func (t Tile[C]) ComparePoint(p Point[C]) Relation {
	if t.IsPoint() && t.Min == p {
		return Equal
	}
	lo := p.Compare(t.Min)
	hi := p.Compare(t.Max)
	if (lo == Greater || lo == Equal) && (hi == Less || hi == Equal) {
		return Greater
	}
	return Less
}

// Covers reports whether p lies within the closed tile, counting the
// degenerate tile at exactly p.
func (t Tile[C]) Covers(p Point[C]) bool {
	r := t.ComparePoint(p)
	return r == Greater || r == Equal
}

// Compare relates two tiles under the containment order: Equal for
// identical bounds, Less when t nests inside u, Greater when t
// contains u. Tiles that merely overlap, or are disjoint, are
// incomparable and yield NoRelation.
func (t Tile[C]) Compare(u Tile[C]) Relation {
	if t.Min == u.Min && t.Max == u.Max {
		return Equal
	}
	lo := t.Min.Compare(u.Min)
	hi := t.Max.Compare(u.Max)
	if (lo == Greater || lo == Equal) && (hi == Less || hi == Equal) {
		return Less
	}
	if (lo == Less || lo == Equal) && (hi == Greater || hi == Equal) {
		return Greater
	}
	return NoRelation
}

// String formats the tile as "[xmin,ymin,xmax,ymax]".
func (t Tile[C]) String() string {
	return fmt.Sprintf("[%v,%v,%v,%v]", t.Min.X, t.Min.Y, t.Max.X, t.Max.Y)
}

func min[C Scalar](a, b C) C {
	if a < b {
		return a
	}
	return b
}

func max[C Scalar](a, b C) C {
	if a > b {
		return a
	}
	return b
}
