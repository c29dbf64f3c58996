// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import "fmt"

// An Axis selects one of the two coordinate axes of the plane.
type Axis uint8

const (
	// Vertical tags a line of constant x.
	Vertical Axis = iota
	// Horizontal tags a line of constant y.
	Horizontal
)

// String returns the name of the axis.
func (a Axis) String() string {
	switch a {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	default:
		return "Invalid"
	}
}

// A Line is an infinite splitting line at a fixed coordinate on one
// axis. Lines classify points and tiles relative to themselves; they
// are never stored in the index.
type Line[C Scalar] struct {
	Axis Axis
	At   C
}

// VerticalLine returns the line of constant x.
func VerticalLine[C Scalar](x C) Line[C] {
	return Line[C]{Axis: Vertical, At: x}
}

// HorizontalLine returns the line of constant y.
func HorizontalLine[C Scalar](y C) Line[C] {
	return Line[C]{Axis: Horizontal, At: y}
}

// VerticalThrough returns the vertical line passing through p.
func VerticalThrough[C Scalar](p Point[C]) Line[C] {
	return VerticalLine(p.X)
}

// HorizontalThrough returns the horizontal line passing through p.
func HorizontalThrough[C Scalar](p Point[C]) Line[C] {
	return HorizontalLine(p.Y)
}

// ComparePoint relates the line to a point along the line's axis:
// Equal when the point lies exactly on the line, Less when the line
// sits before the point's coordinate, Greater when it sits after.
func (l Line[C]) ComparePoint(p Point[C]) Relation {
	if l.Axis == Vertical {
		return compare(l.At, p.X)
	}
	return compare(l.At, p.Y)
}

// CompareTile relates the line to a tile's interval on the line's
// axis: Less or Greater when the tile lies strictly to one side of the
// line, Equal when the line crosses the tile.
func (l Line[C]) CompareTile(t Tile[C]) Relation {
	var lo, hi Relation
	if l.Axis == Vertical {
		lo, hi = compare(l.At, t.Min.X), compare(l.At, t.Max.X)
	} else {
		lo, hi = compare(l.At, t.Min.Y), compare(l.At, t.Max.Y)
	}
	if lo == hi && lo != Equal {
		return lo
	}
	return Equal
}

// String formats the line as "x=c" or "y=c".
func (l Line[C]) String() string {
	if l.Axis == Vertical {
		return fmt.Sprintf("x=%v", l.At)
	}
	return fmt.Sprintf("y=%v", l.At)
}
