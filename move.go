// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dustgrid

import "github.com/dustgrid/dustgrid/geom"

// A Move is a single-step move instruction for the rover.
type Move uint8

const (
	North Move = iota
	East
	South
	West
)

// ParseMove decodes one move instruction character. Valid instructions
// are N, E, S and W.
func ParseMove(c byte) (Move, bool) {
	switch c {
	case 'N':
		return North, true
	case 'E':
		return East, true
	case 'S':
		return South, true
	case 'W':
		return West, true
	default:
		return 0, false
	}
}

// Vector returns the unit translation the move applies to the rover.
func (m Move) Vector() geom.Point[int32] {
	switch m {
	case North:
		return geom.Pt[int32](0, 1)
	case South:
		return geom.Pt[int32](0, -1)
	case East:
		return geom.Pt[int32](1, 0)
	case West:
		return geom.Pt[int32](-1, 0)
	default:
		return geom.Pt[int32](0, 0)
	}
}

// String returns the move's instruction character.
func (m Move) String() string {
	switch m {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}
