// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dustgrid

import (
	logging "github.com/op/go-logging"

	"github.com/dustgrid/dustgrid/geom"
	"github.com/dustgrid/dustgrid/pointrtree"
)

var log = logging.MustGetLogger("dustgrid")

// An Entity is the content of one grid cell tracked by the dust index.
type Entity struct {
	dust bool
}

// Dusty reports whether the cell still holds dust.
func (e *Entity) Dusty() bool {
	return e.dust
}

// sweep clears the cell and reports whether it held dust.
func (e *Entity) sweep() bool {
	held := e.dust
	e.dust = false
	return held
}

// A Game is the grid-walk simulation: a rover on a rectangular arena
// sweeping dust cells tracked by a point R-tree index.
type Game struct {
	rover geom.Point[int32]
	arena geom.Tile[int32]
	dust  *pointrtree.RTree[int32, Entity]
}

// NewGame builds the simulation for an arena spanning the origin to
// extent, a rover starting at rover, and the given dusty cells. The
// rover and every dust cell must lie inside the arena.
func NewGame(extent, rover geom.Point[int32], dust []geom.Point[int32], fillFactor int) (*Game, error) {
	arena := geom.NewTile(geom.Pt[int32](0, 0), extent)
	if !arena.Covers(rover) {
		return nil, ErrRoverOutsideArena
	}
	index := pointrtree.NewWithFillFactor[int32, Entity](fillFactor)
	for _, p := range dust {
		if !arena.Covers(p) {
			return nil, ErrDustOutsideArena
		}
		index.Insert(p, Entity{dust: true})
	}
	log.Debugf("arena %v, rover at %v, %d dust cells indexed", arena, rover, len(dust))
	return &Game{rover: rover, arena: arena, dust: index}, nil
}

// Rover returns the rover's current position.
func (g *Game) Rover() geom.Point[int32] {
	return g.rover
}

// step moves the rover one cell in direction m. A step that would
// leave the arena is ignored and the rover stays put.
func (g *Game) step(m Move) geom.Point[int32] {
	next := g.rover.Add(m.Vector())
	// Bounds are checked with the dominance order: the step is legal
	// only when the new position sits between the arena's corners on
	// both axes.
	hi := next.Compare(g.arena.Max)
	lo := next.Compare(g.arena.Min)
	if (hi == geom.Less || hi == geom.Equal) && (lo == geom.Greater || lo == geom.Equal) {
		g.rover = next
	}
	return g.rover
}

// Run executes the move sequence and returns the number of dust cells
// swept along the way. Each dusty cell counts once, the first time the
// rover lands on it.
func (g *Game) Run(moves []Move) int {
	swept := 0
	for _, m := range moves {
		pos := g.step(m)
		if e := g.dust.FindRef(pos); e != nil && e.sweep() {
			log.Debugf("swept dust at %v", pos)
			swept++
		}
	}
	return swept
}
