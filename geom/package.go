// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package geom provides the 2D integer geometry the dustgrid point
// index is built on: points, axis-aligned tiles, splitting lines, and
// the containment order relating them.
//
// The comparisons in this package are partial orders. They return an
// explicit Relation value which, besides the usual Less, Equal and
// Greater outcomes, can report that two values are incomparable
// (NoRelation). Callers must handle NoRelation explicitly.
package geom
