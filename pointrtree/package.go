// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package pointrtree provides a compact in-memory R-tree variant
// specialized to point data. It indexes a sparse set of 2D integer
// points, each bound to a value, so that exact-point lookups and
// inserts descend a hierarchy of nested bounding tiles instead of
// scanning every stored point.
//
// Every structural decision in the tree is phrased through the
// containment-order algebra of package geom; the tree itself never
// compares coordinates directly.
package pointrtree
