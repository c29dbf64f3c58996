// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import "golang.org/x/exp/constraints"

// Scalar is the constraint on axis coordinate types. Coordinates are
// integer-like scalars: ordered, copyable, and closed under addition,
// subtraction and multiplication.
type Scalar interface {
	constraints.Integer
}

// A Relation is the outcome of comparing two geometric values. For the
// containment orders in this package, Greater reads as "contains" and
// Less as "is outside" or "is contained", depending on the operands.
type Relation int8

const (
	Less    Relation = -1
	Equal   Relation = 0
	Greater Relation = 1
	// NoRelation reports that neither value is less than, equal to, or
	// greater than the other. It is a definite outcome, not an error,
	// and must never be coerced to one of the ordered outcomes.
	NoRelation Relation = 2
)

// Invert swaps Less and Greater, leaving Equal and NoRelation as they
// are. It converts a relation into the relation seen from the other
// operand's side.
func (r Relation) Invert() Relation {
	switch r {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return r
	}
}

// String returns the name of the relation.
func (r Relation) String() string {
	switch r {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	case NoRelation:
		return "NoRelation"
	default:
		return "Invalid"
	}
}

// compare is the three-way total order on a single axis coordinate.
func compare[C Scalar](a, b C) Relation {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}
