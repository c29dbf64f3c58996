// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dustgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrRoverOutsideArena is returned when the initial rover position
	// does not lie inside the arena.
	ErrRoverOutsideArena = textErr("initial rover position is outside the arena")
	// ErrDustOutsideArena is returned when a dust coordinate does not
	// lie inside the arena.
	ErrDustOutsideArena = textErr("dust is outside the arena")
	// ErrBadMove is returned when the move line contains a character
	// other than N, E, S or W.
	ErrBadMove = textErr("invalid rover move instruction")
	// ErrBadCoordinate is returned when a coordinate line does not
	// hold exactly two whitespace-separated fields.
	ErrBadCoordinate = textErr("invalid coordinate line format")
	// ErrBadNumber is returned when a coordinate field is not a
	// non-negative integer fitting in 16 bits.
	ErrBadNumber = textErr("invalid coordinate")
	// ErrUnexpectedEOF is returned when the input ends before the move
	// line was read.
	ErrUnexpectedEOF = textErr("unexpected end of input")
)

// A LineError decorates a parse error with the input line it was
// detected on. For truncated input the line number is the last line
// successfully read.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%v (line %d)", e.Err, e.Line)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

const packageName = "dustgrid: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}
