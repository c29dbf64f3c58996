// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dustgrid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustgrid/dustgrid/geom"
)

// Input is the fully parsed content of a dustgrid input stream.
type Input struct {
	// Extent is the top-right corner of the arena. The bottom-left
	// corner is implicitly the origin.
	Extent geom.Point[int32]
	// Start is the rover's initial position.
	Start geom.Point[int32]
	// Dust lists the dusty cells.
	Dust []geom.Point[int32]
	// Moves is the move sequence the rover executes.
	Moves []Move
}

// A Reader parses the line-oriented dustgrid input format:
//
//	line 1: the arena extent as a coordinate line
//	line 2: the rover start position as a coordinate line
//	then zero or more dust coordinate lines, recognized by a leading
//	decimal digit
//	then exactly one line of move instructions (N, E, S, W)
//
// A coordinate line holds two whitespace-separated non-negative
// integers, the y coordinate first and the x coordinate second, each
// fitting in 16 bits before widening to int32. Parse failures are
// reported as *LineError wrapping one of the named error conditions
// together with the offending line number.
type Reader struct {
	sc      *bufio.Scanner
	line    int
	peeked  string
	hasPeek bool
}

// NewReader wraps r in a dustgrid input format reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int {
	return r.line
}

// Read parses the entire input.
func (r *Reader) Read() (*Input, error) {
	extent, err := r.coordinate()
	if err != nil {
		return nil, err
	}
	start, err := r.coordinate()
	if err != nil {
		return nil, err
	}
	dust, err := r.dust()
	if err != nil {
		return nil, err
	}
	moves, err := r.moves()
	if err != nil {
		return nil, err
	}
	return &Input{Extent: extent, Start: start, Dust: dust, Moves: moves}, nil
}

// peek returns the next line without consuming it.
func (r *Reader) peek() (string, error) {
	if !r.hasPeek {
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return "", wrapErr("read error", err)
			}
			return "", ErrUnexpectedEOF
		}
		r.peeked = r.sc.Text()
		r.hasPeek = true
	}
	return r.peeked, nil
}

// next consumes and returns the next line.
func (r *Reader) next() (string, error) {
	s, err := r.peek()
	if err != nil {
		return "", err
	}
	r.hasPeek = false
	r.line++
	return s, nil
}

func (r *Reader) lineError(err error) error {
	return &LineError{Line: r.line, Err: err}
}

// coordinate consumes one coordinate line.
func (r *Reader) coordinate() (geom.Point[int32], error) {
	var zero geom.Point[int32]
	s, err := r.next()
	if err != nil {
		return zero, r.lineError(err)
	}
	words := strings.Fields(s)
	if len(words) != 2 {
		return zero, r.lineError(ErrBadCoordinate)
	}
	y, err := parseCoordinate(words[0])
	if err != nil {
		return zero, r.lineError(err)
	}
	x, err := parseCoordinate(words[1])
	if err != nil {
		return zero, r.lineError(err)
	}
	return geom.Pt(x, y), nil
}

func parseCoordinate(s string) (int32, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrBadNumber, s, err)
	}
	return int32(n), nil
}

// dust consumes coordinate lines until the first line that does not
// start with a decimal digit, which begins the move sequence.
func (r *Reader) dust() ([]geom.Point[int32], error) {
	var dust []geom.Point[int32]
	for {
		s, err := r.peek()
		if err != nil {
			return nil, r.lineError(err)
		}
		if len(s) == 0 {
			return nil, r.lineError(ErrBadCoordinate)
		}
		if s[0] < '0' || s[0] > '9' {
			return dust, nil
		}
		p, err := r.coordinate()
		if err != nil {
			return nil, err
		}
		dust = append(dust, p)
	}
}

// moves consumes the move instruction line.
func (r *Reader) moves() ([]Move, error) {
	s, err := r.next()
	if err != nil {
		return nil, r.lineError(err)
	}
	moves := make([]Move, 0, len(s))
	for i := 0; i < len(s); i++ {
		m, ok := ParseMove(s[i])
		if !ok {
			return nil, r.lineError(fmt.Errorf("%w %q", ErrBadMove, s[i]))
		}
		moves = append(moves, m)
	}
	return moves, nil
}
