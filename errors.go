// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMemory is reported when the token pool has no free slot. The parser
	// state is not changed, so the call may be retried with a larger pool that
	// holds the tokens already written.
	ErrNoMemory = errors.New("not enough tokens")

	// ErrInvalid is reported for a byte that violates the JSON grammar.
	ErrInvalid = errors.New("invalid character")

	// ErrPartial is reported when the input ends before the document is
	// complete. More input may be supplied to the same parser.
	ErrPartial = errors.New("incomplete input")

	// ErrTooLong is reported when the input exceeds the maximum length.
	ErrTooLong = errors.New("input too long")

	// ErrBrackets is reported for an unmatched or mismatched close bracket.
	ErrBrackets = errors.New("mismatched brackets")

	// ErrTooDeep is reported when containers nest more than MaxDepth levels.
	ErrTooDeep = errors.New("nesting too deep")
)

// SyntaxError is the concrete type of errors that identify a specific byte of
// the input. It wraps one of ErrInvalid, ErrBrackets, or ErrTooDeep.
type SyntaxError struct {
	Offset int   // offset of the offending byte
	Err    error // the underlying error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s (offset %d)", s.Err.Error(), s.Offset)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.Err }

// Location reports the line and column of the offending byte in buf.
func (s *SyntaxError) Location(buf []byte) LineCol { return Locate(buf, s.Offset) }

func (p *Parser) fail(err error) error { return &SyntaxError{Offset: p.pos, Err: err} }

func (p *Parser) failAt(pos int, err error) error { return &SyntaxError{Offset: pos, Err: err} }
