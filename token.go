// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"fmt"

	"go4.org/mem"
)

// None is the value of a Token offset or index that is not set.
const None = -1

// A Token describes a single syntactic unit of a JSON document by its offsets
// in the source buffer. A Token does not hold a copy of the source text.
type Token struct {
	Kind   Kind
	Start  int32 // offset of the first byte; strings exclude the quotes
	End    int32 // offset after the last byte, or None while a container is open
	Size   int32 // number of direct children
	Parent int32 // index of the parent token, or None
	Next   int32 // index of the next sibling, or None
}

// clear resets t to an unused state.
func (t *Token) clear() {
	*t = Token{Start: None, End: None, Parent: None, Next: None}
}

// Span returns the location span of t.
func (t Token) Span() Span { return Span{Pos: int(t.Start), End: int(t.End)} }

// Len returns the length in bytes of the source text of t, or 0 if t is not
// closed.
func (t Token) Len() int {
	if t.Start < 0 || t.End < t.Start {
		return 0
	}
	return int(t.End - t.Start)
}

// Text returns the undecoded source text of t from buf. The result is a view
// of buf, not a copy. For strings the enclosing quotes are excluded.
func (t Token) Text(buf []byte) []byte {
	if t.Start < 0 || t.End < t.Start || int(t.End) > len(buf) {
		return nil
	}
	return buf[t.Start:t.End]
}

// Source returns the complete source text of t from buf, including the
// quotation marks of a string. The result is a view of buf.
func (t Token) Source(buf []byte) []byte {
	text := t.Text(buf)
	if text == nil || t.Kind.Base() != String || t.Start < 1 || int(t.End) >= len(buf) {
		return text
	}
	return buf[t.Start-1 : t.End+1]
}

// View returns a read-only view of the source text of t from buf.
func (t Token) View(buf []byte) mem.RO { return mem.B(t.Text(buf)) }

func (t Token) String() string {
	return fmt.Sprintf("%v[%d:%d] size=%d parent=%d next=%d",
		t.Kind, t.Start, t.End, t.Size, t.Parent, t.Next)
}
