// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"errors"
	"fmt"
)

// A Handler handles events from walking a token array. If a method reports
// an error, the walk stops and that error is returned to the caller. Each
// method is given the index of the token at which the event occurs.
type Handler interface {
	// Begin a new object at token i.
	BeginObject(i int) error

	// End the object at token i.
	EndObject(i int) error

	// Begin a new array at token i.
	BeginArray(i int) error

	// End the array at token i.
	EndArray(i int) error

	// Begin a new object member, whose key is token i. The key text is not
	// decoded; use Unquote if the plain string is required.
	BeginMember(i int) error

	// End the object member whose key is token i.
	EndMember(i int) error

	// Report a string or primitive value at token i.
	Value(i int) error
}

// errMalformed is reported by Walk for a token array whose sizes do not
// describe a complete document.
var errMalformed = errors.New("malformed token array")

// Walk delivers events to h for each of the tokens in toks, in document
// order, and reports the first error returned by h. The tokens must be the
// complete output of a successful parse; links are not required.
//
// Walk delivers member events for keys outside any object, which occur when
// PermissiveKeys and MultipleValues are both enabled.
func Walk(toks []Token, h Handler) (err error) {
	defer func() {
		if x := recover(); x != nil {
			if he, ok := x.(handlerError); ok {
				err = he.error
				return
			}
			panic(x)
		}
	}()
	w := walker{toks: toks, h: h}
	for i := 0; i < len(toks); {
		i = w.element(i)
	}
	return nil
}

type walker struct {
	toks []Token
	h    Handler
}

// element walks the subtree rooted at token i and returns the index of the
// first token after it.
func (w walker) element(i int) int {
	if i >= len(w.toks) {
		w.check(fmt.Errorf("token %d: %w", i, errMalformed))
	}
	t := w.toks[i]
	switch {
	case t.Kind.IsKey():
		w.check(w.h.BeginMember(i))
		next := i + 1
		if t.Size > 0 {
			next = w.element(next)
		}
		w.check(w.h.EndMember(i))
		return next

	case t.Kind.Has(Object):
		w.check(w.h.BeginObject(i))
		next := w.children(i, t.Size)
		w.check(w.h.EndObject(i))
		return next

	case t.Kind.Has(Array):
		w.check(w.h.BeginArray(i))
		next := w.children(i, t.Size)
		w.check(w.h.EndArray(i))
		return next

	case t.Kind.Base() == Undefined:
		w.check(fmt.Errorf("token %d: %w", i, errMalformed))
	}
	w.check(w.h.Value(i))
	return i + 1
}

func (w walker) children(i int, n int32) int {
	next := i + 1
	for range n {
		next = w.element(next)
	}
	return next
}

func (w walker) check(err error) {
	if err != nil {
		panic(handlerError{err})
	}
}

type handlerError struct{ error }
