// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jtok implements a non-allocating tokenizer for JSON text.
//
// The tokenizer does not build a tree of values and does not copy or decode
// the input. Instead it writes a flat array of Token values, each of which
// records the offsets of one syntactic unit in the input buffer along with
// its kind and its structural links:
//
//	buf := []byte(`{"a": [1, true]}`)
//	toks, err := jtok.Tokenize(buf, jtok.Strict())
//	if err != nil {
//	   log.Fatalf("Tokenize: %v", err)
//	}
//	for i, t := range toks {
//	   fmt.Printf("%d: %v %q\n", i, t.Kind, t.Text(buf))
//	}
//
// # Tokens
//
// Tokens appear in document order. An object token is the parent of its keys,
// each key is the parent of its value, and an array is the parent of its
// elements. The Size of each token is the number of its direct children.
//
// # Two-pass parsing
//
// A Parser writes into a pool of tokens supplied by the caller, and never
// allocates. Calling Parse with a nil pool only counts the tokens, so the
// usual pattern is to count, allocate a pool of exactly that size, and fill:
//
//	p := jtok.New(opts)
//	n, err := p.Count(buf)
//	...
//	pool := make([]jtok.Token, n)
//	p.Reset()
//	_, err = p.Parse(buf, pool)
//
// Tokenize does exactly this.
//
// # Streaming
//
// If the input ends before the document is complete, Parse reports
// ErrPartial. The caller may call Parse again with the same Parser and a
// longer buffer beginning with the same bytes, and the parser continues from
// where it stopped:
//
//	for {
//	   buf = append(buf, readMore()...)
//	   n, err := p.Parse(buf, pool)
//	   if errors.Is(err, jtok.ErrPartial) {
//	      continue
//	   }
//	   ...
//	}
//
// A number or literal that is complete at the end of the buffer is reported,
// but may be extended by the next call if more of it arrives.
//
// # Walking
//
// Walk replays a finished token array as a sequence of events delivered to a
// Handler (BeginObject, BeginMember, Value, and so on), for callers that
// prefer a streaming view of the structure.
//
// # Errors
//
// Errors that identify a specific byte of the input have concrete type
// *SyntaxError, and wrap one of the sentinel errors ErrInvalid, ErrBrackets,
// or ErrTooDeep. Use errors.Is to check for a particular condition.
package jtok
