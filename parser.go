// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"errors"
	"math"
)

const (
	// MaxInput is the maximum length of an input buffer, fixed by the width
	// of the offsets stored in a Token.
	MaxInput = math.MaxInt32

	// MaxDepth is the maximum nesting depth of objects and arrays.
	MaxDepth = 1024
)

// Options control the grammar accepted by a Parser and the links it records
// in each Token. The zero value accepts strict JSON and records no links.
type Options struct {
	// If true, record the index of each token's parent in Token.Parent.
	// Otherwise Parent is None and the parser locates enclosing containers by
	// scanning backward through the pool.
	ParentLinks bool

	// If true, record the index of each token's next sibling in Token.Next.
	SiblingLinks bool

	// If true, primitives may be object keys, and a colon following a
	// top-level value marks that value as a key.
	PermissiveKeys bool

	// If true, any run of bytes that are not whitespace or structural
	// characters is accepted as a primitive.
	PermissivePrimitives bool

	// If true, strings may contain \UXXXXXXXX escapes with 8 hex digits.
	PermissiveStrings bool

	// If true, the input may contain more than one top-level value, and
	// top-level values may be separated by commas.
	MultipleValues bool

	// If positive, inputs longer than this are rejected with ErrTooLong.
	// Values greater than MaxInput are treated as MaxInput.
	MaxLength int
}

// Strict returns options that accept a single RFC 8259 JSON value and record
// both parent and sibling links.
func Strict() Options { return Options{ParentLinks: true, SiblingLinks: true} }

// Permissive returns options that enable every permissive rule and record
// both parent and sibling links.
func Permissive() Options {
	return Options{
		ParentLinks:          true,
		SiblingLinks:         true,
		PermissiveKeys:       true,
		PermissivePrimitives: true,
		PermissiveStrings:    true,
		MultipleValues:       true,
	}
}

// A Parser tokenizes JSON text into a caller-provided pool of tokens. A Parser
// holds all the state needed to resume tokenizing a document whose text
// arrives in pieces. Use New to construct a Parser.
//
// A Parser is not safe for concurrent use by multiple goroutines.
type Parser struct {
	opts  Options
	pos   int    // offset of the next byte to examine
	super int    // index of the open container or key, or None
	next  int    // index of the next free pool slot
	count int    // number of tokens committed
	exp   expect // what may follow the current position
	depth int    // number of open containers

	// Bit i is set if the container open at depth i+1 is an object.
	kinds [MaxDepth / 64]uint64

	// One plus the index of the last child committed at each depth, or 0.
	// Index 0 is the root level.
	last [MaxDepth + 1]int32

	open partial // token left incomplete by the previous call
}

// New constructs a new Parser with the given options, ready to parse the
// start of a document.
func New(opts Options) *Parser {
	p := &Parser{opts: opts}
	p.Reset()
	return p
}

// Reset returns p to the start-of-document state. It must be called before
// p is used to parse an unrelated document.
func (p *Parser) Reset() {
	*p = Parser{opts: p.opts, super: None, exp: stateRoot}
}

// Options returns the options p was constructed with.
func (p *Parser) Options() Options { return p.opts }

// Offset returns the offset of the first byte of the input not yet consumed.
// After a successful call that stopped at the end of a single value, any
// non-whitespace input at this offset is not part of the document.
func (p *Parser) Offset() int { return p.pos }

// Depth returns the number of containers currently open.
func (p *Parser) Depth() int { return p.depth }

// Tokens returns the number of tokens committed so far.
func (p *Parser) Tokens() int { return p.count }

// Count reports the number of tokens needed to tokenize buf, without storing
// any tokens. It is shorthand for Parse(buf, nil).
func (p *Parser) Count(buf []byte) (int, error) { return p.Parse(buf, nil) }

// Parse tokenizes buf, writing tokens to pool, and reports the total number
// of tokens in the document. If pool == nil, Parse only counts tokens; a
// non-nil pool of length zero has no capacity.
//
// If buf ends before the document is complete, Parse reports ErrPartial. The
// caller may then call Parse again with the same parser and pool and a longer
// buf that begins with the same bytes. Tokens already committed are not
// scanned again.
//
// If pool has no room for a token, Parse reports ErrNoMemory without
// changing the state of p. The call may be retried with a longer pool that
// holds the tokens already written.
//
// Any other error ends the document; call Reset before reusing p.
func (p *Parser) Parse(buf []byte, pool []Token) (int, error) {
	if len(buf) > p.maxLength() {
		return 0, ErrTooLong
	} else if len(buf) < p.pos {
		return 0, p.failAt(len(buf), ErrInvalid)
	}
	if err := p.resume(buf, pool); err != nil {
		return 0, err
	}

	loose := p.opts.PermissivePrimitives
	for p.pos < len(buf) && p.exp != stateDone {
		var err error
		switch b := buf[p.pos]; classify(b, loose) {
		case classOpen:
			err = p.openContainer(b, pool)
		case classClose:
			err = p.closeContainer(b, pool)
		case classQuote:
			err = p.parseString(buf, pool)
		case classColon:
			err = p.parseColon(pool)
		case classComma:
			err = p.parseComma()
		case classSpace:
			p.pos++
		case classPrimitive:
			err = p.parsePrimitive(buf, pool)
		default:
			err = p.fail(ErrInvalid)
		}
		if err != nil {
			return 0, err
		}
	}

	if p.depth > 0 {
		return 0, ErrPartial
	} else if p.open.kind != Undefined && p.exp&expContinue == 0 {
		return 0, ErrPartial // a string or primitive prefix is open
	} else if p.count == 0 {
		if len(buf) == 0 {
			return 0, p.failAt(0, ErrInvalid)
		}
		return 0, ErrPartial // only whitespace so far
	} else if e := p.exp &^ expContinue; e == stateRoot || e == stateAfterColonRoot {
		return 0, ErrPartial // a comma or colon awaits its value
	}
	for p.pos < len(buf) && isSpace(buf[p.pos]) {
		p.pos++
	}
	return p.count, nil
}

// Tokenize tokenizes a complete document in buf using the two-pass
// convention: it counts the tokens, allocates a pool of exactly that size,
// and fills it.
//
// Since buf is the whole document, Tokenize is stricter than Parse at the
// end of the input: an unclosed container is ErrBrackets, and input that is
// empty or all whitespace is ErrInvalid, as is anything but whitespace after
// the document.
func Tokenize(buf []byte, opts Options) ([]Token, error) {
	p := New(opts)
	n, err := p.Count(buf)
	if errors.Is(err, ErrPartial) {
		if p.depth > 0 {
			return nil, p.failAt(len(buf), ErrBrackets)
		} else if p.count == 0 && p.open.kind == Undefined {
			return nil, p.failAt(len(buf), ErrInvalid) // only whitespace
		}
	}
	if err != nil {
		return nil, err
	}
	toks := make([]Token, n)
	p.Reset()
	m, err := p.Parse(buf, toks)
	if err != nil {
		return nil, err
	} else if p.pos < len(buf) {
		return nil, p.fail(ErrInvalid)
	}
	return toks[:m], nil
}

func (p *Parser) maxLength() int {
	if n := p.opts.MaxLength; n > 0 && n < MaxInput {
		return n
	}
	return MaxInput
}

// resume continues a token left open at the end of the previous call.
func (p *Parser) resume(buf []byte, pool []Token) error {
	if p.pos == len(buf) || p.open.kind == Undefined {
		return nil
	}
	if p.exp&expContinue != 0 {
		// The token was complete at the end of the previous input, and may be
		// extended only if the next byte continues it.
		p.exp &^= expContinue
		if b := buf[p.pos]; isSpace(b) || isStructural(b) {
			p.open = partial{}
			return nil
		}
	}
	if p.open.kind == String {
		return p.scanString(buf, pool, p.open, p.pos)
	}
	return p.scanPrimitive(buf, pool, p.open, p.pos)
}

// A partial records the state of a token whose end has not been seen.
type partial struct {
	kind  Kind // String or Primitive, or Undefined if no token is open
	start int  // offset of the first byte of the token text
	done  bool // the token has been committed and is being extended
	tok   int  // if done in fill mode, the index of the token
	str   strScan
	prim  primScan
}
