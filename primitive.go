// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

// primState is the state of the primitive automaton.
type primState uint8

const (
	numMinus     primState = iota + 1 // "-"
	numZero                           // "0" or "-0"
	numInt                            // integer digits
	numDot                            // "."
	numFrac                           // fraction digits
	numExp                            // "e" or "E"
	numExpSign                        // exponent sign
	numExpDigits                      // exponent digits
	litPartial                        // a proper prefix of a literal
	litDone                           // a complete literal
	bareRun                           // a permissive primitive
)

var literals = [...]string{"true", "false", "null"}

// primScan is the resumable state of a primitive being scanned.
type primScan struct {
	state primState
	lit   uint8 // index in literals, for litPartial and litDone
	n     uint8 // bytes of the literal matched so far
	flags Kind  // Signed, Decimal, Exponent as seen so far
}

// beginPrim returns the automaton state after the first byte b of a
// primitive. If loose is true, the primitive is a bare run of bytes.
func beginPrim(b byte, loose bool) primScan {
	if loose {
		return primScan{state: bareRun}
	}
	switch {
	case b == '-':
		return primScan{state: numMinus, flags: Signed}
	case b == '0':
		return primScan{state: numZero}
	case isDigit(b):
		return primScan{state: numInt}
	}
	for i, lit := range literals {
		if lit[0] == b {
			return primScan{state: litPartial, lit: uint8(i), n: 1}
		}
	}
	panic("invalid primitive start") // unreachable: classify admits only these
}

// step advances s by one byte, and reports false without changing s if b
// does not continue the primitive.
func (s *primScan) step(b byte) bool {
	switch s.state {
	case numMinus:
		if b == '0' {
			s.state = numZero
		} else if isDigit(b) {
			s.state = numInt
		} else {
			return false
		}
	case numZero, numInt:
		switch {
		case b == '.':
			s.state = numDot
			s.flags |= Decimal
		case b == 'e' || b == 'E':
			s.state = numExp
			s.flags |= Exponent
		case isDigit(b) && s.state == numInt:
		default:
			return false
		}
	case numDot, numFrac:
		switch {
		case isDigit(b):
			s.state = numFrac
		case (b == 'e' || b == 'E') && s.state == numFrac:
			s.state = numExp
			s.flags |= Exponent
		default:
			return false
		}
	case numExp:
		if b == '+' || b == '-' {
			s.state = numExpSign
		} else if isDigit(b) {
			s.state = numExpDigits
		} else {
			return false
		}
	case numExpSign, numExpDigits:
		if !isDigit(b) {
			return false
		}
		s.state = numExpDigits
	case litPartial:
		lit := literals[s.lit]
		if b != lit[s.n] {
			return false
		}
		s.n++
		if int(s.n) == len(lit) {
			s.state = litDone
		}
	case bareRun:
		return isBare(b)
	default:
		return false
	}
	return true
}

// terminal reports whether s is a complete primitive.
func (s primScan) terminal() bool {
	switch s.state {
	case numZero, numInt, numFrac, numExpDigits, litDone, bareRun:
		return true
	}
	return false
}

// kind returns the Kind flags describing a terminal primitive.
func (s primScan) kind() Kind {
	switch s.state {
	case bareRun:
		return Primitive
	case litDone:
		return Primitive | Literal
	}
	k := Primitive | s.flags
	if s.flags&(Decimal|Exponent) == 0 {
		k |= Integer
	}
	return k
}

// isBorder reports whether b may follow a complete primitive.
func (p *Parser) isBorder(b byte) bool {
	switch b {
	case ',', ']', '}':
		return true
	case ':':
		return p.opts.PermissiveKeys || p.opts.PermissivePrimitives
	}
	return isSpace(b) || (p.opts.PermissivePrimitives && isStructural(b))
}

// parsePrimitive begins a primitive at the current position.
func (p *Parser) parsePrimitive(buf []byte, pool []Token) error {
	exp := p.exp
	if p.opts.PermissiveKeys {
		exp = exp.permissiveKeys()
	}
	if !exp.allows(expPrimitive) {
		return p.fail(ErrInvalid)
	}
	op := partial{
		kind:  Primitive,
		start: p.pos,
		prim:  beginPrim(buf[p.pos], p.opts.PermissivePrimitives),
	}
	return p.scanPrimitive(buf, pool, op, p.pos+1)
}

// scanPrimitive scans the primitive described by op from offset i of buf.
// A primitive that is complete at the end of buf is committed, and remains
// open so that the next call may extend it.
func (p *Parser) scanPrimitive(buf []byte, pool []Token, op partial, i int) error {
	s := op.prim
	for i < len(buf) && s.step(buf[i]) {
		i++
	}
	if i == len(buf) {
		if !s.terminal() {
			op.prim = s
			p.open = op
			p.pos = i
			return ErrPartial
		}
	} else if !s.terminal() || !p.isBorder(buf[i]) {
		return p.failAt(i, ErrInvalid)
	}

	if op.done {
		// Extend the token committed by a previous call.
		if pool != nil {
			t := &pool[op.tok]
			t.End = int32(i)
			t.Kind = t.Kind&tagMask | s.kind()
		}
	} else {
		tag := Value
		if p.exp.expectKey() {
			tag = Key
		}
		idx := None
		if pool != nil {
			var err error
			idx, err = p.alloc(pool)
			if err != nil {
				return err
			}
			pool[idx].Kind = s.kind() | tag
			pool[idx].Start = int32(op.start)
			pool[idx].End = int32(i)
		}
		p.commit(pool, idx)
		p.exp = p.afterScalar(p.exp)
		op.done, op.tok = true, idx
	}

	p.pos = i
	if i == len(buf) {
		op.prim = s
		p.open = op
		p.exp |= expContinue
	} else {
		p.open = partial{}
	}
	return nil
}
