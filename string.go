// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

// strState is the state of the string automaton.
type strState uint8

const (
	strBody   strState = iota // ordinary string content
	strEscape                 // after a backslash
	strHex                    // inside the hex digits of a \u or \U escape
)

// strScan is the resumable state of a string being scanned.
type strScan struct {
	state strState
	hex   uint8 // hex digits remaining in the current escape
}

// step advances s by one byte, and reports false if b is not valid at this
// point in a string. The closing quote is not handled by step.
func (s *strScan) step(b byte, wide bool) bool {
	switch s.state {
	case strBody:
		if b == '\\' {
			s.state = strEscape
		} else if isControl(b) {
			return false
		}
	case strEscape:
		switch b {
		case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			s.state = strBody
		case 'u':
			s.state, s.hex = strHex, 4
		case 'U':
			if !wide {
				return false
			}
			s.state, s.hex = strHex, 8
		default:
			return false
		}
	case strHex:
		if !isHexDigit(b) {
			return false
		}
		s.hex--
		if s.hex == 0 {
			s.state = strBody
		}
	}
	return true
}

// parseString begins a string at the opening quote at the current position.
func (p *Parser) parseString(buf []byte, pool []Token) error {
	if !p.exp.allows(expString) {
		return p.fail(ErrInvalid)
	}
	op := partial{kind: String, start: p.pos + 1}
	return p.scanString(buf, pool, op, p.pos+1)
}

// scanString scans the string described by op from offset i of buf.
func (p *Parser) scanString(buf []byte, pool []Token, op partial, i int) error {
	s := op.str
	wide := p.opts.PermissiveStrings
	for ; i < len(buf); i++ {
		b := buf[i]
		if b == '"' && s.state == strBody {
			break
		} else if !s.step(b, wide) {
			return p.failAt(i, ErrInvalid)
		}
	}
	if i == len(buf) {
		op.str = s
		p.open = op
		p.pos = i
		return ErrPartial
	}

	idx := None
	if pool != nil {
		var err error
		idx, err = p.alloc(pool)
		if err != nil {
			return err
		}
		tag := Value
		if p.exp.expectKey() {
			tag = Key
		}
		pool[idx].Kind = String | tag
		pool[idx].Start = int32(op.start)
		pool[idx].End = int32(i)
	}
	p.commit(pool, idx)
	p.exp = p.afterScalar(p.exp)
	p.open = partial{}
	p.pos = i + 1
	return nil
}
