// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

// parseColon consumes a colon separating a key from its value. The token
// before the colon becomes the superior token, so that it is the parent of
// the value that follows.
func (p *Parser) parseColon(pool []Token) error {
	if !p.exp.allows(expColon) {
		return p.fail(ErrInvalid)
	}
	if pool != nil {
		p.super = p.next - 1
		t := &pool[p.super]
		t.Kind = t.Kind.retag(Key) // a root value followed by ":" is a key
	}
	if p.depth == 0 {
		p.exp = stateAfterColonRoot
	} else {
		p.exp = stateAfterColon
	}
	p.pos++
	return nil
}

// parseComma consumes a comma separating values or object members.
func (p *Parser) parseComma() error {
	if !p.exp.allows(expComma) {
		return p.fail(ErrInvalid)
	}
	if p.depth == 0 {
		p.exp = stateRoot
	} else {
		p.exp = afterComma(p.inObject())
	}
	p.pos++
	return nil
}
