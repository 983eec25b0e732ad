// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

// openContainer begins an object or array at the current position.
func (p *Parser) openContainer(b byte, pool []Token) error {
	if !p.exp.allows(expOpen) {
		return p.fail(ErrInvalid)
	} else if p.depth >= MaxDepth {
		return p.fail(ErrTooDeep)
	}
	kind := Array
	if b == '{' {
		kind = Object
	}
	idx := None
	if pool != nil {
		var err error
		idx, err = p.alloc(pool)
		if err != nil {
			return err
		}
		pool[idx].Kind = kind | Value
		pool[idx].Start = int32(p.pos)
	}
	p.commit(pool, idx)
	p.super = idx
	p.push(kind == Object)
	p.exp = afterOpen(kind)
	p.pos++
	return nil
}

// closeContainer ends the innermost open container at the current position.
func (p *Parser) closeContainer(b byte, pool []Token) error {
	if !p.exp.allows(expClose) || p.depth == 0 || p.inObject() != (b == '}') {
		return p.fail(ErrBrackets)
	}
	if pool != nil {
		if p.super == None || !pool[p.super].Kind.IsContainer() {
			return p.fail(ErrBrackets)
		}
		pool[p.super].End = int32(p.pos + 1)
		p.super = p.enclosing(pool, p.super)
	}
	p.pop()
	p.exp = p.afterClose()
	p.pos++
	return nil
}
