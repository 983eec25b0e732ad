// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

// alloc claims the next free slot of pool and returns its index. If pool is
// full, alloc reports ErrNoMemory and p is not modified.
func (p *Parser) alloc(pool []Token) (int, error) {
	if p.next >= len(pool) {
		return None, ErrNoMemory
	}
	i := p.next
	p.next++
	pool[i].clear()
	return i, nil
}

// link connects the newly-allocated token at index i to the current superior
// token: it records the parent, patches the previous sibling, and counts i
// as a child of its parent.
func (p *Parser) link(pool []Token, i int) {
	if p.opts.ParentLinks {
		pool[i].Parent = int32(p.super)
	}
	if p.opts.SiblingLinks {
		p.linkSibling(pool, i)
	}
	if p.super != None {
		pool[p.super].Size++
	}
}

// linkSibling sets the Next field of the last sibling before i to i. The
// value of a key is its only child, so only the children of containers and
// of the root are recorded in p.last.
func (p *Parser) linkSibling(pool []Token, i int) {
	if p.super != None && !pool[p.super].Kind.IsContainer() {
		return
	}
	if prev := p.last[p.depth] - 1; prev != None {
		pool[prev].Next = int32(i)
	}
	p.last[p.depth] = int32(i) + 1
}

// enclosing returns the index of the innermost container that is still open
// and encloses the token at index i, or None. Keys are skipped.
func (p *Parser) enclosing(pool []Token, i int) int {
	if p.opts.ParentLinks {
		up := int(pool[i].Parent)
		if up != None && !pool[up].Kind.IsContainer() {
			up = int(pool[up].Parent)
		}
		return up
	}
	for j := i - 1; j >= 0; j-- {
		if pool[j].Kind.IsContainer() && pool[j].End == None {
			return j
		}
	}
	return None
}

// commit records that one more token is complete. If pool != nil, the token
// at index i is linked to its parent and the superior token is updated.
func (p *Parser) commit(pool []Token, i int) {
	p.count++
	if pool == nil {
		return
	}
	p.link(pool, i)
	if p.super != None && !pool[p.super].Kind.IsContainer() {
		// The superior was a key, and i is its value.
		p.super = p.enclosing(pool, p.super)
	}
}

// push records a newly-opened container on the kind stack.
func (p *Parser) push(isObject bool) {
	w, b := p.depth/64, uint(p.depth%64)
	if isObject {
		p.kinds[w] |= 1 << b
	} else {
		p.kinds[w] &^= 1 << b
	}
	p.depth++
	p.last[p.depth] = 0
}

// inObject reports whether the innermost open container is an object.
func (p *Parser) inObject() bool {
	if p.depth == 0 {
		return false
	}
	d := p.depth - 1
	return p.kinds[d/64]&(1<<uint(d%64)) != 0
}

// pop discards the innermost open container from the kind stack.
func (p *Parser) pop() { p.depth-- }
