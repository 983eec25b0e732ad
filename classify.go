// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

// byteClass is the role a byte plays when it begins a token.
type byteClass byte

const (
	classIllegal byteClass = iota
	classOpen              // "{" or "["
	classClose             // "}" or "]"
	classQuote             // '"'
	classColon             // ":"
	classComma             // ","
	classSpace             // space, tab, LF, CR
	classPrimitive         // may begin a number or constant
)

var classes = func() (c [256]byteClass) {
	c['{'], c['['] = classOpen, classOpen
	c['}'], c[']'] = classClose, classClose
	c['"'] = classQuote
	c[':'] = classColon
	c[','] = classComma
	for _, b := range []byte(" \t\n\r") {
		c[b] = classSpace
	}
	for _, b := range []byte("-0123456789tfn") {
		c[b] = classPrimitive
	}
	return
}()

// classify reports the class of b. If loose is true, every byte that can
// appear in a permissive primitive is classified as classPrimitive.
func classify(b byte, loose bool) byteClass {
	c := classes[b]
	if c == classIllegal && loose && isBare(b) {
		return classPrimitive
	}
	return c
}

func isSpace(b byte) bool { return classes[b] == classSpace }

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isStructural reports whether b is one of the bytes {}[],:" that delimit
// tokens regardless of context.
func isStructural(b byte) bool {
	switch classes[b] {
	case classOpen, classClose, classQuote, classColon, classComma:
		return true
	}
	return false
}

// isBare reports whether b may appear in an unquoted permissive primitive.
func isBare(b byte) bool { return b >= ' ' && !isSpace(b) && !isStructural(b) }

// isControl reports whether b is a control character that must be escaped
// inside a string.
func isControl(b byte) bool {
	switch b {
	case '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
