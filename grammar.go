// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

import "strings"

// expect is the set of constructs that may legally follow the current
// position of the parser.
type expect uint16

const (
	expOpen      expect = 1 << iota // "{" or "["
	expString                       // a quoted string
	expPrimitive                    // a number or constant
	expClose                        // "}" or "]"
	expColon                        // ":"
	expComma                        // ","
	expKey                          // the next string or primitive is a key
	expInObject                     // the innermost container is an object
	expContinue                     // the last primitive may be extended
	expMember                       // the value belongs to a root-level key

	expValue = expOpen | expString | expPrimitive
)

// Grammar states. Each names the expected-next set for one position in the
// JSON grammar.
const (
	stateDone          expect = 0
	stateRoot                 = expValue
	stateObjectOpen           = expString | expClose | expKey | expInObject
	stateAfterKey             = expColon | expInObject
	stateAfterColon           = expValue | expInObject
	stateAfterObjValue        = expComma | expClose | expInObject
	stateArrayOpen            = expValue | expClose
	stateAfterArrValue        = expComma | expClose
	stateAfterClose           = expComma | expClose
	stateCommaInObject        = expString | expKey | expInObject
	stateCommaInArray         = expValue
	stateRootNext             = expValue | expComma
	stateRootNextKey          = stateRootNext | expColon
	stateAfterColonRoot       = expValue | expMember
)

var expStr = [...]string{
	"open", "string", "primitive", "close", "colon", "comma", "key", "in-object", "continue", "member",
}

func (e expect) String() string {
	if e == stateDone {
		return "done"
	}
	var parts []string
	for i, s := range expStr {
		if e&(1<<i) != 0 {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "|")
}

func (e expect) allows(m expect) bool { return e&m != 0 }

// expectKey reports whether a string or primitive accepted in state e is an
// object key.
func (e expect) expectKey() bool { return e&expKey != 0 }

// permissiveKeys widens the key positions of e to admit primitives.
func (e expect) permissiveKeys() expect {
	if e.expectKey() {
		return e | expPrimitive
	}
	return e
}

// afterOpen returns the state following an open bracket of the given kind.
func afterOpen(kind Kind) expect {
	if kind == Object {
		return stateObjectOpen
	}
	return stateArrayOpen
}

// afterComma returns the state following a comma inside a container of the
// given kind.
func afterComma(inObject bool) expect {
	if inObject {
		return stateCommaInObject
	}
	return stateCommaInArray
}

// afterScalar returns the state following a string or primitive accepted in
// state e at the given nesting depth.
func (p *Parser) afterScalar(e expect) expect {
	switch {
	case e.expectKey():
		return stateAfterKey
	case p.depth == 0:
		return p.rootNext(e&expMember == 0)
	case e&expInObject != 0:
		return stateAfterObjValue
	default:
		return stateAfterArrValue
	}
}

// rootNext returns the state following a complete top-level value. The flag
// reports whether the value may yet turn out to be a key.
func (p *Parser) rootNext(maybeKey bool) expect {
	if !p.opts.MultipleValues {
		return stateDone
	}
	if maybeKey && p.opts.PermissiveKeys {
		return stateRootNextKey
	}
	return stateRootNext
}

// afterClose returns the state following a close bracket.
func (p *Parser) afterClose() expect {
	if p.depth == 0 {
		return p.rootNext(false)
	}
	return stateAfterClose
}
