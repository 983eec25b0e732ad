// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

import "strings"

// Kind is a set of flags describing a token. Every token has exactly one base
// category (Object, Array, String, or Primitive), a positional tag (Key or
// Value), and primitives carry additional flags describing their form.
type Kind uint16

// Constants defining the valid Kind flags.
const (
	Object    Kind = 1 << iota // object "{ ... }"
	Array                      // array "[ ... ]"
	String                     // quoted string
	Primitive                  // number or constant
	Key                        // object member key
	Value                      // value (not a key)
	Literal                    // constant: true, false, null
	Integer                    // number with no fraction or exponent
	Signed                     // number with a leading minus sign
	Decimal                    // number with a fraction
	Exponent                   // number with an exponent

	// Undefined is the zero Kind, carried by unused pool slots.
	Undefined Kind = 0

	baseMask = Object | Array | String | Primitive
	tagMask  = Key | Value
	subMask  = Literal | Integer | Signed | Decimal | Exponent
)

var kindStr = [...]string{
	"object", "array", "string", "primitive", "key", "value",
	"literal", "integer", "signed", "decimal", "exponent",
}

// String renders k as a "|"-separated list of its flag names.
func (k Kind) String() string {
	if k == Undefined {
		return "undefined"
	}
	var parts []string
	for i, s := range kindStr {
		if k&(1<<i) != 0 {
			parts = append(parts, s)
		}
	}
	if rest := k &^ (1<<len(kindStr) - 1); rest != 0 {
		parts = append(parts, "invalid")
	}
	return strings.Join(parts, "|")
}

// Has reports whether k includes all the flags in m.
func (k Kind) Has(m Kind) bool { return m != 0 && k&m == m }

// Base returns the base category of k: Object, Array, String, Primitive, or
// Undefined.
func (k Kind) Base() Kind { return k & baseMask }

// IsContainer reports whether k is an object or an array.
func (k Kind) IsContainer() bool { return k&(Object|Array) != 0 }

// IsKey reports whether k is tagged as an object key.
func (k Kind) IsKey() bool { return k&Key != 0 }

// retag replaces the positional tag of k with t.
func (k Kind) retag(t Kind) Kind { return k&^tagMask | t }
