// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"errors"

	"github.com/creachadair/jtok/internal/escape"
	"go4.org/mem"
)

// Quote encodes src as a JSON string, adding escapes and double quotation
// marks as needed.
func Quote(src string) string { return string(escape.Quote(nil, mem.S(src))) }

// Unquote decodes the text of the string token tok from buf, replacing escape
// sequences with their unescaped equivalents. \UXXXXXXXX escapes are decoded
// as well, since the parser accepts them only when permitted.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error if tok is not a string or has an incomplete escape.
func Unquote(buf []byte, tok Token) ([]byte, error) {
	if tok.Kind.Base() != String {
		return nil, errors.New("token is not a string")
	}
	return escape.Unquote(nil, tok.View(buf), true)
}

// AppendUnquote is like Unquote, but appends the decoded text to dst.
func AppendUnquote(dst, buf []byte, tok Token) ([]byte, error) {
	if tok.Kind.Base() != String {
		return nil, errors.New("token is not a string")
	}
	return escape.Unquote(dst, tok.View(buf), true)
}
