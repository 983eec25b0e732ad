// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok_test

import (
	"testing"

	"github.com/creachadair/jtok"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind jtok.Kind
		want string
	}{
		{jtok.Undefined, "undefined"},
		{jtok.Object | jtok.Value, "object|value"},
		{jtok.String | jtok.Key, "string|key"},
		{jtok.Primitive | jtok.Value | jtok.Integer | jtok.Signed, "primitive|value|integer|signed"},
		{1 << 14, "invalid"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind(%d).String(): got %q, want %q", test.kind, got, test.want)
		}
	}
}

func TestKindMethods(t *testing.T) {
	k := jtok.Primitive | jtok.Key | jtok.Decimal
	if !k.Has(jtok.Primitive | jtok.Key) {
		t.Errorf("%v.Has(primitive|key): got false, want true", k)
	}
	if k.Has(jtok.Integer) || k.Has(jtok.Undefined) {
		t.Errorf("%v.Has: reported a flag that is not set", k)
	}
	if got := k.Base(); got != jtok.Primitive {
		t.Errorf("%v.Base(): got %v, want primitive", k, got)
	}
	if k.IsContainer() || !k.IsKey() {
		t.Errorf("%v: IsContainer=%v IsKey=%v", k, k.IsContainer(), k.IsKey())
	}
	if a := jtok.Array | jtok.Value; !a.IsContainer() || a.IsKey() {
		t.Errorf("%v: IsContainer=%v IsKey=%v", a, a.IsContainer(), a.IsKey())
	}
}

func TestTokenText(t *testing.T) {
	buf := []byte(`{"name": "value", "n": -1.5}`)
	toks, err := jtok.Tokenize(buf, jtok.Strict())
	if err != nil {
		t.Fatalf("Tokenize: unexpected error: %v", err)
	}
	want := []string{`{"name": "value", "n": -1.5}`, "name", "value", "n", "-1.5"}
	for i, tok := range toks {
		if got := string(tok.Text(buf)); got != want[i] {
			t.Errorf("Token %d text: got %q, want %q", i, got, want[i])
		}
		if got := tok.View(buf).StringCopy(); got != want[i] {
			t.Errorf("Token %d view: got %q, want %q", i, got, want[i])
		}
		if tok.Len() != len(want[i]) {
			t.Errorf("Token %d len: got %d, want %d", i, tok.Len(), len(want[i]))
		}
	}
	if got, want := toks[2].Span().String(), "10-15"; got != want {
		t.Errorf("Span: got %q, want %q", got, want)
	}

	var open jtok.Token
	open.Start, open.End = 5, jtok.None
	if open.Len() != 0 || open.Text(buf) != nil {
		t.Errorf("Open token: got len %d, text %q", open.Len(), open.Text(buf))
	}
}

func TestLocate(t *testing.T) {
	buf := []byte("ab\ncd\n\nef")
	tests := []struct {
		offset int
		want   string
	}{
		{-1, "1:0"},
		{0, "1:0"},
		{2, "1:2"},
		{3, "2:0"},
		{4, "2:1"},
		{6, "3:0"},
		{7, "4:0"},
		{100, "4:2"},
	}
	for _, test := range tests {
		if got := jtok.Locate(buf, test.offset).String(); got != test.want {
			t.Errorf("Locate(%d): got %q, want %q", test.offset, got, test.want)
		}
	}
}
