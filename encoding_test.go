// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok_test

import (
	"testing"

	"github.com/creachadair/jtok"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 \ufffd"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"bad \xff byte", `"bad \ufffd byte"`},
	}
	for _, test := range tests {
		got := jtok.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		note  string
	}{
		{`""`, ``, "ok"},
		{`"ok go"`, "ok go", "ok"},
		{`"abc\ndef"`, "abc\ndef", "C escapes"},
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", "C escapes"},
		{`"a \u0026 b"`, "a & b", "short Unicode escape"},
		{`"\ud83d\ude00"`, "\U0001F600", "surrogate pair"},
		{`"\ud83d!"`, "\ufffd!", "unpaired surrogate"},
		{`"\U0001F600"`, "\U0001F600", "long Unicode escape"},
		{`"a\"b"`, `a"b`, "ok"},
		{`"a\\b\\cd"`, `a\b\cd`, "ok"},
		{`"\u0000\u01fc\uAA9c"`, "\x00\u01fc\uaa9c", "ok"},
	}

	for _, test := range tests {
		toks, err := jtok.Tokenize([]byte(test.input), jtok.Permissive())
		if err != nil {
			t.Fatalf("Tokenize %#q: unexpected error: %v", test.input, err)
		}
		got, err := jtok.Unquote([]byte(test.input), toks[0])
		if err != nil {
			t.Errorf("Unquote(%#q) [%s]: unexpected error: %v", test.input, test.note, err)
		} else if s := string(got); s != test.want {
			t.Errorf("Unquote(%#q) [%s]: got %#q, want %#q", test.input, test.note, s, test.want)
		}
	}

	t.Run("NotString", func(t *testing.T) {
		buf := []byte(`[1]`)
		toks, err := jtok.Tokenize(buf, jtok.Strict())
		if err != nil {
			t.Fatalf("Tokenize: unexpected error: %v", err)
		}
		if got, err := jtok.Unquote(buf, toks[1]); err == nil {
			t.Errorf("Unquote(1): got %#q, want error", got)
		}
	})

	t.Run("Append", func(t *testing.T) {
		buf := []byte(`"b\tc"`)
		toks, err := jtok.Tokenize(buf, jtok.Strict())
		if err != nil {
			t.Fatalf("Tokenize: unexpected error: %v", err)
		}
		got, err := jtok.AppendUnquote([]byte("a"), buf, toks[0])
		if err != nil {
			t.Fatalf("AppendUnquote: unexpected error: %v", err)
		}
		if string(got) != "ab\tc" {
			t.Errorf("AppendUnquote: got %#q, want %#q", got, "ab\tc")
		}
	})
}
