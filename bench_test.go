// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/jtok"
)

// benchInput constructs a document with a mix of nested values.
func benchInput(n int) []byte {
	var sb strings.Builder
	sb.WriteString(`{"items": [`)
	for i := range n {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, `{"id": %d, "name": "item \"%d\"", "price": %d.%02de-1, "tags": ["a", "b\n"], "ok": %v, "none": null}`,
			i, i, i, i%100, i%2 == 0)
	}
	sb.WriteString(`], "count": `)
	fmt.Fprint(&sb, n)
	sb.WriteString(`}`)
	return []byte(sb.String())
}

func BenchmarkParse(b *testing.B) {
	input := benchInput(1000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for b.Loop() {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Count", func(b *testing.B) {
		p := jtok.New(jtok.Options{})
		for b.Loop() {
			p.Reset()
			if _, err := p.Count(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Tokenize", func(b *testing.B) {
		for b.Loop() {
			if _, err := jtok.Tokenize(input, jtok.Strict()); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Reuse", func(b *testing.B) {
		p := jtok.New(jtok.Strict())
		n, err := p.Count(input)
		if err != nil {
			b.Fatalf("Count: %v", err)
		}
		pool := make([]jtok.Token, n)
		for b.Loop() {
			p.Reset()
			if _, err := p.Parse(input, pool); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

// wideInput constructs an array of n elements, half of which are objects
// with n/100 members.
func wideInput(n int) []byte {
	var sb strings.Builder
	sb.WriteString("[")
	for i := range n {
		if i > 0 {
			sb.WriteString(",")
		}
		if i == n/2 {
			sb.WriteString("{")
			for j := range n / 100 {
				if j > 0 {
					sb.WriteString(",")
				}
				fmt.Fprintf(&sb, `"k%d":%d`, j, j)
			}
			sb.WriteString("}")
		} else {
			sb.WriteString("1")
		}
	}
	sb.WriteString("]")
	return []byte(sb.String())
}

func BenchmarkWide(b *testing.B) {
	for _, n := range []int{1000, 10000, 100000} {
		input := wideInput(n)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			for b.Loop() {
				if _, err := jtok.Tokenize(input, jtok.Strict()); err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		})
	}
}
