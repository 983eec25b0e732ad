package jpath_test

import (
	"testing"

	"github.com/creachadair/jtok/jpath"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
	}{
		{"$"},
		{"$.store.book[*]..author"},
		{"$..author"},
		{"$.store.*"},
		{"$.store..price"},
		{"$..book[2]"},
		{"$..book[-1:]"},
		{"$..book[0,1]"},
		{"$..book[:2]"},
		{"$..book[1:3]"},
		{"$..*"},
		{"$['apple sauce'].pearPlum..'cherry apple'"},
		{"$[a][1:3][b]['c d e']"},
	}
	for _, test := range tests {
		e, err := jpath.Parse(test.input)
		if err != nil {
			t.Errorf("Parse %q: %v", test.input, err)
			continue
		}

		want := test.input
		if got := e.String(); got != want {
			t.Errorf("Parse %q:\n got %q\nwant %q", test.input, got, want)
		}
	}
}

func TestParseSteps(t *testing.T) {
	e, err := jpath.Parse("$.a['b c'][-1][2:][0,3]..d[*]")
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	want := jpath.Expr{
		{Op: jpath.Member, Name: "a"},
		{Op: jpath.Member, Name: "b c", Quoted: true, Bracket: true},
		{Op: jpath.Index, Index: []string{"-1"}},
		{Op: jpath.Slice, Lo: "2"},
		{Op: jpath.Index, Index: []string{"0", "3"}},
		{Op: jpath.Recur, Name: "d"},
		{Op: jpath.Wildcard, Bracket: true},
	}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Errorf("Steps (-want, +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"a.b",
		"$.",
		"$..",
		"$[",
		"$[1",
		"$['unterminated]",
		"$.a b",
		"$..book[?(@.isbn)]",
		"$..book[(@.length-1)]",
	}
	for _, input := range tests {
		if e, err := jpath.Parse(input); err == nil {
			t.Errorf("Parse %q: got %v, want error", input, e)
		}
	}
}
