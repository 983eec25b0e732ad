package dump_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/jtok"
	"github.com/creachadair/jtok/dump"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

const input = `{"a": [1, true]}`

func tokenize(t *testing.T, s string) ([]byte, []jtok.Token) {
	t.Helper()
	buf := []byte(s)
	toks, err := jtok.Tokenize(buf, jtok.Strict())
	if err != nil {
		t.Fatalf("Tokenize %q: %v", s, err)
	}
	return buf, toks
}

func TestText(t *testing.T) {
	buf, toks := tokenize(t, input)
	var out bytes.Buffer
	if err := dump.Text(&out, buf, toks); err != nil {
		t.Fatalf("Text: unexpected error: %v", err)
	}
	want := strings.TrimPrefix(`
  0  object     start:    0  end:   16  len:   16  size:  1  parent:  -1  sibling:  -1  val  {
  1  string     start:    2  end:    3  len:    1  size:  1  parent:   0  sibling:  -1  key  "a"
  2  array      start:    6  end:   15  len:    9  size:  2  parent:   1  sibling:  -1  val  [
  3  primitive  start:    7  end:    8  len:    1  size:  0  parent:   2  sibling:   4  val  1
  4  primitive  start:   10  end:   14  len:    4  size:  0  parent:   2  sibling:  -1  val  true
`, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("Text (-want, +got):\n%s", diff)
	}
}

func TestRecords(t *testing.T) {
	long := strings.Repeat("x", 50)
	buf, toks := tokenize(t, `["`+long+`", -2.5e3, null]`)
	got := dump.Records(buf, toks)
	want := []dump.Record{
		{Index: 0, Type: "array", Kind: "array|value", Start: 0, End: 68, Len: 68,
			Size: 3, Parent: -1, Sibling: -1, Tag: "val", Text: "["},
		{Index: 1, Type: "string", Kind: "string|value", Start: 2, End: 52, Len: 50,
			Parent: 0, Sibling: 2, Tag: "val", Text: `"` + long[:39] + "..."},
		{Index: 2, Type: "primitive", Kind: "primitive|value|signed|decimal|exponent",
			Start: 55, End: 61, Len: 6, Parent: 0, Sibling: 3, Tag: "val", Text: "-2.5e3"},
		{Index: 3, Type: "primitive", Kind: "primitive|value|literal",
			Start: 63, End: 67, Len: 4, Parent: 0, Sibling: -1, Tag: "val", Text: "null"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Records (-want, +got):\n%s", diff)
	}
}

func TestYAML(t *testing.T) {
	buf, toks := tokenize(t, input)
	var out bytes.Buffer
	if err := dump.YAML(&out, buf, toks); err != nil {
		t.Fatalf("YAML: unexpected error: %v", err)
	}
	var got []dump.Record
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal YAML: %v\n%s", err, out.String())
	}
	if diff := cmp.Diff(dump.Records(buf, toks), got); diff != "" {
		t.Errorf("YAML records (-want, +got):\n%s", diff)
	}
}

func TestEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := dump.Text(&out, nil, nil); !errors.Is(err, dump.ErrEmpty) {
		t.Errorf("Text: got %v, want %v", err, dump.ErrEmpty)
	}
	if err := dump.YAML(&out, nil, nil); !errors.Is(err, dump.ErrEmpty) {
		t.Errorf("YAML: got %v, want %v", err, dump.ErrEmpty)
	}
	if out.Len() != 0 {
		t.Errorf("Output: got %q, want empty", out.String())
	}
}
