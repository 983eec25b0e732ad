package load_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/jtok"
	"github.com/creachadair/jtok/load"
	"github.com/google/go-cmp/cmp"
)

const jwccInput = `{
  // The list of values.
  "a": [1, 2,],  /* trailing */
}
`

func kinds(doc *load.Document) []jtok.Kind {
	var out []jtok.Kind
	for _, t := range doc.Tokens {
		out = append(out, t.Kind.Base())
	}
	return out
}

func TestReader(t *testing.T) {
	doc, err := load.Reader(strings.NewReader(`{"a": [1, 2]}`), load.Config{Options: jtok.Strict()})
	if err != nil {
		t.Fatalf("Reader: unexpected error: %v", err)
	}
	want := []jtok.Kind{jtok.Object, jtok.String, jtok.Array, jtok.Primitive, jtok.Primitive}
	if diff := cmp.Diff(want, kinds(doc)); diff != "" {
		t.Errorf("Kinds (-want, +got):\n%s", diff)
	}
	if got := doc.Root(); got.Size != 1 || got.Kind.Base() != jtok.Object {
		t.Errorf("Root: got %v, want object of size 1", got)
	}
}

func TestJWCC(t *testing.T) {
	input := []byte(jwccInput)
	doc, err := load.Bytes(input, load.Config{Options: jtok.Strict(), JWCC: true})
	if err != nil {
		t.Fatalf("Bytes: unexpected error: %v", err)
	}
	if string(input) != jwccInput {
		t.Errorf("Bytes modified its input: %q", input)
	}
	want := []jtok.Kind{jtok.Object, jtok.String, jtok.Array, jtok.Primitive, jtok.Primitive}
	if diff := cmp.Diff(want, kinds(doc)); diff != "" {
		t.Errorf("Kinds (-want, +got):\n%s", diff)
	}

	// Comments and commas are blanked, so offsets match the original text.
	key := doc.Tokens[1]
	if got, want := int(key.Start), strings.Index(jwccInput, `"a"`)+1; got != want {
		t.Errorf("Key offset: got %d, want %d", got, want)
	}
	if got := string(doc.Tokens[0].Text(doc.Data)); len(got) != len(strings.TrimSpace(jwccInput)) {
		t.Errorf("Object text: got %q", got)
	}

	// Without JWCC the comments are not valid.
	if _, err := load.Bytes(input, load.Config{Options: jtok.Strict()}); !errors.Is(err, jtok.ErrInvalid) {
		t.Errorf("Bytes (plain): got %v, want %v", err, jtok.ErrInvalid)
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.jwcc")
	if err := os.WriteFile(path, []byte(jwccInput), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	doc, err := load.File(path, load.Config{Options: jtok.Strict(), JWCC: true})
	if err != nil {
		t.Fatalf("File: unexpected error: %v", err)
	}
	if got := len(doc.Tokens); got != 5 {
		t.Errorf("File: got %d tokens, want 5", got)
	}

	if _, err := load.File(filepath.Join(dir, "nonesuch"), load.Config{}); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("File (missing): got %v, want %v", err, fs.ErrNotExist)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		input string
		cfg   load.Config
		want  error
	}{
		{"", load.Config{}, jtok.ErrInvalid},
		{`{"a": 1`, load.Config{}, jtok.ErrBrackets},
		{`[1, 2]]`, load.Config{}, jtok.ErrInvalid},
		{`{"a": /* open`, load.Config{JWCC: true}, nil},
	}
	for _, test := range tests {
		doc, err := load.Reader(bytes.NewReader([]byte(test.input)), test.cfg)
		if err == nil {
			t.Errorf("Reader %q: got %d tokens, want error", test.input, len(doc.Tokens))
		} else if test.want != nil && !errors.Is(err, test.want) {
			t.Errorf("Reader %q: got %v, want %v", test.input, err, test.want)
		}
	}
}
