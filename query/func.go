package query

import (
	"fmt"

	"github.com/creachadair/jtok"
)

// A Selection selects the elements of its input array for which the function
// returns true. The function is given the document and the index of an
// element token.
type Selection func(buf []byte, toks []jtok.Token, i int) bool

func (q Selection) eval(d *doc, i int) ([]int, error) {
	if err := d.want(i, jtok.Array); err != nil {
		return nil, err
	}
	var out []int
	for _, c := range d.children(i) {
		if q(d.buf, d.toks, c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Exists returns a selection that reports true if its argument satisfies the
// specified query. The arguments have the same constraints as Path.
func Exists(keys ...any) Selection {
	q := Path(keys...)
	return func(buf []byte, toks []jtok.Token, i int) bool {
		_, err := q.eval(&doc{buf: buf, toks: toks}, i)
		return err == nil
	}
}

// Is returns a selection that reports true if its argument has all the kind
// flags in k.
func Is(k jtok.Kind) Selection {
	return func(_ []byte, toks []jtok.Token, i int) bool { return toks[i].Kind.Has(k) }
}

// IsNot returns a selection that reports true if its argument lacks any of
// the kind flags in k.
func IsNot(k jtok.Kind) Selection {
	return func(_ []byte, toks []jtok.Token, i int) bool { return !toks[i].Kind.Has(k) }
}

// Text returns a selection that reports true if the source text of its
// argument equals s. String arguments are compared after decoding escapes.
func Text(s string) Selection {
	return func(buf []byte, toks []jtok.Token, i int) bool {
		t := toks[i]
		if t.Kind.Base() == jtok.String {
			dec, err := jtok.Unquote(buf, t)
			return err == nil && string(dec) == s
		}
		return t.View(buf).EqualString(s)
	}
}

// MustSelect is like Select, but panics if the query fails.
func MustSelect(buf []byte, toks []jtok.Token, q Query) []int {
	out, err := Select(buf, toks, q)
	if err != nil {
		panic(fmt.Sprintf("query failed: %v", err))
	}
	return out
}
