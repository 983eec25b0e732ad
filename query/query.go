// Package query implements structural queries over tokenized JSON documents.
//
// A query describes a syntactic substructure of a JSON document, such as an
// object member, array element, or a path through the document. Evaluating a
// query against a token array produced by jtok follows the parent, child, and
// sibling relations of the tokens and returns the index of the resulting
// token. No values are decoded, except object keys that contain escapes.
//
// The simplest query is for a "path", a sequence of object keys and/or array
// indices that describes a path from the root of a JSON value. For example,
// given the JSON value:
//
//	[{"a": 1, "b": 2}, {"c": {"d": true}, "e": false}]
//
// the query
//
//	query.Path(1, "c", "d")
//
// yields the token for "true".
package query

import (
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/creachadair/jtok"
	"github.com/creachadair/jtok/jpath"
	"go4.org/mem"
)

var (
	// ErrNotFound is reported when a query selects nothing.
	ErrNotFound = errors.New("not found")

	// ErrNoTokens is reported when a query is evaluated on an empty document.
	ErrNoTokens = errors.New("no tokens")
)

// Eval evaluates q on the document described by buf and toks, beginning from
// the root token, and returns the index of the first token selected. For a
// member of an object, the selected token is the value, not the key.
func Eval(buf []byte, toks []jtok.Token, q Query) (int, error) {
	out, err := Select(buf, toks, q)
	if err != nil {
		return jtok.None, err
	}
	return out[0], nil
}

// Select evaluates q on the document described by buf and toks, beginning
// from the root token, and returns the indexes of all the tokens selected in
// document order. Select reports ErrNotFound if no tokens are selected.
func Select(buf []byte, toks []jtok.Token, q Query) ([]int, error) {
	if len(toks) == 0 {
		return nil, ErrNoTokens
	}
	out, err := q.eval(&doc{buf: buf, toks: toks}, 0)
	if err != nil {
		return nil, err
	} else if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// A Query describes a traversal of a tokenized JSON document.
type Query interface {
	eval(d *doc, i int) ([]int, error)
}

// Path traverses a sequence of nested object keys or array indices from the
// root. If no keys are specified, the root is returned. Each key must be a
// string, an int, or a Query.
func Path(keys ...any) Query {
	if len(keys) == 1 {
		return pathElem(keys[0])
	}
	pq := make(Seq, 0, len(keys))
	for _, key := range keys {
		q := pathElem(key)
		if sq, ok := q.(Seq); ok {
			pq = append(pq, sq...)
		} else {
			pq = append(pq, q)
		}
	}
	return pq
}

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return objKey(t)
	case int:
		return nthQuery(t)
	case Query:
		return t
	default:
		panic("invalid path element")
	}
}

// Parse parses a path expression such as "$.store.book[0]['a b']" and
// returns an equivalent query.
//
// The query follows the usual rules for path expressions, which are more
// lenient than Path: a step that does not apply to a value, such as a
// missing key or an index out of range, selects nothing from that value
// rather than failing, and slice bounds are clamped to the array.
func Parse(expr string) (Query, error) {
	e, err := jpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("parse path: %w", err)
	}
	out := make(exprSeq, 0, len(e))
	for _, step := range e {
		q, err := fromStep(step)
		if err != nil {
			return nil, fmt.Errorf("step %v: %w", step, err)
		}
		out = append(out, q)
	}
	return out, nil
}

func fromStep(s jpath.Step) (Query, error) {
	switch s.Op {
	case jpath.Member:
		return objKey(s.Name), nil
	case jpath.Wildcard:
		return Glob(), nil
	case jpath.Recur:
		if s.Name == "*" && !s.Quoted {
			return recQuery{Glob()}, nil
		}
		return recQuery{objKey(s.Name)}, nil
	case jpath.Index:
		offsets := make([]int, len(s.Index))
		for i, v := range s.Index {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, err
			}
			offsets[i] = n
		}
		if len(offsets) == 1 {
			return nthQuery(offsets[0]), nil
		}
		u := make(union, len(offsets))
		for i, off := range offsets {
			u[i] = nthQuery(off)
		}
		return u, nil
	case jpath.Slice:
		q := sliceQuery{open: s.Hi == "", clamp: true}
		var err error
		if s.Lo != "" {
			if q.lo, err = strconv.Atoi(s.Lo); err != nil {
				return nil, err
			}
		}
		if s.Hi != "" {
			if q.hi, err = strconv.Atoi(s.Hi); err != nil {
				return nil, err
			}
		}
		return q, nil
	}
	return nil, errors.New("unsupported step")
}

// doc is a tokenized document under evaluation.
type doc struct {
	buf  []byte
	toks []jtok.Token
}

// children iterates over the direct children of token i, yielding the
// ordinal position and token index of each. It follows sibling links when
// they are present, and otherwise skips over the subtree of each child.
func (d *doc) children(i int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		n := int(d.toks[i].Size)
		c := i + 1
		for k := range n {
			if !yield(k, c) {
				return
			}
			if next := d.toks[c].Next; next != jtok.None {
				c = int(next)
			} else {
				c = d.skip(c)
			}
		}
	}
}

// skip returns the index of the first token after the subtree rooted at i.
func (d *doc) skip(i int) int {
	t := d.toks[i]
	switch {
	case t.Kind.IsKey():
		if t.Size == 0 {
			return i + 1
		}
		return d.skip(i + 1)
	case t.Kind.IsContainer():
		j := i + 1
		for j < len(d.toks) && d.toks[j].Start < t.End {
			j++
		}
		return j
	default:
		return i + 1
	}
}

// keyIs reports whether the key token at index i denotes name.
func (d *doc) keyIs(i int, name string) bool {
	t := d.toks[i]
	v := t.View(d.buf)
	if t.Kind.Base() != jtok.String || mem.IndexByte(v, '\\') < 0 {
		return v.EqualString(name)
	}
	dec, err := jtok.Unquote(d.buf, t)
	return err == nil && string(dec) == name
}

func (d *doc) want(i int, base jtok.Kind) error {
	if got := d.toks[i].Kind.Base(); got != base {
		return fmt.Errorf("got %v, want %v", got, base)
	}
	return nil
}

type objKey string

func (o objKey) eval(d *doc, i int) ([]int, error) {
	if err := d.want(i, jtok.Object); err != nil {
		return nil, err
	}
	for _, c := range d.children(i) {
		if d.keyIs(c, string(o)) && d.toks[c].Size > 0 {
			return []int{c + 1}, nil
		}
	}
	return nil, fmt.Errorf("key %q: %w", o, ErrNotFound)
}

type nthQuery int

func (nq nthQuery) eval(d *doc, i int) ([]int, error) {
	if err := d.want(i, jtok.Array); err != nil {
		return nil, err
	}
	n := int(d.toks[i].Size)
	idx := int(nq)
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return nil, fmt.Errorf("index %d out of range (0..%d): %w", nq, n, ErrNotFound)
	}
	for k, c := range d.children(i) {
		if k == idx {
			return []int{c}, nil
		}
	}
	panic("unreachable")
}

// Slice selects a slice of an array from offsets lo to hi.  The range includes
// lo but excludes hi. Negative offsets select from the end of the array.
// If hi == 0, the length of the array is used.
func Slice(lo, hi int) Query { return sliceQuery{lo: lo, hi: hi, open: hi == 0} }

type sliceQuery struct {
	lo, hi int
	open   bool // hi is the end of the array
	clamp  bool // clamp out-of-range bounds instead of failing
}

func (q sliceQuery) eval(d *doc, i int) ([]int, error) {
	if err := d.want(i, jtok.Array); err != nil {
		return nil, err
	}
	n := int(d.toks[i].Size)
	lox := q.lo
	if lox < 0 {
		lox += n
	}
	hix := n
	if !q.open {
		hix = q.hi
		if hix < 0 {
			hix += n
		}
	}
	if q.clamp {
		lox = min(max(lox, 0), n)
		hix = min(max(hix, lox), n)
	}
	if lox < 0 || lox > n {
		return nil, fmt.Errorf("index %d out of range (0..%d)", q.lo, n)
	} else if hix < 0 || hix > n {
		return nil, fmt.Errorf("index %d out of range (0..%d)", q.hi, n)
	} else if lox > hix {
		return nil, fmt.Errorf("index start %d > end %d", q.lo, q.hi)
	}
	var out []int
	for k, c := range d.children(i) {
		if k >= hix {
			break
		} else if k >= lox {
			out = append(out, c)
		}
	}
	return out, nil
}

// Pick selects the designated offsets from an array, in the order given.
// Negative offsets select from the end of the input array.
func Pick(offsets ...int) Query { return pickQuery(offsets) }

type pickQuery []int

func (q pickQuery) eval(d *doc, i int) ([]int, error) {
	if err := d.want(i, jtok.Array); err != nil {
		return nil, err
	}
	var out []int
	for _, off := range q {
		r, err := nthQuery(off).eval(d, i)
		if err != nil {
			return nil, err
		}
		out = append(out, r...)
	}
	return out, nil
}

// Seq is a sequential composition of queries. An empty sequence selects the
// root; otherwise, each query is applied to each of the tokens selected by
// the previous query in the sequence.
type Seq []Query

func (q Seq) eval(d *doc, i int) ([]int, error) {
	cur := []int{i}
	for _, sq := range q {
		var next []int
		for _, j := range cur {
			r, err := sq.eval(d, j)
			if err != nil {
				return nil, err
			}
			next = append(next, r...)
		}
		cur = next
	}
	return cur, nil
}

// exprSeq is the sequential composition of the steps of a path expression.
// Unlike Seq, a step that fails on a value contributes nothing for that
// value, and the sequence as a whole does not fail.
type exprSeq []Query

func (q exprSeq) eval(d *doc, i int) ([]int, error) {
	cur := []int{i}
	for _, sq := range q {
		var next []int
		for _, j := range cur {
			if r, err := sq.eval(d, j); err == nil {
				next = append(next, r...)
			}
		}
		cur = next
	}
	return cur, nil
}

// union concatenates the selections of each of its queries that succeeds.
type union []Query

func (q union) eval(d *doc, i int) ([]int, error) {
	var out []int
	for _, sq := range q {
		if r, err := sq.eval(d, i); err == nil {
			out = append(out, r...)
		}
	}
	return out, nil
}

// Alt is a query that selects among a sequence of alternatives.  The result of
// the first alternative that does not report an error is returned. If there
// are no alternatives, the query fails on all inputs.
type Alt []Query

func (q Alt) eval(d *doc, i int) ([]int, error) {
	for _, alt := range q {
		if r, err := alt.eval(d, i); err == nil {
			return r, nil
		}
	}
	return nil, errors.New("no matching alternatives")
}

// Recur applies a query to its input and each of its recursive descendants,
// and selects all the resulting tokens. Keys are not visited, but their
// values are. The arguments have the same constraints as Path.
func Recur(keys ...any) Query { return recQuery{Path(keys...)} }

type recQuery struct{ Query }

func (q recQuery) eval(d *doc, i int) ([]int, error) {
	var out []int
	end := d.skip(i)
	for j := i; j < end; j++ {
		if d.toks[j].Kind.IsKey() {
			continue
		}
		if r, err := q.Query.eval(d, j); err == nil {
			out = append(out, r...)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no matches: %w", ErrNotFound)
	}
	return out, nil
}

// Each applies a query to each element of an array and selects all the
// resulting tokens. It fails if the input is not an array. The arguments have
// the same constraints as Path.
func Each(keys ...any) Query { return eachQuery{Path(keys...)} }

type eachQuery struct{ Query }

func (q eachQuery) eval(d *doc, i int) ([]int, error) {
	if err := d.want(i, jtok.Array); err != nil {
		return nil, err
	}
	var out []int
	for k, c := range d.children(i) {
		r, err := q.Query.eval(d, c)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", k, err)
		}
		out = append(out, r...)
	}
	return out, nil
}

// Glob selects all the values of an object, or all the elements of an array.
func Glob() Query { return globQuery{} }

type globQuery struct{}

func (globQuery) eval(d *doc, i int) ([]int, error) {
	t := d.toks[i]
	if !t.Kind.IsContainer() {
		return nil, fmt.Errorf("no matching values: %w", ErrNotFound)
	}
	out := make([]int, 0, t.Size)
	for _, c := range d.children(i) {
		if t.Kind.Has(jtok.Object) {
			c++ // the value of a member follows its key
		}
		out = append(out, c)
	}
	return out, nil
}

// Len reports the length of the value of tok in buf.
//
// For an object, the length is the number of members.
// For an array, the length is the number of elements.
// For a string, the length is the length in bytes of the decoded string.
// For null, the length is zero.
func Len(buf []byte, tok jtok.Token) (int, error) {
	switch tok.Kind.Base() {
	case jtok.Object, jtok.Array:
		return int(tok.Size), nil
	case jtok.String:
		s, err := jtok.Unquote(buf, tok)
		return len(s), err
	}
	if tok.View(buf).EqualString("null") {
		return 0, nil
	}
	return 0, fmt.Errorf("cannot take length of %v", tok.Kind.Base())
}
