// Package dump renders tokenized JSON documents in human-readable forms,
// for debugging and inspection.
package dump

import (
	"errors"
	"fmt"
	"io"

	"github.com/creachadair/jtok"
	"github.com/goccy/go-yaml"
)

// maxExcerpt is the longest excerpt of source text included in a record.
const maxExcerpt = 40

// ErrEmpty is reported when there are no tokens to render.
var ErrEmpty = errors.New("no tokens")

// A Record is the description of a single token.
type Record struct {
	Index   int    `yaml:"index"`
	Type    string `yaml:"type"`
	Kind    string `yaml:"kind"`
	Start   int    `yaml:"start"`
	End     int    `yaml:"end"`
	Len     int    `yaml:"len"`
	Size    int    `yaml:"size"`
	Parent  int    `yaml:"parent"`
	Sibling int    `yaml:"sibling"`
	Tag     string `yaml:"tag,omitempty"`
	Text    string `yaml:"text"`
}

// Records returns a record for each of the tokens in toks, whose source text
// is in buf.
func Records(buf []byte, toks []jtok.Token) []Record {
	out := make([]Record, len(toks))
	for i, t := range toks {
		out[i] = Record{
			Index:   i,
			Type:    t.Kind.Base().String(),
			Kind:    t.Kind.String(),
			Start:   int(t.Start),
			End:     int(t.End),
			Len:     t.Len(),
			Size:    int(t.Size),
			Parent:  int(t.Parent),
			Sibling: int(t.Next),
			Tag:     tag(t.Kind),
			Text:    excerpt(buf, t),
		}
	}
	return out
}

// Text writes one line to w for each token in toks.
func Text(w io.Writer, buf []byte, toks []jtok.Token) error {
	if len(toks) == 0 {
		return ErrEmpty
	}
	for _, r := range Records(buf, toks) {
		if _, err := fmt.Fprintf(w,
			"%3d  %-9s  start: %4d  end: %4d  len: %4d  size: %2d  parent: %3d  sibling: %3d  %-3s  %s\n",
			r.Index, r.Type, r.Start, r.End, r.Len, r.Size, r.Parent, r.Sibling, r.Tag, r.Text,
		); err != nil {
			return err
		}
	}
	return nil
}

// YAML writes the records for toks to w as a YAML sequence.
func YAML(w io.Writer, buf []byte, toks []jtok.Token) error {
	if len(toks) == 0 {
		return ErrEmpty
	}
	data, err := yaml.Marshal(Records(buf, toks))
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func tag(k jtok.Kind) string {
	switch {
	case k.Has(jtok.Key):
		return "key"
	case k.Has(jtok.Value):
		return "val"
	}
	return ""
}

// excerpt returns a short rendering of the source of t. Containers are shown
// by their opening bracket only.
func excerpt(buf []byte, t jtok.Token) string {
	switch t.Kind.Base() {
	case jtok.Object:
		return "{"
	case jtok.Array:
		return "["
	}
	src := t.Source(buf)
	if len(src) > maxExcerpt {
		return string(src[:maxExcerpt]) + "..."
	}
	return string(src)
}
