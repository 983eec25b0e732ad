// Package load reads and tokenizes JSON documents from files and readers.
package load

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jtok"
	"github.com/tailscale/hujson"
)

// Config controls how input is loaded.
type Config struct {
	// Options are the parser options used to tokenize the input.
	Options jtok.Options

	// If true, the input is JWCC (JSON with commas and comments). Comments
	// and trailing commas are replaced with spaces before tokenizing, so
	// token offsets refer to the original text.
	JWCC bool
}

// A Document is a tokenized JSON document.
type Document struct {
	Data   []byte       // the source text
	Tokens []jtok.Token // the tokens of Data
}

// Root returns the first token of d.
func (d *Document) Root() jtok.Token { return d.Tokens[0] }

// File reads and tokenizes the contents of the named file.
func File(path string, cfg Config) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := parse(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Reader reads and tokenizes the contents of r.
func Reader(r io.Reader, cfg Config) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return parse(data, cfg)
}

// Bytes tokenizes data. If cfg.JWCC is set, data is not modified; the
// standardized text is a copy.
func Bytes(data []byte, cfg Config) (*Document, error) {
	if cfg.JWCC {
		data = bytes.Clone(data)
	}
	return parse(data, cfg)
}

// parse tokenizes data, which it may modify in place.
func parse(data []byte, cfg Config) (*Document, error) {
	if cfg.JWCC {
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("standardize: %w", err)
		}
		data = std
	}
	toks, err := jtok.Tokenize(data, cfg.Options)
	if err != nil {
		return nil, err
	}
	return &Document{Data: data, Tokens: toks}, nil
}
