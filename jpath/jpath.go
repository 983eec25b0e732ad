// Package jpath implements a parser for a subset of JSONPath expressions that
// can be evaluated over a token array without decoding values.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

/*
Grammar:

  expr = "$" steps
 steps = step [steps]
  step = "." name
  step = ".." name
  step = "[" value "]"
  name = WORD
  name = "'" QTEXT "'"
  name = "*"
 value = name
 value = INDEX ["," INDEX ...]
 value = [INDEX] ":" [INDEX]

  WORD = RE `\w+`
 QTEXT = RE `[^']*`
 INDEX = RE `-?\d+`

Filter "?(...)" and script "(...)" steps are not supported.
*/

// An Expr is a parsed path expression.
type Expr []Step

// Parse parses s as a path expression.
func Parse(s string) (Expr, error) {
	rest, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, errors.New("missing root marker")
	}
	var out Expr
	for rest != "" {
		step, next, err := parseStep(rest)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", len(s)-len(rest), err)
		}
		out = append(out, step)
		rest = next
	}
	return out, nil
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		buf.WriteString(s.String())
	}
	return buf.String()
}

func parseStep(s string) (Step, string, error) {
	if t, ok := strings.CutPrefix(s, ".."); ok {
		name, quoted, rest, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid ..name: %w", err)
		}
		return Step{Op: Recur, Name: name, Quoted: quoted}, rest, nil
	}
	if t, ok := strings.CutPrefix(s, "."); ok {
		name, quoted, rest, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid .name: %w", err)
		}
		if name == "*" && !quoted {
			return Step{Op: Wildcard}, rest, nil
		}
		return Step{Op: Member, Name: name, Quoted: quoted}, rest, nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		step, rest, err := parseValue(t)
		if err != nil {
			return Step{}, s, err
		}
		rest, ok := strings.CutPrefix(rest, "]")
		if !ok {
			return Step{}, s, errors.New("missing close bracket")
		}
		return step, rest, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

func parseName(s string) (name string, quoted bool, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "*"); ok {
		return "*", false, t, nil
	}
	if m := wordRE.FindStringSubmatch(s); m != nil {
		return m[1], false, s[len(m[0]):], nil
	}
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return m[1], true, s[len(m[0]):], nil
	}
	return "", false, s, errors.New("invalid name")
}

func parseValue(s string) (Step, string, error) {
	if m := sliceRE.FindStringSubmatch(s); m != nil {
		return Step{Op: Slice, Lo: m[1], Hi: m[2]}, s[len(m[0]):], nil
	}
	if m := indexRE.FindStringSubmatch(s); m != nil {
		return Step{Op: Index, Index: strings.Split(m[1], ",")}, s[len(m[0]):], nil
	}
	name, quoted, rest, err := parseName(s)
	if err != nil {
		return Step{}, s, fmt.Errorf("invalid value: %q", s)
	} else if name == "*" && !quoted {
		return Step{Op: Wildcard, Bracket: true}, rest, nil
	}
	return Step{Op: Member, Name: name, Quoted: quoted, Bracket: true}, rest, nil
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^(-?\d+(?:,-?\d+)*)`)
	sliceRE = regexp.MustCompile(`^(-?\d+)?:(-?\d+)?`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
)

// An Op is a path operator.
type Op byte

const (
	Invalid  Op = iota // invalid operator
	Member             // object member lookup
	Index              // array index lookup
	Slice              // array slice
	Wildcard           // all members or elements
	Recur              // recursive descent
)

var opText = [...]string{
	Invalid:  "invalid",
	Member:   "member",
	Index:    "index",
	Slice:    "slice",
	Wildcard: "wildcard",
	Recur:    "recur",
}

func (o Op) String() string {
	if int(o) < len(opText) {
		return opText[o]
	}
	return opText[Invalid]
}

// A Step is a single step of a path expression.
type Step struct {
	Op      Op
	Name    string   // for Member and Recur; "*" for a recursive wildcard
	Quoted  bool     // the name was written in quotes
	Bracket bool     // the step was written in brackets
	Index   []string // for Index: one or more offsets
	Lo, Hi  string   // for Slice: the bounds, either of which may be empty
}

func (s Step) String() string {
	switch s.Op {
	case Member:
		if s.Bracket {
			if s.Quoted {
				return "['" + s.Name + "']"
			}
			return "[" + s.Name + "]"
		} else if s.Quoted {
			return ".'" + s.Name + "'"
		}
		return "." + s.Name
	case Recur:
		if s.Quoted {
			return "..'" + s.Name + "'"
		}
		return ".." + s.Name
	case Wildcard:
		if s.Bracket {
			return "[*]"
		}
		return ".*"
	case Index:
		return "[" + strings.Join(s.Index, ",") + "]"
	case Slice:
		return "[" + s.Lo + ":" + s.Hi + "]"
	}
	return "<invalid>"
}
