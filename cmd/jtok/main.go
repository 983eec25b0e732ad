// Program jtok tokenizes JSON documents and reports on their structure.
//
// Usage:
//
//	jtok [flags] count FILE...
//	jtok [flags] dump FILE
//	jtok [flags] get FILE PATH
//
// A FILE of "-" denotes standard input. PATH is a path expression such as
// "$.store.book[0].title".
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"

	"github.com/creachadair/jtok"
	"github.com/creachadair/jtok/dump"
	"github.com/creachadair/jtok/load"
	"github.com/creachadair/jtok/query"
	"golang.org/x/sync/errgroup"
)

const usage = `Usage: jtok [flags] <command> args...

Commands:
  count FILE...    print the number of tokens in each file
  dump FILE        print a description of each token
  get FILE PATH    print the values selected by a path expression

Flags:`

// exitResult is the outcome of a command.
type exitResult struct {
	code int
	msg  string
}

func failf(code int, msg string, args ...any) *exitResult {
	return &exitResult{code: code, msg: fmt.Sprintf(msg, args...)}
}

// env carries the settings and I/O for a command.
type env struct {
	cfg    load.Config
	yaml   bool
	jobs   int
	stdin  io.Reader
	stdout io.Writer
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if res := runCommand(args, stdin, stdout, stderr); res != nil {
		if res.msg != "" {
			fmt.Fprintln(stderr, res.msg)
		}
		return res.code
	}
	return 0
}

func runCommand(args []string, stdin io.Reader, stdout, stderr io.Writer) *exitResult {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	permissive := fs.Bool("permissive", false, "Accept the permissive grammar")
	jwcc := fs.Bool("jwcc", false, "Accept comments and trailing commas")
	asYAML := fs.Bool("yaml", false, "Write dump output as YAML")
	jobs := fs.Int("j", runtime.NumCPU(), "Maximum number of files to process concurrently")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &exitResult{code: 2}
	}
	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return &exitResult{code: 2}
	} else if *jobs < 1 {
		return failf(2, "invalid -j %d: must be positive", *jobs)
	}

	e := &env{
		cfg:    load.Config{Options: jtok.Strict(), JWCC: *jwcc},
		yaml:   *asYAML,
		jobs:   *jobs,
		stdin:  stdin,
		stdout: stdout,
	}
	if *permissive {
		e.cfg.Options = jtok.Permissive()
	}

	cmd, cargs := rest[0], rest[1:]
	switch cmd {
	case "count":
		if len(cargs) == 0 {
			return failf(2, "usage: count FILE...")
		}
		return e.count(cargs)
	case "dump":
		if len(cargs) != 1 {
			return failf(2, "usage: dump FILE")
		}
		return e.dump(cargs[0])
	case "get":
		if len(cargs) != 2 {
			return failf(2, "usage: get FILE PATH")
		}
		return e.get(cargs[0], cargs[1])
	default:
		return failf(2, "unknown command %q", cmd)
	}
}

func (e *env) count(paths []string) *exitResult {
	counts := make([]int, len(paths))
	errs := make([]error, len(paths))

	// Standard input can be read only once, so read it before starting the
	// workers and share it among all the "-" arguments.
	var stdin []byte
	var stdinErr error
	if slices.Contains(paths, "-") {
		stdin, stdinErr = io.ReadAll(e.stdin)
	}

	var g errgroup.Group
	g.SetLimit(e.jobs)
	for i, path := range paths {
		g.Go(func() error {
			var data []byte
			var err error
			if path == "-" {
				data, err = stdin, stdinErr
			} else {
				data, err = os.ReadFile(path)
			}
			if err != nil {
				errs[i] = err
				return nil
			}
			doc, err := e.parse(path, data)
			if err != nil {
				errs[i] = err
			} else {
				counts[i] = len(doc.Tokens)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return failf(1, "count: %v", err)
	}

	var failed int
	for i, path := range paths {
		if errs[i] != nil {
			failed++
			fmt.Fprintf(e.stdout, "-\t%s\t%v\n", path, errs[i])
		} else {
			fmt.Fprintf(e.stdout, "%d\t%s\n", counts[i], path)
		}
	}
	if failed > 0 {
		return failf(1, "%d of %d files failed", failed, len(paths))
	}
	return nil
}

func (e *env) dump(path string) *exitResult {
	doc, err := e.load(path)
	if err != nil {
		return failf(1, "%v", err)
	}
	render := dump.Text
	if e.yaml {
		render = dump.YAML
	}
	if err := render(e.stdout, doc.Data, doc.Tokens); err != nil {
		return failf(1, "dump: %v", err)
	}
	return nil
}

func (e *env) get(path, expr string) *exitResult {
	q, err := query.Parse(expr)
	if err != nil {
		return failf(2, "invalid path %q: %v", expr, err)
	}
	doc, err := e.load(path)
	if err != nil {
		return failf(1, "%v", err)
	}
	idx, err := query.Select(doc.Data, doc.Tokens, q)
	if err != nil {
		return failf(1, "%s: %v", expr, err)
	}
	for _, i := range idx {
		fmt.Fprintf(e.stdout, "%s\n", doc.Tokens[i].Source(doc.Data))
	}
	return nil
}

// load reads and tokenizes the named file, or stdin if path is "-".
// Syntax errors are reported with their line and column.
func (e *env) load(path string) (*load.Document, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(e.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return e.parse(path, data)
}

// parse tokenizes data read from path.
func (e *env) parse(path string, data []byte) (*load.Document, error) {
	doc, err := load.Bytes(data, e.cfg)
	if err != nil {
		var se *jtok.SyntaxError
		if errors.As(err, &se) {
			return nil, fmt.Errorf("%s:%v: %w", path, se.Location(data), se.Err)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
