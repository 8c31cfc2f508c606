// Package main is a small command-line harness for the buffer core: it
// loads a file, applies a scripted sequence of edits and optional
// undo/redo steps, then prints the resulting text.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rtandon/corebuf/internal/engine"
)

type editSpec struct {
	start, end int
	text       string
}

type options struct {
	file    string
	edits   []editSpec
	undo    int
	redo    int
	write   bool
	tabWide int
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var e *engine.Engine
	if opts.file == "" {
		e = engine.New(engine.WithTabWidth(opts.tabWide))
	} else {
		data, rerr := os.ReadFile(opts.file)
		if rerr != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read %s: %v\n", opts.file, rerr)
			return 1
		}
		e, err = engine.LoadUTF8(string(data), engine.WithTabWidth(opts.tabWide))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load %s: %v\n", opts.file, err)
			return 1
		}
	}

	for _, ed := range opts.edits {
		if _, err := e.Replace(ed.start, ed.end, ed.text); err != nil {
			fmt.Fprintf(os.Stderr, "Error: edit [%d,%d) %q: %v\n", ed.start, ed.end, ed.text, err)
			return 1
		}
	}

	for i := 0; i < opts.undo; i++ {
		if _, err := e.Undo(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: undo: %v\n", err)
			return 1
		}
	}
	for i := 0; i < opts.redo; i++ {
		if _, err := e.Redo(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: redo: %v\n", err)
			return 1
		}
	}

	if opts.write && opts.file != "" {
		f, ferr := os.Create(opts.file)
		if ferr != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to write %s: %v\n", opts.file, ferr)
			return 1
		}
		defer f.Close()
		if err := e.SaveUTF8(f); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to write %s: %v\n", opts.file, err)
			return 1
		}
		return 0
	}

	fmt.Print(e.Text())
	return 0
}

type editFlags []string

func (f *editFlags) String() string { return strings.Join(*f, ",") }
func (f *editFlags) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func parseFlags() (options, error) {
	var opts options
	var edits editFlags

	flag.StringVar(&opts.file, "file", "", "Path to the file to load")
	flag.StringVar(&opts.file, "f", "", "Path to the file to load (shorthand)")
	flag.Var(&edits, "edit", "An edit as start:end:replacement (repeatable)")
	flag.IntVar(&opts.undo, "undo", 0, "Number of edits to undo after applying -edit flags")
	flag.IntVar(&opts.redo, "redo", 0, "Number of edits to redo after undoing")
	flag.BoolVar(&opts.write, "write", false, "Write the result back to -file instead of stdout")
	flag.BoolVar(&opts.write, "w", false, "Write the result back to -file instead of stdout (shorthand)")
	flag.IntVar(&opts.tabWide, "tab-width", engine.DefaultTabWidth, "Visual width of a tab character")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "corebuf - text buffer core harness\n\n")
		fmt.Fprintf(os.Stderr, "Usage: corebuf [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  corebuf -f notes.txt -edit 0:0:\"TODO: \"\n")
		fmt.Fprintf(os.Stderr, "  corebuf -f notes.txt -edit 5:10:replacement -undo 1\n")
	}

	flag.Parse()

	for _, raw := range edits {
		spec, err := parseEditSpec(raw)
		if err != nil {
			return options{}, fmt.Errorf("invalid -edit %q: %w", raw, err)
		}
		opts.edits = append(opts.edits, spec)
	}

	return opts, nil
}

// parseEditSpec parses "start:end:replacement" into an editSpec. The
// replacement may itself contain colons; only the first two separate
// the start and end offsets.
func parseEditSpec(raw string) (editSpec, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 {
		return editSpec{}, errors.New("expected start:end:replacement")
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return editSpec{}, fmt.Errorf("start offset: %w", err)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return editSpec{}, fmt.Errorf("end offset: %w", err)
	}
	return editSpec{start: start, end: end, text: parts[2]}, nil
}
