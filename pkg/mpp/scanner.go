// Package mpp implements a language-agnostic macro preprocessor. It
// scans source text for comment-embedded directives (#define/#end,
// #import, #macro) and rewrites them into expanded output, flushing all
// other text verbatim. The tool is purposely unaware of the host
// language's token boundaries: substitution is literal text replacement.
package mpp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultLineComment introduces line-form directives unless overridden.
const DefaultLineComment = "//"

// Options configures a Scanner.
type Options struct {
	LineComment string // line-comment token, default "//"
}

// Scanner drives one preprocessing pass. Output is written incrementally
// to out in lexical order; redefinition warnings go to diag. Imports
// recurse synchronously and share the same out and diag sinks, so the
// emitted text matches the depth-first traversal order exactly.
type Scanner struct {
	lineComment string
	out         io.Writer
	diag        io.Writer
	macros      *Table
	match       *matcher
}

// NewScanner creates a scanner writing expanded output to out and
// diagnostics to diag.
func NewScanner(out, diag io.Writer, opts Options) *Scanner {
	lc := opts.LineComment
	if lc == "" {
		lc = DefaultLineComment
	}
	return &Scanner{
		lineComment: lc,
		out:         out,
		diag:        diag,
		macros:      NewTable(),
		match:       newMatcher(lc),
	}
}

// Macros returns the scanner's macro table. Useful for preloading macro
// library files before the main scan.
func (s *Scanner) Macros() *Table {
	return s.macros
}

// ProcessFile scans the named file. Relative #import paths inside it
// resolve against its directory.
func (s *Scanner) ProcessFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return s.process(string(content), path)
}

// Process scans source text under the given file identifier. The
// identifier appears in diagnostics and anchors relative import
// resolution; a path-less identifier resolves imports against the
// working directory.
func (s *Scanner) Process(input, file string) error {
	return s.process(input, file)
}

// process is the scan loop: find the next directive, flush the text
// before it, dispatch, repeat until the buffer is exhausted. This is the
// only place the cursor advances and the only decision point between
// emitting text and capturing it into the macro table.
func (s *Scanner) process(input, file string) error {
	cur := newCursor(input, file)
	for {
		ev, ok := s.match.next(cur.rest)
		if !ok {
			_, err := io.WriteString(s.out, cur.take(len(cur.rest)))
			return err
		}
		if _, err := io.WriteString(s.out, cur.take(ev.Start)); err != nil {
			return err
		}
		evLoc := cur.loc
		cur.take(ev.End - ev.Start)

		var err error
		switch ev.Kind {
		case EvDefine:
			err = s.handleDefine(cur, ev, evLoc)
		case EvCall:
			err = s.handleCall(cur, ev, evLoc)
		case EvImport:
			err = s.handleImport(cur, ev, evLoc)
		}
		if err != nil {
			return err
		}
	}
}

// handleDefine captures a macro definition: parameter list, then the raw
// body up to the end marker matching the header's comment style.
func (s *Scanner) handleDefine(cur *cursor, ev Event, evLoc Location) error {
	rawParams, consumed, err := parseArgs(cur.rest, ev.Multiline)
	if err != nil {
		return syntaxErrAt(cur, err)
	}
	cur.take(consumed)

	start, end, ok := s.match.findEnd(cur.rest, ev.Multiline)
	if !ok {
		return &UnterminatedDefinitionError{Name: ev.Name, Start: evLoc}
	}
	body := cur.take(start)
	cur.take(end - start)

	params := make([]string, len(rawParams))
	for i, p := range rawParams {
		params[i] = strings.TrimSpace(p)
	}
	m := &Macro{Name: ev.Name, Params: params, Body: body, DefinedAt: evLoc}
	if old := s.macros.Define(m); old != nil {
		s.warnRedefined(old, m)
	}
	return nil
}

// handleCall expands a macro in place of the call directive.
func (s *Scanner) handleCall(cur *cursor, ev Event, evLoc Location) error {
	m := s.macros.Lookup(ev.Name)
	if m == nil {
		return &UndefinedMacroError{Name: ev.Name, Loc: evLoc}
	}
	args, consumed, err := parseArgs(cur.rest, ev.Multiline)
	if err != nil {
		return syntaxErrAt(cur, err)
	}
	cur.take(consumed)

	text, err := m.Run(args)
	if err != nil {
		var am *ArityMismatchError
		if errors.As(err, &am) {
			am.Loc = evLoc
		}
		return err
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, werr := io.WriteString(s.out, text)
	return werr
}

func (s *Scanner) warnRedefined(old, m *Macro) {
	fmt.Fprintf(s.diag, "warning: macro %s redefined at %s (previous definition at %s)\n",
		m.Name, m.DefinedAt, old.DefinedAt)
}

// syntaxErrAt converts an argument-list parse error, which carries only a
// byte offset, into a SyntaxError with file/line context.
func syntaxErrAt(cur *cursor, err error) error {
	var ae *argError
	if errors.As(err, &ae) {
		return &SyntaxError{Loc: cur.locAt(ae.off), Msg: ae.msg}
	}
	return err
}
