// event.go locates the next directive in the unconsumed buffer.
package mpp

import (
	"regexp"
	"strings"
)

// EventKind identifies which directive a match corresponds to.
type EventKind int

const (
	EvDefine EventKind = iota // #define NAME, starts a macro definition
	EvImport                  // #import path
	EvCall                    // #macro NAME, expands a macro
)

func (k EventKind) String() string {
	switch k {
	case EvDefine:
		return "define"
	case EvImport:
		return "import"
	case EvCall:
		return "call"
	default:
		return "unknown"
	}
}

// Event describes a directive match within the current buffer. Start and
// End delimit the matched prefix (comment opener, keyword, and captured
// name for define/call, or the whole directive for import). Multiline is
// set when the block-comment form matched, which permits argument lists
// and import paths to span lines.
type Event struct {
	Kind      EventKind
	Start     int
	End       int
	Name      string // define and call directives
	Path      string // import directives
	Multiline bool
}

// pattern is one surface form of one directive.
type pattern struct {
	kind      EventKind
	multiline bool
	re        *regexp.Regexp
}

// matcher holds the closed pattern set for one scan. Each directive is
// recognized in a line-comment form (terminated by end of line) and a
// block-comment form (terminated by the closing block token). The set is
// built once per scanner from the configured line-comment token; the
// block pair is fixed.
type matcher struct {
	patterns []pattern
	endLine  *regexp.Regexp
	endBlock *regexp.Regexp
}

const (
	blockOpen  = "/*"
	blockClose = "*/"
	ident      = `[A-Za-z_][A-Za-z0-9_]*`
)

func newMatcher(lineComment string) *matcher {
	lc := regexp.QuoteMeta(lineComment)
	bo := regexp.QuoteMeta(blockOpen)
	bc := regexp.QuoteMeta(blockClose)

	return &matcher{
		patterns: []pattern{
			{EvDefine, false, regexp.MustCompile(lc + `[ \t]*#define[ \t]+(` + ident + `)`)},
			{EvDefine, true, regexp.MustCompile(bo + `\s*#define\s+(` + ident + `)`)},
			{EvImport, false, regexp.MustCompile(lc + `[ \t]*#import[ \t]+([^\n]*)\n?`)},
			{EvImport, true, regexp.MustCompile(bo + `\s*#import\s+([^\n]*?)\s*` + bc)},
			{EvCall, false, regexp.MustCompile(lc + `[ \t]*#macro[ \t]+(` + ident + `)`)},
			{EvCall, true, regexp.MustCompile(bo + `\s*#macro\s+(` + ident + `)`)},
		},
		endLine:  regexp.MustCompile(lc + `[ \t]*#end[^\n]*\n?`),
		endBlock: regexp.MustCompile(bo + `\s*#end\s*` + bc),
	}
}

// next returns the earliest directive match in buf, or (zero, false) when
// no pattern matches and the remainder should be flushed verbatim. Ties
// cannot occur between distinct patterns since their prefixes differ; the
// earliest start offset wins. Pure lookup, no side effects.
func (m *matcher) next(buf string) (Event, bool) {
	best := Event{Start: -1}
	for _, p := range m.patterns {
		idx := p.re.FindStringSubmatchIndex(buf)
		if idx == nil {
			continue
		}
		if best.Start >= 0 && idx[0] >= best.Start {
			continue
		}
		ev := Event{
			Kind:      p.kind,
			Start:     idx[0],
			End:       idx[1],
			Multiline: p.multiline,
		}
		capture := buf[idx[2]:idx[3]]
		if p.kind == EvImport {
			ev.Path = strings.TrimSpace(capture)
		} else {
			ev.Name = capture
		}
		best = ev
	}
	if best.Start < 0 {
		return Event{}, false
	}
	return best, true
}

// findEnd locates the earliest definition end-marker of the given comment
// style. A block-style header requires the block-style marker and a
// line-style header its line-style form.
func (m *matcher) findEnd(buf string, multiline bool) (start, end int, ok bool) {
	re := m.endLine
	if multiline {
		re = m.endBlock
	}
	idx := re.FindStringIndex(buf)
	if idx == nil {
		return 0, 0, false
	}
	return idx[0], idx[1], true
}
