package mpp

import "testing"

func TestMatcherNext(t *testing.T) {
	m := newMatcher("//")

	tests := []struct {
		name      string
		input     string
		kind      EventKind
		start     int
		evName    string
		evPath    string
		multiline bool
	}{
		{
			name:   "line define",
			input:  "text\n//#define FOO (A)\n",
			kind:   EvDefine,
			start:  5,
			evName: "FOO",
		},
		{
			name:      "block define",
			input:     "/*#define FOO (A)*/",
			kind:      EvDefine,
			start:     0,
			evName:    "FOO",
			multiline: true,
		},
		{
			name:   "line call",
			input:  "x // #macro SUM (int)\n",
			kind:   EvCall,
			start:  2,
			evName: "SUM",
		},
		{
			name:      "block call",
			input:     "/* #macro SUM (int) */",
			kind:      EvCall,
			start:     0,
			evName:    "SUM",
			multiline: true,
		},
		{
			name:   "line import",
			input:  "//#import lib/common.src\nafter",
			kind:   EvImport,
			start:  0,
			evPath: "lib/common.src",
		},
		{
			name:      "block import",
			input:     "/*#import lib/common.src */",
			kind:      EvImport,
			start:     0,
			evPath:    "lib/common.src",
			multiline: true,
		},
		{
			name:   "earliest offset wins",
			input:  "//#macro A ()\n//#define B ()\n",
			kind:   EvCall,
			start:  0,
			evName: "A",
		},
		{
			name:      "block form earlier than line form",
			input:     "/*#define X ()*/ //#macro Y ()\n",
			kind:      EvDefine,
			start:     0,
			evName:    "X",
			multiline: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := m.next(tt.input)
			if !ok {
				t.Fatal("expected a match")
			}
			if ev.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", ev.Kind, tt.kind)
			}
			if ev.Start != tt.start {
				t.Errorf("Start = %d, want %d", ev.Start, tt.start)
			}
			if ev.Name != tt.evName {
				t.Errorf("Name = %q, want %q", ev.Name, tt.evName)
			}
			if ev.Path != tt.evPath {
				t.Errorf("Path = %q, want %q", ev.Path, tt.evPath)
			}
			if ev.Multiline != tt.multiline {
				t.Errorf("Multiline = %v, want %v", ev.Multiline, tt.multiline)
			}
		})
	}
}

func TestMatcherNextNoEvent(t *testing.T) {
	m := newMatcher("//")
	for _, input := range []string{
		"",
		"plain text with no directives\n",
		"// an ordinary comment\n",
		"//#end\n", // end markers are not top-level events
		"#define NOT_IN_A_COMMENT (A)\n",
	} {
		if ev, ok := m.next(input); ok {
			t.Errorf("next(%q) matched %v, want no match", input, ev.Kind)
		}
	}
}

func TestMatcherCustomLineComment(t *testing.T) {
	m := newMatcher("--")

	ev, ok := m.next("--#define FOO (A)\n")
	if !ok || ev.Kind != EvDefine || ev.Name != "FOO" {
		t.Fatalf("expected define FOO with custom token, got %+v ok=%v", ev, ok)
	}

	// The default token no longer introduces directives.
	if _, ok := m.next("//#define FOO (A)\n"); ok {
		t.Error("// directive matched under -- comment token")
	}
}

func TestMatcherFindEnd(t *testing.T) {
	m := newMatcher("//")

	start, end, ok := m.findEnd("body line\n//#end trailing\nafter", false)
	if !ok {
		t.Fatal("expected line end marker")
	}
	if start != 10 {
		t.Errorf("start = %d, want 10", start)
	}
	if got := "body line\n//#end trailing\nafter"[start:end]; got != "//#end trailing\n" {
		t.Errorf("matched span = %q", got)
	}

	// A line-style header must not be terminated by a block-style marker.
	if _, _, ok := m.findEnd("body /*#end*/", false); ok {
		t.Error("line-style search matched a block-style end marker")
	}
	if _, _, ok := m.findEnd("body //#end\n", true); ok {
		t.Error("block-style search matched a line-style end marker")
	}

	start, end, ok = m.findEnd("body /* #end */ after", true)
	if !ok {
		t.Fatal("expected block end marker")
	}
	if got := "body /* #end */ after"[start:end]; got != "/* #end */" {
		t.Errorf("matched span = %q", got)
	}
}
