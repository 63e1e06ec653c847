// Location tracking for diagnostics.
package mpp

import (
	"fmt"
	"strings"
)

// Location identifies a position in an input as a file identifier and a
// 1-based line number. Values are immutable; advancing derives a new one.
type Location struct {
	File string
	Line int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// advance returns the location reached after consuming the given text.
func (l Location) advance(consumed string) Location {
	return Location{File: l.File, Line: l.Line + strings.Count(consumed, "\n")}
}

// cursor couples the unconsumed suffix of the input with the location of
// its first byte. Each scan owns exactly one cursor; the driver loop is
// the only place that advances it.
type cursor struct {
	rest string
	loc  Location
}

func newCursor(input, file string) *cursor {
	return &cursor{rest: input, loc: Location{File: file, Line: 1}}
}

// take consumes n bytes, updating the location, and returns them.
func (c *cursor) take(n int) string {
	consumed := c.rest[:n]
	c.loc = c.loc.advance(consumed)
	c.rest = c.rest[n:]
	return consumed
}

// locAt returns the location of the byte at the given offset into the
// remaining buffer, without consuming anything.
func (c *cursor) locAt(offset int) Location {
	return c.loc.advance(c.rest[:offset])
}
