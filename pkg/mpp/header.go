package mpp

import (
	"fmt"
	"io"
)

// WriteHeader emits the generated-file banner for a top-level scan,
// written in the given line-comment style. Nested import scans never
// receive one. source names the originating input when known; pass ""
// for path-less inputs such as standard input.
func WriteHeader(w io.Writer, lineComment, source string) error {
	rule := lineComment + " ----------------------------------------------------------------------\n"
	if _, err := io.WriteString(w, rule); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s Code generated by macrogen. DO NOT EDIT.\n", lineComment)
	if source != "" {
		fmt.Fprintf(w, "%s Source: %s\n", lineComment, source)
	}
	fmt.Fprintf(w, "%s Changes made to this file will be lost on regeneration.\n", lineComment)
	_, err := io.WriteString(w, rule)
	return err
}
