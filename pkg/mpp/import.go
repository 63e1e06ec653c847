// Import resolution and merge.
package mpp

import (
	"os"
	"path/filepath"
)

// handleImport resolves the referenced path, recursively scans it into
// the shared output sink, and merges its macro table into the caller's.
// Environment variable references in the path are expanded first;
// relative paths resolve against the directory of the file currently
// being scanned (the working directory when that file has no path, such
// as standard input). Nested scans run with no depth limit and no cycle
// detection: a self-referential import chain recurses until the process
// dies.
func (s *Scanner) handleImport(cur *cursor, ev Event, evLoc Location) error {
	path := os.ExpandEnv(ev.Path)
	resolved := resolveImport(path, cur.loc.File)

	if _, err := os.Stat(resolved); err != nil {
		return &ImportNotFoundError{Path: resolved, Loc: evLoc}
	}
	content, err := os.ReadFile(resolved)
	if err != nil {
		return &ImportProcessingError{Path: resolved, Loc: evLoc, Err: err}
	}

	// The child scan owns a fresh table but writes through the caller's
	// sinks, so imported text inlines exactly where the directive stood.
	child := &Scanner{
		lineComment: s.lineComment,
		out:         s.out,
		diag:        s.diag,
		macros:      NewTable(),
		match:       s.match,
	}
	if err := child.process(string(content), resolved); err != nil {
		return &ImportProcessingError{Path: resolved, Loc: evLoc, Err: err}
	}

	// Imported definitions take precedence over same-named macros
	// already registered by the caller.
	for _, c := range s.macros.Merge(child.macros) {
		s.warnRedefined(c.Old, c.New)
	}
	return nil
}

func resolveImport(path, currentFile string) string {
	if filepath.IsAbs(path) {
		return path
	}
	// filepath.Dir yields "." for path-less identifiers like "<stdin>",
	// which resolves against the working directory.
	return filepath.Join(filepath.Dir(currentFile), path)
}
