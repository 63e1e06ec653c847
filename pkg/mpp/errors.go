// Error types raised during scanning. All fatal errors reach the caller
// with a file:line prefix; warnings go to the diagnostic stream and never
// abort a run.
package mpp

import "fmt"

// SyntaxError indicates an illegal character or unbalanced parentheses
// while parsing an argument list.
type SyntaxError struct {
	Loc Location
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: %s", e.Loc, e.Msg)
}

// UnterminatedDefinitionError indicates a #define whose matching #end was
// not found before the input ended.
type UnterminatedDefinitionError struct {
	Name  string
	Start Location
}

func (e *UnterminatedDefinitionError) Error() string {
	return fmt.Sprintf("%s: unterminated definition of macro %s: missing #end", e.Start, e.Name)
}

// UndefinedMacroError indicates a #macro call naming an unregistered
// macro.
type UndefinedMacroError struct {
	Name string
	Loc  Location
}

func (e *UndefinedMacroError) Error() string {
	return fmt.Sprintf("%s: call to undefined macro %s", e.Loc, e.Name)
}

// ArityMismatchError indicates a call whose argument count differs from
// the macro's parameter count. The expansion is never partially applied.
type ArityMismatchError struct {
	Name string
	Want int
	Got  int
	Loc  Location
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s: macro %s expects %d arguments, got %d", e.Loc, e.Name, e.Want, e.Got)
}

// ImportNotFoundError indicates that a resolved import path does not
// exist.
type ImportNotFoundError struct {
	Path string
	Loc  Location
}

func (e *ImportNotFoundError) Error() string {
	return fmt.Sprintf("%s: import not found: %s", e.Loc, e.Path)
}

// ImportProcessingError wraps a failure raised while scanning an imported
// file, tagged with the importing location. The cause is preserved for
// errors.Is/As chains.
type ImportProcessingError struct {
	Path string
	Loc  Location
	Err  error
}

func (e *ImportProcessingError) Error() string {
	return fmt.Sprintf("%s: import of %s failed: %v", e.Loc, e.Path, e.Err)
}

func (e *ImportProcessingError) Unwrap() error { return e.Err }
