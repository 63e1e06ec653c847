// macro.go holds macro definitions and performs parameter substitution.
package mpp

import "strings"

// Macro is a named text template captured from a #define directive. Body
// is the exact text between the definition header and its end marker.
type Macro struct {
	Name      string
	Params    []string
	Body      string
	DefinedAt Location
}

// Run expands the macro with the given argument values. The argument
// count must equal the parameter count exactly. Substitution replaces
// every literal occurrence of each parameter identifier in the
// progressively rewritten body, in declaration order. It is not token
// aware: a parameter name occurring inside another identifier, a string
// literal, or a comment is rewritten too. That is the contract, since
// no syntax tree of the target language exists.
func (m *Macro) Run(args []string) (string, error) {
	if len(args) != len(m.Params) {
		return "", &ArityMismatchError{Name: m.Name, Want: len(m.Params), Got: len(args)}
	}
	body := m.Body
	for i, param := range m.Params {
		body = strings.ReplaceAll(body, param, args[i])
	}
	return body, nil
}

// Table maps macro names to definitions. A name is bound to at most one
// macro at a time; redefinition fully replaces the prior entry.
type Table struct {
	macros map[string]*Macro
}

// Redefinition records a name collision so the caller can emit a
// warning citing both definition sites.
type Redefinition struct {
	Old *Macro
	New *Macro
}

func NewTable() *Table {
	return &Table{macros: make(map[string]*Macro)}
}

// Define inserts or replaces a macro. The displaced definition, if any,
// is returned so the caller can warn; the new definition is used for
// every subsequent call.
func (t *Table) Define(m *Macro) *Macro {
	old := t.macros[m.Name]
	t.macros[m.Name] = m
	return old
}

// Lookup returns the macro bound to name, or nil.
func (t *Table) Lookup(name string) *Macro {
	return t.macros[name]
}

// Len returns the number of defined macros.
func (t *Table) Len() int {
	return len(t.macros)
}

// Merge folds a completed import table into t, consuming it. Imported
// definitions always win on collision, regardless of declaration order
// between caller and import; each collision is reported so the caller
// can emit a warning.
func (t *Table) Merge(other *Table) []Redefinition {
	var collisions []Redefinition
	for name, m := range other.macros {
		if old := t.macros[name]; old != nil {
			collisions = append(collisions, Redefinition{Old: old, New: m})
		}
		t.macros[name] = m
	}
	other.macros = nil
	return collisions
}
