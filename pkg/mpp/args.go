// args.go parses the parenthesized argument groups that follow a
// directive keyword.
package mpp

import "fmt"

// argError reports a malformed argument list. off is the byte offset of
// the offending position within the parsed text; the caller converts it
// to a file/line location.
type argError struct {
	off int
	msg string
}

func (e *argError) Error() string { return e.msg }

// parseArgs consumes zero or more whitespace-separated argument groups of
// the form (raw text), starting immediately after a directive keyword and
// its separating whitespace. Nested parentheses inside a group are kept
// and must balance. In line mode the list ends at the first newline
// outside any group; in multiline (block-comment) mode it ends at the
// closing block token and bare newlines between groups are permitted.
// The returned length spans through and including the terminator.
func parseArgs(s string, multiline bool) (args []string, consumed int, err error) {
	const (
		betweenArgs = iota
		insideArg
	)
	state := betweenArgs
	depth := 0
	argStart := 0
	i := 0

	for i < len(s) {
		c := s[i]

		if state == betweenArgs {
			switch {
			case c == ' ' || c == '\t':
				i++
			case c == '\n':
				if multiline {
					i++
					continue
				}
				// Line-mode terminator, consumed.
				return args, i + 1, nil
			case c == '(':
				state = insideArg
				depth = 1
				i++
				argStart = i
			case multiline && c == '*' && i+1 < len(s) && s[i+1] == '/':
				return args, i + 2, nil
			default:
				return nil, 0, &argError{off: i, msg: fmt.Sprintf("unexpected character %q in argument list", c)}
			}
			continue
		}

		// insideArg: accumulate verbatim, tracking nesting.
		switch c {
		case '(':
			depth++
			i++
		case ')':
			depth--
			if depth == 0 {
				args = append(args, s[argStart:i])
				state = betweenArgs
			}
			i++
		case '\n':
			if !multiline {
				return nil, 0, &argError{off: i, msg: "newline inside argument (single-line directive form)"}
			}
			i++
		default:
			i++
		}
	}

	if state == insideArg {
		return nil, 0, &argError{off: len(s), msg: "unbalanced parentheses in argument list"}
	}
	if multiline {
		return nil, 0, &argError{off: len(s), msg: "unterminated argument list: missing " + blockClose}
	}
	// Line mode: end of input terminates the list like end of line.
	return args, len(s), nil
}
