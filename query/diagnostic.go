package query

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ANSI escape codes for colored output.
const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiRed   = "\033[31m"
	ansiBlue  = "\033[34m"
)

// FormatDiagnostic renders a lex or parse error of query with a caret under
// the offending character. Errors that carry no position, such as those
// raised by a Builder, are rendered as a single line.
func FormatDiagnostic(query string, err error, useColor bool) string {
	title, detail, pos, ok := locate(err)
	if !ok {
		return fmt.Sprintf("Filter error: %v\n", err)
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "Filter parsing error: %s\n", title)

	arrow := " --> "
	if useColor {
		arrow = ansiBold + ansiBlue + " --> " + ansiReset
	}
	fmt.Fprintf(&sb, "%s'%s'\n\n", arrow, query)

	const indent = "     "
	fmt.Fprintf(&sb, "%s%s\n", indent, query)

	if pos > len(query) {
		pos = len(query)
	}
	spaces := strings.Repeat(" ", utf8.RuneCountInString(query[:pos]))
	caret := "^"
	if useColor {
		caret = ansiBold + ansiRed + "^" + ansiReset
	}
	fmt.Fprintf(&sb, "%s%s%s %s\n", indent, spaces, caret, detail)

	return sb.String()
}

func locate(err error) (title, detail string, pos int, ok bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) && parseErr.Kind != InvalidInput {
		switch parseErr.Kind {
		case UnclosedGroup:
			detail = fmt.Sprintf("this '(' is never closed, found %s", parseErr.Found)
		case GroupTooDeep:
			detail = fmt.Sprintf("expected %s", parseErr.Expected)
		default:
			detail = fmt.Sprintf("expected %s, found %s", parseErr.Expected, parseErr.Found)
		}
		return parseErr.Kind.String(), detail, parseErr.Position, true
	}

	var lexErr *LexError
	if errors.As(err, &lexErr) {
		switch lexErr.Kind {
		case UnexpectedCharacter:
			detail = fmt.Sprintf("%q is not part of the filter syntax", lexErr.Char)
		case MalformedNumber:
			detail = fmt.Sprintf("%q is not a number", lexErr.Text)
		case UnterminatedList:
			detail = "this list is never closed with ']'"
		case UnterminatedString:
			detail = fmt.Sprintf("missing closing %c", lexErr.Char)
		}
		return lexErr.Kind.String(), detail, lexErr.Position, true
	}

	return "", "", 0, false
}
