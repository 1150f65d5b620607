package query

import (
	"fmt"
)

// LexErrorKind identifies why the lexer rejected its input.
type LexErrorKind int

const (
	UnexpectedCharacter LexErrorKind = iota
	MalformedNumber
	UnterminatedList
	UnterminatedString
)

func (k LexErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "unexpected character"
	case MalformedNumber:
		return "malformed number"
	case UnterminatedList:
		return "unterminated list"
	case UnterminatedString:
		return "unterminated string"
	default:
		return fmt.Sprintf("lex error %d", int(k))
	}
}

// LexError is returned when the input cannot be tokenized. Char is set for
// UnexpectedCharacter (and holds the opening delimiter for unterminated
// lists and strings); Text holds the offending literal of a MalformedNumber.
type LexError struct {
	Kind     LexErrorKind
	Position int
	Char     rune
	Text     string
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("%s %q at position %d", e.Kind, e.Char, e.Position)
	case MalformedNumber:
		return fmt.Sprintf("%s %q at position %d", e.Kind, e.Text, e.Position)
	default:
		return fmt.Sprintf("%s starting at position %d", e.Kind, e.Position)
	}
}

// ParseErrorKind identifies why the parser rejected its input.
type ParseErrorKind int

const (
	UnexpectedToken ParseErrorKind = iota
	UnclosedGroup
	InvalidInput // the lexer failed; Err holds the *LexError
	GroupTooDeep
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnclosedGroup:
		return "unclosed group"
	case InvalidInput:
		return "invalid input"
	case GroupTooDeep:
		return "groups nested too deep"
	default:
		return fmt.Sprintf("parse error %d", int(k))
	}
}

// ParseError is returned when the token sequence does not match the grammar.
//
// For UnclosedGroup, Position is the position of the '(' that was never
// closed and Found is the token that appeared instead of ')'. For
// GroupTooDeep, Position and Found are the first '(' past the limit.
type ParseError struct {
	Kind     ParseErrorKind
	Position int
	Expected string
	Found    Token
	Err      error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("%s %s at position %d, expected %s", e.Kind, e.Found, e.Position, e.Expected)
	case GroupTooDeep:
		return fmt.Sprintf("%s at position %d, expected %s", e.Kind, e.Position, e.Expected)
	case UnclosedGroup:
		return fmt.Sprintf("%s opened at position %d, found %s at position %d", e.Kind, e.Position, e.Found, e.Found.Position)
	default:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func unexpected(found Token, expected string) *ParseError {
	return &ParseError{Kind: UnexpectedToken, Position: found.Position, Expected: expected, Found: found}
}
