package query

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenField          TokenType = iota
	TokenNumber                   // 12, -3, 4.5
	TokenString                   // 'abc', "abc"
	TokenListStart                // '['
	TokenNotInListStart           // '!['
	TokenListEnd                  // ']'
	TokenComma                    // ','
	TokenEqual                    // '='
	TokenNotEqual                 // '!=', '≠'
	TokenGreater                  // '>'
	TokenGreaterEqual             // '>=', '≥'
	TokenLess                     // '<'
	TokenLessEqual                // '<=', '≤'
	TokenAnd                      // '&'
	TokenNand                     // '!&'
	TokenOr                       // '|'
	TokenNor                      // '!|'
	TokenXor                      // '^', '^|', '⊕'
	TokenLeftParen                // '('
	TokenRightParen               // ')'
	TokenEOF
)

var tokenNames = map[TokenType]string{
	TokenField:          "field",
	TokenNumber:         "number",
	TokenString:         "string",
	TokenListStart:      "'['",
	TokenNotInListStart: "'!['",
	TokenListEnd:        "']'",
	TokenComma:          "','",
	TokenEqual:          "'='",
	TokenNotEqual:       "'!='",
	TokenGreater:        "'>'",
	TokenGreaterEqual:   "'>='",
	TokenLess:           "'<'",
	TokenLessEqual:      "'<='",
	TokenAnd:            "'&'",
	TokenNand:           "'!&'",
	TokenOr:             "'|'",
	TokenNor:            "'!|'",
	TokenXor:            "'^'",
	TokenLeftParen:      "'('",
	TokenRightParen:     "')'",
	TokenEOF:            "end of input",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Token is one lexeme of a filter expression. Position is the byte offset of
// the first byte of the lexeme. Value holds the decoded payload of numbers
// (int64 or float64) and strings.
type Token struct {
	Type     TokenType
	Literal  string
	Position int
	Value    any
}

func (t Token) String() string {
	if t.Type == TokenEOF {
		return t.Type.String()
	}
	return strconv.Quote(t.Literal)
}

type spelling struct {
	text string
	typ  TokenType
}

// spellings is ordered so that every spelling comes before its own prefixes.
var spellings = []spelling{
	{">=", TokenGreaterEqual},
	{"<=", TokenLessEqual},
	{"!=", TokenNotEqual},
	{"!&", TokenNand},
	{"!|", TokenNor},
	{"![", TokenNotInListStart},
	{"^|", TokenXor},
	{"≥", TokenGreaterEqual},
	{"≤", TokenLessEqual},
	{"≠", TokenNotEqual},
	{"⊕", TokenXor},
	{"=", TokenEqual},
	{">", TokenGreater},
	{"<", TokenLess},
	{"&", TokenAnd},
	{"|", TokenOr},
	{"^", TokenXor},
	{"[", TokenListStart},
	{"]", TokenListEnd},
	{",", TokenComma},
	{"(", TokenLeftParen},
	{")", TokenRightParen},
}

// Lexer splits a filter expression into tokens.
type Lexer struct {
	input     string
	position  int
	listStart int // position of the open '[' or '![', -1 outside a list
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input, listStart: -1}
}

// Tokenize returns every token of input, ending with a TokenEOF.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

// NextToken returns the next token. At the end of input it keeps returning
// TokenEOF.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	if l.position >= len(l.input) {
		if l.listStart >= 0 {
			return Token{}, &LexError{Kind: UnterminatedList, Position: l.listStart, Char: '['}
		}
		return Token{Type: TokenEOF, Position: len(l.input)}, nil
	}

	rest := l.input[l.position:]
	ch, _ := utf8.DecodeRuneInString(rest)

	switch {
	case ch == '\'' || ch == '"':
		return l.readString(ch)
	case isDigit(ch) || (ch == '-' && len(rest) > 1 && isDigit(rune(rest[1]))):
		return l.readNumber()
	case isLetter(ch):
		return l.readField(), nil
	}

	for _, s := range spellings {
		if strings.HasPrefix(rest, s.text) {
			tok := Token{Type: s.typ, Literal: s.text, Position: l.position}
			l.position += len(s.text)
			switch s.typ {
			case TokenListStart, TokenNotInListStart:
				l.listStart = tok.Position
			case TokenListEnd:
				l.listStart = -1
			}
			return tok, nil
		}
	}

	return Token{}, &LexError{Kind: UnexpectedCharacter, Position: l.position, Char: ch}
}

func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) {
		ch, size := utf8.DecodeRuneInString(l.input[l.position:])
		if !unicode.IsSpace(ch) {
			return
		}
		l.position += size
	}
}

func (l *Lexer) readField() Token {
	start := l.position
	l.position = l.scanIdentifier(start)
	return Token{Type: TokenField, Literal: l.input[start:l.position], Position: start}
}

// readNumber consumes the maximal run of identifier characters and dots so
// that input such as "12ab" or "1.2.3" is reported as one malformed number.
func (l *Lexer) readNumber() (Token, error) {
	start := l.position
	end := start
	if l.input[end] == '-' {
		end++
	}
	for end < len(l.input) {
		if l.input[end] == '.' {
			end++
			continue
		}
		next := l.scanIdentifier(end)
		if next == end {
			break
		}
		end = next
	}
	l.position = end

	literal := l.input[start:end]
	tok := Token{Type: TokenNumber, Literal: literal, Position: start}
	malformed := &LexError{Kind: MalformedNumber, Position: start, Text: literal}

	if !isNumeric(literal) {
		return Token{}, malformed
	}
	if strings.Contains(literal, ".") {
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return Token{}, malformed
		}
		tok.Value = f
		return tok, nil
	}
	n, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return Token{}, malformed
	}
	tok.Value = n
	return tok, nil
}

// readString reads a quoted string. The quote character is escaped by
// doubling it.
func (l *Lexer) readString(quote rune) (Token, error) {
	start := l.position
	var sb strings.Builder
	i := start + 1
	for i < len(l.input) {
		ch, size := utf8.DecodeRuneInString(l.input[i:])
		if ch == quote {
			if i+size < len(l.input) && rune(l.input[i+size]) == quote {
				sb.WriteRune(quote)
				i += 2 * size
				continue
			}
			l.position = i + size
			return Token{
				Type:     TokenString,
				Literal:  l.input[start:l.position],
				Position: start,
				Value:    sb.String(),
			}, nil
		}
		sb.WriteRune(ch)
		i += size
	}
	return Token{}, &LexError{Kind: UnterminatedString, Position: start, Char: quote}
}

func (l *Lexer) scanIdentifier(pos int) int {
	for pos < len(l.input) {
		ch, size := utf8.DecodeRuneInString(l.input[pos:])
		if !isLetter(ch) && !isDigit(ch) {
			break
		}
		pos += size
	}
	return pos
}

// isNumeric accepts an optional minus sign, digits, and at most one dot with
// digits on both sides.
func isNumeric(s string) bool {
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if !allDigits(intPart) {
		return false
	}
	return !hasDot || allDigits(fracPart)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
