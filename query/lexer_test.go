package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "ascii comparison",
			input: "fieldA>=1",
			expected: []Token{
				{Type: TokenField, Literal: "fieldA", Position: 0},
				{Type: TokenGreaterEqual, Literal: ">=", Position: 6},
				{Type: TokenNumber, Literal: "1", Position: 8, Value: int64(1)},
				{Type: TokenEOF, Position: 9},
			},
		},
		{
			name:  "unicode comparison",
			input: "a≥1",
			expected: []Token{
				{Type: TokenField, Literal: "a", Position: 0},
				{Type: TokenGreaterEqual, Literal: "≥", Position: 1},
				{Type: TokenNumber, Literal: "1", Position: 4, Value: int64(1)},
				{Type: TokenEOF, Position: 5},
			},
		},
		{
			name:  "negated operators",
			input: "a!|b!&c![1]",
			expected: []Token{
				{Type: TokenField, Literal: "a", Position: 0},
				{Type: TokenNor, Literal: "!|", Position: 1},
				{Type: TokenField, Literal: "b", Position: 3},
				{Type: TokenNand, Literal: "!&", Position: 4},
				{Type: TokenField, Literal: "c", Position: 6},
				{Type: TokenNotInListStart, Literal: "![", Position: 7},
				{Type: TokenNumber, Literal: "1", Position: 9, Value: int64(1)},
				{Type: TokenListEnd, Literal: "]", Position: 10},
				{Type: TokenEOF, Position: 11},
			},
		},
		{
			name:  "xor spellings",
			input: "a^|b^c⊕d",
			expected: []Token{
				{Type: TokenField, Literal: "a", Position: 0},
				{Type: TokenXor, Literal: "^|", Position: 1},
				{Type: TokenField, Literal: "b", Position: 3},
				{Type: TokenXor, Literal: "^", Position: 4},
				{Type: TokenField, Literal: "c", Position: 5},
				{Type: TokenXor, Literal: "⊕", Position: 6},
				{Type: TokenField, Literal: "d", Position: 9},
				{Type: TokenEOF, Position: 10},
			},
		},
		{
			name:  "quoted string with escaped quote",
			input: "a='it''s'",
			expected: []Token{
				{Type: TokenField, Literal: "a", Position: 0},
				{Type: TokenEqual, Literal: "=", Position: 1},
				{Type: TokenString, Literal: "'it''s'", Position: 2, Value: "it's"},
				{Type: TokenEOF, Position: 9},
			},
		},
		{
			name:  "whitespace and decimal",
			input: " ( a = -1.5 ) ",
			expected: []Token{
				{Type: TokenLeftParen, Literal: "(", Position: 1},
				{Type: TokenField, Literal: "a", Position: 3},
				{Type: TokenEqual, Literal: "=", Position: 5},
				{Type: TokenNumber, Literal: "-1.5", Position: 7, Value: -1.5},
				{Type: TokenRightParen, Literal: ")", Position: 12},
				{Type: TokenEOF, Position: 14},
			},
		},
		{
			name:  "list",
			input: `f[1,"x"]`,
			expected: []Token{
				{Type: TokenField, Literal: "f", Position: 0},
				{Type: TokenListStart, Literal: "[", Position: 1},
				{Type: TokenNumber, Literal: "1", Position: 2, Value: int64(1)},
				{Type: TokenComma, Literal: ",", Position: 3},
				{Type: TokenString, Literal: `"x"`, Position: 4, Value: "x"},
				{Type: TokenListEnd, Literal: "]", Position: 7},
				{Type: TokenEOF, Position: 8},
			},
		},
		{
			name:  "field with digits and underscore",
			input: "_field_2≠x",
			expected: []Token{
				{Type: TokenField, Literal: "_field_2", Position: 0},
				{Type: TokenNotEqual, Literal: "≠", Position: 8},
				{Type: TokenField, Literal: "x", Position: 11},
				{Type: TokenEOF, Position: 12},
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []Token{{Type: TokenEOF, Position: 0}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected LexError
	}{
		{
			name:     "trailing dot",
			input:    "a=1.",
			expected: LexError{Kind: MalformedNumber, Position: 2, Text: "1."},
		},
		{
			name:     "two dots",
			input:    "a=1.2.3",
			expected: LexError{Kind: MalformedNumber, Position: 2, Text: "1.2.3"},
		},
		{
			name:     "digits then letters",
			input:    "a=12ab",
			expected: LexError{Kind: MalformedNumber, Position: 2, Text: "12ab"},
		},
		{
			name:     "integer overflow",
			input:    "a=99999999999999999999",
			expected: LexError{Kind: MalformedNumber, Position: 2, Text: "99999999999999999999"},
		},
		{
			name:     "unterminated list",
			input:    "a[1,2",
			expected: LexError{Kind: UnterminatedList, Position: 1, Char: '['},
		},
		{
			name:     "unterminated negated list",
			input:    "a=1&b![1",
			expected: LexError{Kind: UnterminatedList, Position: 5, Char: '['},
		},
		{
			name:     "unterminated string",
			input:    "a='x",
			expected: LexError{Kind: UnterminatedString, Position: 2, Char: '\''},
		},
		{
			name:     "lone bang",
			input:    "a!b",
			expected: LexError{Kind: UnexpectedCharacter, Position: 1, Char: '!'},
		},
		{
			name:     "unknown symbol",
			input:    "a=1 @",
			expected: LexError{Kind: UnexpectedCharacter, Position: 4, Char: '@'},
		},
		{
			name:     "minus without digits",
			input:    "a=-x",
			expected: LexError{Kind: UnexpectedCharacter, Position: 2, Char: '-'},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens, err := Tokenize(tt.input)
			require.Error(t, err)
			assert.Nil(t, tokens)

			var lexErr *LexError
			require.True(t, errors.As(err, &lexErr))
			assert.Equal(t, tt.expected, *lexErr)
		})
	}
}

func TestNextTokenRepeatsEOF(t *testing.T) {
	t.Parallel()

	lexer := NewLexer("a")
	tok, err := lexer.NextToken()
	require.NoError(t, err)
	assert.Equal(t, TokenField, tok.Type)

	for i := 0; i < 2; i++ {
		tok, err = lexer.NextToken()
		require.NoError(t, err)
		assert.Equal(t, Token{Type: TokenEOF, Position: 1}, tok)
	}
}
