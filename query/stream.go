package query

// tokenStream is a cursor over the tokens of one parse. The last token is
// always TokenEOF and the cursor never moves past it.
type tokenStream struct {
	tokens []Token
	pos    int
}

func newTokenStream(tokens []Token) *tokenStream {
	return &tokenStream{tokens: tokens}
}

func (s *tokenStream) peek() Token {
	return s.tokens[s.pos]
}

func (s *tokenStream) advance() Token {
	tok := s.tokens[s.pos]
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return tok
}

func (s *tokenStream) expect(typ TokenType, what string) (Token, error) {
	tok := s.peek()
	if tok.Type != typ {
		return Token{}, unexpected(tok, what)
	}
	return s.advance(), nil
}
