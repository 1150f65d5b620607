package query

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Option configures a Parser.
type Option func(*parserOptions)

// DefaultMaxDepth is the deepest group nesting a Parser accepts unless
// WithMaxDepth says otherwise.
const DefaultMaxDepth = 10000

type parserOptions struct {
	logger   logrus.FieldLogger
	maxDepth int
}

// WithLogger makes the parser log every parse at debug level.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *parserOptions) {
		o.logger = logger
	}
}

// WithMaxDepth limits how deeply groups may nest. Deeper input is rejected
// with a GroupTooDeep error. Values below 1 keep DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(o *parserOptions) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// Parser turns filter expressions into calls on a Builder. A Parser holds no
// per-parse state and may be shared between goroutines when its Builder can.
type Parser[E any] struct {
	builder  Builder[E]
	logger   logrus.FieldLogger
	maxDepth int
}

func NewParser[E any](builder Builder[E], opts ...Option) *Parser[E] {
	o := parserOptions{logger: logrus.StandardLogger(), maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser[E]{builder: builder, logger: o.logger, maxDepth: o.maxDepth}
}

// Parse tokenizes input and drives the builder over it, returning the handle
// of the root node. The whole input is tokenized before the first builder
// call, so input that fails to lex never reaches the builder.
func (p *Parser[E]) Parse(input string) (E, error) {
	var zero E
	log := p.logger.WithField("filter", input)

	tokens, err := Tokenize(input)
	if err != nil {
		log.WithError(err).Debug("Filter rejected by lexer")
		pe := &ParseError{Kind: InvalidInput, Err: err}
		var lexErr *LexError
		if errors.As(err, &lexErr) {
			pe.Position = lexErr.Position
		}
		return zero, pe
	}

	state := &parseState[E]{builder: p.builder, tokens: newTokenStream(tokens), maxDepth: p.maxDepth}
	expr, err := state.tier(OrTier)
	if err == nil {
		_, err = state.tokens.expect(TokenEOF, "end of input")
	}
	if err != nil {
		log.WithError(err).Debug("Filter rejected by parser")
		return zero, err
	}

	log.WithField("tokens", len(tokens)).Debug("Parsed filter")
	return expr, nil
}

type parseState[E any] struct {
	builder  Builder[E]
	tokens   *tokenStream
	depth    int
	maxDepth int
}

// tier parses one precedence level. Consecutive uses of the same operator
// are collected into a single composite call; a different operator of the
// same tier starts a new composite whose first operand is everything to its
// left.
func (s *parseState[E]) tier(t Tier) (E, error) {
	var zero E

	acc, err := s.operand(t)
	if err != nil {
		return zero, err
	}

	for {
		op, ok := compositeTokens[s.tokens.peek().Type]
		if !ok || op.Tier() != t {
			return acc, nil
		}

		operands := []E{acc}
		for s.nextIs(op) {
			s.tokens.advance()
			next, err := s.operand(t)
			if err != nil {
				return zero, err
			}
			operands = append(operands, next)
		}

		acc, err = Compose(s.builder, op, operands)
		if err != nil {
			return zero, err
		}
	}
}

func (s *parseState[E]) operand(t Tier) (E, error) {
	if t == OrTier {
		return s.tier(AndTier)
	}
	return s.atom()
}

func (s *parseState[E]) nextIs(op CompositeOp) bool {
	next, ok := compositeTokens[s.tokens.peek().Type]
	return ok && next == op
}

func (s *parseState[E]) atom() (E, error) {
	var zero E

	if s.tokens.peek().Type != TokenLeftParen {
		return s.comparison()
	}

	open := s.tokens.advance()
	if s.depth >= s.maxDepth {
		return zero, &ParseError{
			Kind:     GroupTooDeep,
			Position: open.Position,
			Expected: fmt.Sprintf("at most %d nested groups", s.maxDepth),
			Found:    open,
		}
	}

	s.depth++
	expr, err := s.tier(OrTier)
	s.depth--
	if err != nil {
		return zero, err
	}
	if found := s.tokens.peek(); found.Type != TokenRightParen {
		return zero, &ParseError{Kind: UnclosedGroup, Position: open.Position, Expected: "')'", Found: found}
	}
	s.tokens.advance()
	return expr, nil
}

func (s *parseState[E]) comparison() (E, error) {
	var zero E

	field, err := s.tokens.expect(TokenField, "field name or '('")
	if err != nil {
		return zero, err
	}

	tok := s.tokens.peek()
	op, ok := comparisonTokens[tok.Type]
	if !ok {
		return zero, unexpected(tok, "comparison operator or list")
	}
	s.tokens.advance()

	var value any
	if op == OpIn || op == OpNotIn {
		value, err = s.list()
	} else {
		value, err = s.scalar()
	}
	if err != nil {
		return zero, err
	}

	return Compare(s.builder, op, field.Literal, value)
}

// scalar reads a number, a quoted string, or a bare word taken as a string.
func (s *parseState[E]) scalar() (any, error) {
	tok := s.tokens.peek()
	switch tok.Type {
	case TokenNumber, TokenString:
		s.tokens.advance()
		return tok.Value, nil
	case TokenField:
		s.tokens.advance()
		return tok.Literal, nil
	default:
		return nil, unexpected(tok, "value")
	}
}

// list reads the elements of a list whose opening bracket has already been
// consumed, up to and including the closing bracket.
func (s *parseState[E]) list() ([]any, error) {
	var values []any
	for {
		v, err := s.scalar()
		if err != nil {
			return nil, err
		}
		values = append(values, v)

		if s.tokens.peek().Type == TokenComma {
			s.tokens.advance()
			continue
		}
		if _, err := s.tokens.expect(TokenListEnd, "',' or ']'"); err != nil {
			return nil, err
		}
		return values, nil
	}
}
