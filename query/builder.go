package query

import "fmt"

// Builder constructs the expression a filter describes. The parser calls one
// method per comparison and per composite node and threads the returned
// values, of any type E the implementation chooses, into later calls without
// inspecting them.
//
// Scalar values are int64, float64 or string. Composite methods always
// receive at least two operands. Errors returned by a Builder are passed back
// to the caller of Parse unchanged.
type Builder[E any] interface {
	Eq(field string, value any) (E, error)
	Gt(field string, value any) (E, error)
	Gte(field string, value any) (E, error)
	Lt(field string, value any) (E, error)
	Lte(field string, value any) (E, error)
	Neq(field string, value any) (E, error)
	In(field string, values []any) (E, error)
	NotIn(field string, values []any) (E, error)

	And(operands []E) (E, error)
	Nand(operands []E) (E, error)
	Or(operands []E) (E, error)
	Nor(operands []E) (E, error)
	Xor(operands []E) (E, error)
}

// ComparisonOp is the logical operator of a comparison, independent of how
// it was spelled.
type ComparisonOp int

const (
	OpEq ComparisonOp = iota
	OpGt
	OpGte
	OpLt
	OpLte
	OpNeq
	OpIn
	OpNotIn
)

var comparisonNames = [...]string{"eq", "gt", "gte", "lt", "lte", "neq", "in", "notIn"}

func (op ComparisonOp) String() string {
	if op < 0 || int(op) >= len(comparisonNames) {
		return fmt.Sprintf("comparison(%d)", int(op))
	}
	return comparisonNames[op]
}

// CompositeOp is the logical operator joining two or more expressions.
type CompositeOp int

const (
	OpAnd CompositeOp = iota
	OpNand
	OpOr
	OpNor
	OpXor
)

var compositeNames = [...]string{"and", "nand", "or", "nor", "xor"}

func (op CompositeOp) String() string {
	if op < 0 || int(op) >= len(compositeNames) {
		return fmt.Sprintf("composite(%d)", int(op))
	}
	return compositeNames[op]
}

// Tier is a precedence level. AndTier binds tighter than OrTier.
type Tier int

const (
	OrTier Tier = iota
	AndTier
)

func (op CompositeOp) Tier() Tier {
	if op == OpAnd || op == OpNand {
		return AndTier
	}
	return OrTier
}

var comparisonTokens = map[TokenType]ComparisonOp{
	TokenEqual:          OpEq,
	TokenGreater:        OpGt,
	TokenGreaterEqual:   OpGte,
	TokenLess:           OpLt,
	TokenLessEqual:      OpLte,
	TokenNotEqual:       OpNeq,
	TokenListStart:      OpIn,
	TokenNotInListStart: OpNotIn,
}

var compositeTokens = map[TokenType]CompositeOp{
	TokenAnd:  OpAnd,
	TokenNand: OpNand,
	TokenOr:   OpOr,
	TokenNor:  OpNor,
	TokenXor:  OpXor,
}

// Compare dispatches a comparison to the matching Builder method. For OpIn
// and OpNotIn value must be a []any.
func Compare[E any](b Builder[E], op ComparisonOp, field string, value any) (E, error) {
	switch op {
	case OpEq:
		return b.Eq(field, value)
	case OpGt:
		return b.Gt(field, value)
	case OpGte:
		return b.Gte(field, value)
	case OpLt:
		return b.Lt(field, value)
	case OpLte:
		return b.Lte(field, value)
	case OpNeq:
		return b.Neq(field, value)
	case OpIn, OpNotIn:
		values, ok := value.([]any)
		if !ok {
			var zero E
			return zero, fmt.Errorf("%s on %s needs a list value, got %T", op, field, value)
		}
		if op == OpIn {
			return b.In(field, values)
		}
		return b.NotIn(field, values)
	default:
		var zero E
		return zero, fmt.Errorf("unknown comparison operator %d", int(op))
	}
}

// Compose dispatches a composite to the matching Builder method.
func Compose[E any](b Builder[E], op CompositeOp, operands []E) (E, error) {
	switch op {
	case OpAnd:
		return b.And(operands)
	case OpNand:
		return b.Nand(operands)
	case OpOr:
		return b.Or(operands)
	case OpNor:
		return b.Nor(operands)
	case OpXor:
		return b.Xor(operands)
	default:
		var zero E
		return zero, fmt.Errorf("unknown composite operator %d", int(op))
	}
}
