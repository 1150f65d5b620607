package query

import (
	"github.com/sirupsen/logrus"
)

// Trace wraps a Builder so that every call is logged at debug level before
// it is delegated. Results and errors of the wrapped Builder are returned
// as they are.
func Trace[E any](builder Builder[E], logger logrus.FieldLogger) Builder[E] {
	return &tracer[E]{next: builder, logger: logger}
}

type tracer[E any] struct {
	next   Builder[E]
	logger logrus.FieldLogger
}

func (t *tracer[E]) Eq(field string, value any) (E, error) { return t.compare(OpEq, field, value) }
func (t *tracer[E]) Gt(field string, value any) (E, error) { return t.compare(OpGt, field, value) }
func (t *tracer[E]) Gte(field string, value any) (E, error) { return t.compare(OpGte, field, value) }
func (t *tracer[E]) Lt(field string, value any) (E, error) { return t.compare(OpLt, field, value) }
func (t *tracer[E]) Lte(field string, value any) (E, error) { return t.compare(OpLte, field, value) }
func (t *tracer[E]) Neq(field string, value any) (E, error) { return t.compare(OpNeq, field, value) }

func (t *tracer[E]) In(field string, values []any) (E, error) {
	return t.compare(OpIn, field, values)
}

func (t *tracer[E]) NotIn(field string, values []any) (E, error) {
	return t.compare(OpNotIn, field, values)
}

func (t *tracer[E]) And(operands []E) (E, error) { return t.compose(OpAnd, operands) }
func (t *tracer[E]) Nand(operands []E) (E, error) { return t.compose(OpNand, operands) }
func (t *tracer[E]) Or(operands []E) (E, error) { return t.compose(OpOr, operands) }
func (t *tracer[E]) Nor(operands []E) (E, error) { return t.compose(OpNor, operands) }
func (t *tracer[E]) Xor(operands []E) (E, error) { return t.compose(OpXor, operands) }

func (t *tracer[E]) compare(op ComparisonOp, field string, value any) (E, error) {
	entry := t.logger.WithFields(logrus.Fields{
		"op":    op.String(),
		"field": field,
		"value": value,
	})
	entry.Debug("Building comparison")

	expr, err := Compare(t.next, op, field, value)
	if err != nil {
		entry.WithError(err).Debug("Builder rejected comparison")
	}
	return expr, err
}

func (t *tracer[E]) compose(op CompositeOp, operands []E) (E, error) {
	entry := t.logger.WithFields(logrus.Fields{
		"op":       op.String(),
		"operands": len(operands),
	})
	entry.Debug("Building composite")

	expr, err := Compose(t.next, op, operands)
	if err != nil {
		entry.WithError(err).Debug("Builder rejected composite")
	}
	return expr, err
}
