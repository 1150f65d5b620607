// Package document builds MongoDB-style filter documents from filter
// expressions. Documents are protobuf Struct values so they can be embedded
// in protobuf messages or rendered as JSON with protojson.
package document

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/smhanov/xpression/query"
)

// Builder implements query.Builder for *structpb.Value.
type Builder struct{}

var _ query.Builder[*structpb.Value] = Builder{}

// Parse parses a filter expression into a filter document.
func Parse(input string, opts ...query.Option) (*structpb.Value, error) {
	return query.Parse[*structpb.Value](input, Builder{}, opts...)
}

// Marshal renders a filter document as JSON.
func Marshal(doc *structpb.Value) ([]byte, error) {
	return protojson.Marshal(doc)
}

func (Builder) Eq(field string, value any) (*structpb.Value, error) { return fieldOp(field, "$eq", value) }
func (Builder) Gt(field string, value any) (*structpb.Value, error) { return fieldOp(field, "$gt", value) }
func (Builder) Gte(field string, value any) (*structpb.Value, error) { return fieldOp(field, "$gte", value) }
func (Builder) Lt(field string, value any) (*structpb.Value, error) { return fieldOp(field, "$lt", value) }
func (Builder) Lte(field string, value any) (*structpb.Value, error) { return fieldOp(field, "$lte", value) }
func (Builder) Neq(field string, value any) (*structpb.Value, error) { return fieldOp(field, "$ne", value) }

func (Builder) In(field string, values []any) (*structpb.Value, error) {
	return fieldOp(field, "$in", values)
}

func (Builder) NotIn(field string, values []any) (*structpb.Value, error) {
	return fieldOp(field, "$nin", values)
}

func (Builder) And(operands []*structpb.Value) (*structpb.Value, error) {
	return logical("$and", operands...), nil
}

func (Builder) Nand(operands []*structpb.Value) (*structpb.Value, error) {
	return logical("$nor", logical("$and", operands...)), nil
}

func (Builder) Or(operands []*structpb.Value) (*structpb.Value, error) {
	return logical("$or", operands...), nil
}

func (Builder) Nor(operands []*structpb.Value) (*structpb.Value, error) {
	return logical("$nor", operands...), nil
}

// Xor has no operator of its own in the document language. The operands are
// folded pairwise from the left into (a and not b) or (not a and b).
func (Builder) Xor(operands []*structpb.Value) (*structpb.Value, error) {
	acc := operands[0]
	for _, next := range operands[1:] {
		acc = logical("$or",
			logical("$and", acc, logical("$nor", next)),
			logical("$and", logical("$nor", acc), next),
		)
	}
	return acc, nil
}

func fieldOp(field, op string, value any) (*structpb.Value, error) {
	v, err := structpb.NewValue(value)
	if err != nil {
		return nil, err
	}
	return object(field, object(op, v)), nil
}

func logical(op string, operands ...*structpb.Value) *structpb.Value {
	return object(op, structpb.NewListValue(&structpb.ListValue{Values: operands}))
}

func object(key string, value *structpb.Value) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{
		Fields: map[string]*structpb.Value{key: value},
	})
}
