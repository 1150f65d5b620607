package query

import (
	"fmt"
	"strings"
)

type Node interface {
	String() string
}

type ComparisonNode struct {
	Field    string
	Operator ComparisonOp
	Value    Node
}

func (n *ComparisonNode) String() string {
	return fmt.Sprintf("%s(%s, %s)", n.Operator, n.Field, n.Value.String())
}

type CompositeNode struct {
	Operator CompositeOp
	Operands []Node
}

func (n *CompositeNode) String() string {
	operands := make([]string, len(n.Operands))
	for i, op := range n.Operands {
		operands[i] = op.String()
	}
	return fmt.Sprintf("%s(%s)", n.Operator, strings.Join(operands, ", "))
}

type ValueNode struct {
	Value any
}

func (n *ValueNode) String() string {
	switch v := n.Value.(type) {
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	default:
		return fmt.Sprintf("%v", v)
	}
}

type ListNode struct {
	Elements []Node
}

func (n *ListNode) String() string {
	elements := make([]string, len(n.Elements))
	for i, elem := range n.Elements {
		elements[i] = elem.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(elements, ", "))
}

// NodeBuilder builds a syntax tree. Its String rendering is stable, which
// makes it the reference backend for tests and debugging output.
type NodeBuilder struct{}

var _ Builder[Node] = NodeBuilder{}

func (NodeBuilder) Eq(field string, value any) (Node, error) { return scalarNode(OpEq, field, value) }
func (NodeBuilder) Gt(field string, value any) (Node, error) { return scalarNode(OpGt, field, value) }
func (NodeBuilder) Gte(field string, value any) (Node, error) { return scalarNode(OpGte, field, value) }
func (NodeBuilder) Lt(field string, value any) (Node, error) { return scalarNode(OpLt, field, value) }
func (NodeBuilder) Lte(field string, value any) (Node, error) { return scalarNode(OpLte, field, value) }
func (NodeBuilder) Neq(field string, value any) (Node, error) { return scalarNode(OpNeq, field, value) }

func (NodeBuilder) In(field string, values []any) (Node, error) {
	return listNode(OpIn, field, values)
}

func (NodeBuilder) NotIn(field string, values []any) (Node, error) {
	return listNode(OpNotIn, field, values)
}

func (NodeBuilder) And(operands []Node) (Node, error) { return compositeNode(OpAnd, operands) }
func (NodeBuilder) Nand(operands []Node) (Node, error) { return compositeNode(OpNand, operands) }
func (NodeBuilder) Or(operands []Node) (Node, error) { return compositeNode(OpOr, operands) }
func (NodeBuilder) Nor(operands []Node) (Node, error) { return compositeNode(OpNor, operands) }
func (NodeBuilder) Xor(operands []Node) (Node, error) { return compositeNode(OpXor, operands) }

func scalarNode(op ComparisonOp, field string, value any) (Node, error) {
	return &ComparisonNode{Field: field, Operator: op, Value: &ValueNode{Value: value}}, nil
}

func listNode(op ComparisonOp, field string, values []any) (Node, error) {
	list := &ListNode{Elements: make([]Node, len(values))}
	for i, v := range values {
		list.Elements[i] = &ValueNode{Value: v}
	}
	return &ComparisonNode{Field: field, Operator: op, Value: list}, nil
}

func compositeNode(op CompositeOp, operands []Node) (Node, error) {
	return &CompositeNode{Operator: op, Operands: append([]Node(nil), operands...)}, nil
}
