// Package sqlfilter builds parameterised SQL conditions from filter
// expressions.
package sqlfilter

import (
	"strconv"
	"strings"

	"github.com/smhanov/xpression/query"
)

// Clause is a SQL boolean expression with '?' placeholders and the arguments
// that fill them, in order.
type Clause struct {
	SQL  string
	Args []any
}

// Numbered returns the clause with PostgreSQL style $1..$n placeholders.
// A '?' inside a quoted identifier is part of the name and is left alone.
func (c Clause) Numbered() Clause {
	var sb strings.Builder
	n := 0
	quoted := false
	for _, ch := range c.SQL {
		switch {
		case ch == '"':
			quoted = !quoted
		case ch == '?' && !quoted:
			n++
			sb.WriteString("$" + strconv.Itoa(n))
			continue
		}
		sb.WriteRune(ch)
	}
	return Clause{SQL: sb.String(), Args: c.Args}
}

// Builder implements query.Builder for Clause.
type Builder struct{}

var _ query.Builder[Clause] = Builder{}

// Parse parses a filter expression into a SQL condition.
func Parse(input string, opts ...query.Option) (Clause, error) {
	return query.Parse[Clause](input, Builder{}, opts...)
}

func (Builder) Eq(field string, value any) (Clause, error) { return compare(field, "=", value), nil }
func (Builder) Gt(field string, value any) (Clause, error) { return compare(field, ">", value), nil }
func (Builder) Gte(field string, value any) (Clause, error) { return compare(field, ">=", value), nil }
func (Builder) Lt(field string, value any) (Clause, error) { return compare(field, "<", value), nil }
func (Builder) Lte(field string, value any) (Clause, error) { return compare(field, "<=", value), nil }
func (Builder) Neq(field string, value any) (Clause, error) { return compare(field, "<>", value), nil }

func (Builder) In(field string, values []any) (Clause, error) {
	return membership(field, "IN", values), nil
}

func (Builder) NotIn(field string, values []any) (Clause, error) {
	return membership(field, "NOT IN", values), nil
}

func (Builder) And(operands []Clause) (Clause, error) { return join("AND", operands), nil }
func (Builder) Or(operands []Clause) (Clause, error) { return join("OR", operands), nil }

func (Builder) Nand(operands []Clause) (Clause, error) {
	return not(join("AND", operands)), nil
}

func (Builder) Nor(operands []Clause) (Clause, error) {
	return not(join("OR", operands)), nil
}

// Xor compares boolean operands with <>, folding from the left. Operands are
// grouped because <> binds as loosely as the comparisons inside them.
func (Builder) Xor(operands []Clause) (Clause, error) {
	acc := operands[0]
	for _, next := range operands[1:] {
		acc = join("<>", []Clause{group(acc), group(next)})
	}
	return acc, nil
}

func compare(field, op string, value any) Clause {
	return Clause{SQL: quoteIdent(field) + " " + op + " ?", Args: []any{value}}
}

func membership(field, op string, values []any) Clause {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	return Clause{
		SQL:  quoteIdent(field) + " " + op + " (" + placeholders + ")",
		Args: append([]any(nil), values...),
	}
}

func join(op string, operands []Clause) Clause {
	parts := make([]string, len(operands))
	var args []any
	for i, c := range operands {
		parts[i] = c.SQL
		args = append(args, c.Args...)
	}
	return Clause{SQL: "(" + strings.Join(parts, " "+op+" ") + ")", Args: args}
}

// group parenthesises c unless it already is a parenthesised join.
func group(c Clause) Clause {
	if strings.HasPrefix(c.SQL, "(") {
		return c
	}
	return Clause{SQL: "(" + c.SQL + ")", Args: c.Args}
}

func not(c Clause) Clause {
	return Clause{SQL: "NOT " + c.SQL, Args: c.Args}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
