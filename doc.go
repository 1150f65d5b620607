/*
Package xpression turns compact filter expressions such as

	fieldA=1|fieldB=2&fieldC=3

into expressions for a backend of your choice. Parsing is done by package
query, which calls a Builder for every comparison and every logical node; the
builder decides what those nodes become.

# Syntax

## Comparisons

	field=value       eq
	field>value       gt
	field>=value      gte (also ≥)
	field<value       lt
	field<=value      lte (also ≤)
	field!=value      neq (also ≠)
	field[v1,v2]      in
	field![v1,v2]     notIn

Values are integers, decimals, quoted strings ('a b' or "a b", the quote
doubled to escape it) or bare words, which are taken as strings.

## Logical operators

	a&b      and
	a!&b     nand
	a|b      or
	a!|b     nor
	a^b      xor (also ^| and ⊕)

and and nand bind tighter than or, nor and xor. Parentheses group.

A run of the same operator becomes a single node with every operand:

	a=1|b=2|c=3         or(a, b, c)

When the operator changes, everything to the left becomes the first operand
of the next node:

	a=1&b=2&c=3!&d=4    nand(and(a, b, c), d)

# Backends

  - query.NodeBuilder: a syntax tree, rendered as or(eq(a, 1), ...)
  - esquery.Builder: Elasticsearch queries (gopkg.in/olivere/elastic.v5)
  - document.Builder: MongoDB-style filter documents as protobuf Struct values
  - sqlfilter.Builder: parameterised SQL conditions

Writing another backend means implementing the thirteen methods of
query.Builder.

# Usage

	q, err := esquery.Parse("status[active,pending]&age>=18")
	if err != nil {
	    fmt.Print(query.FormatDiagnostic(input, err, false))
	    return
	}
	client.Search().Index("users").Query(q).Do(ctx)

The xpr command in cmd/ renders an expression with any of the backends:

	xpr --backend sql --numbered "a=1|b[2,3]"
*/
package xpression
