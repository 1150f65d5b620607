package query

// Parse parses a filter expression with a one-off Parser. It performs the
// following steps:
// 1. Lexical analysis of the whole input
// 2. Parsing, tier by tier
// 3. One builder call per comparison and per composite
func Parse[E any](input string, builder Builder[E], opts ...Option) (E, error) {
	return NewParser(builder, opts...).Parse(input)
}

// ParseTree parses input into a syntax tree using NodeBuilder.
func ParseTree(input string, opts ...Option) (Node, error) {
	return Parse[Node](input, NodeBuilder{}, opts...)
}
