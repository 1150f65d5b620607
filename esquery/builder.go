// Package esquery builds Elasticsearch queries from filter expressions.
package esquery

import (
	"gopkg.in/olivere/elastic.v5"

	"github.com/smhanov/xpression/query"
)

// Builder implements query.Builder for elastic.Query. Comparisons become
// term, terms and range queries; composites become bool queries.
type Builder struct{}

var _ query.Builder[elastic.Query] = Builder{}

// Parse parses a filter expression into an Elasticsearch query.
func Parse(input string, opts ...query.Option) (elastic.Query, error) {
	return query.Parse[elastic.Query](input, Builder{}, opts...)
}

func (Builder) Eq(field string, value any) (elastic.Query, error) {
	return elastic.NewTermQuery(field, value), nil
}

func (Builder) Gt(field string, value any) (elastic.Query, error) {
	return elastic.NewRangeQuery(field).Gt(value), nil
}

func (Builder) Gte(field string, value any) (elastic.Query, error) {
	return elastic.NewRangeQuery(field).Gte(value), nil
}

func (Builder) Lt(field string, value any) (elastic.Query, error) {
	return elastic.NewRangeQuery(field).Lt(value), nil
}

func (Builder) Lte(field string, value any) (elastic.Query, error) {
	return elastic.NewRangeQuery(field).Lte(value), nil
}

func (Builder) Neq(field string, value any) (elastic.Query, error) {
	return elastic.NewBoolQuery().MustNot(elastic.NewTermQuery(field, value)), nil
}

func (Builder) In(field string, values []any) (elastic.Query, error) {
	return elastic.NewTermsQuery(field, values...), nil
}

func (Builder) NotIn(field string, values []any) (elastic.Query, error) {
	return elastic.NewBoolQuery().MustNot(elastic.NewTermsQuery(field, values...)), nil
}

func (Builder) And(operands []elastic.Query) (elastic.Query, error) {
	return elastic.NewBoolQuery().Must(operands...), nil
}

func (Builder) Nand(operands []elastic.Query) (elastic.Query, error) {
	return elastic.NewBoolQuery().MustNot(elastic.NewBoolQuery().Must(operands...)), nil
}

func (Builder) Or(operands []elastic.Query) (elastic.Query, error) {
	return elastic.NewBoolQuery().Should(operands...).MinimumNumberShouldMatch(1), nil
}

func (Builder) Nor(operands []elastic.Query) (elastic.Query, error) {
	return elastic.NewBoolQuery().MustNot(operands...), nil
}

// Xor folds the operands pairwise from the left, so the result matches when
// an odd number of operands match.
func (Builder) Xor(operands []elastic.Query) (elastic.Query, error) {
	acc := operands[0]
	for _, next := range operands[1:] {
		acc = elastic.NewBoolQuery().
			Should(
				elastic.NewBoolQuery().Must(acc).MustNot(next),
				elastic.NewBoolQuery().Must(next).MustNot(acc),
			).
			MinimumNumberShouldMatch(1)
	}
	return acc, nil
}
