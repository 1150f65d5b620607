package xpression

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/olivere/elastic.v5"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/smhanov/xpression/document"
	"github.com/smhanov/xpression/esquery"
	"github.com/smhanov/xpression/query"
	"github.com/smhanov/xpression/sqlfilter"
)

// Render parses input with the configured backend and returns the result as
// text. Lex, parse and builder errors are returned as they are so callers can
// inspect them with errors.As.
func (cfg Config) Render(input string, logger logrus.FieldLogger) (string, error) {
	opts := []query.Option{query.WithLogger(logger)}

	switch cfg.Backend {
	case BackendTree:
		node, err := query.Parse(input, traced[query.Node](query.NodeBuilder{}, cfg, logger), opts...)
		if err != nil {
			return "", err
		}
		return node.String(), nil

	case BackendElastic:
		q, err := query.Parse(input, traced[elastic.Query](esquery.Builder{}, cfg, logger), opts...)
		if err != nil {
			return "", err
		}
		src, err := q.Source()
		if err != nil {
			return "", errors.Wrap(err, "building elasticsearch query source")
		}
		data, err := json.MarshalIndent(src, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "encoding elasticsearch query")
		}
		return string(data), nil

	case BackendDocument:
		doc, err := query.Parse(input, traced[*structpb.Value](document.Builder{}, cfg, logger), opts...)
		if err != nil {
			return "", err
		}
		data, err := document.Marshal(doc)
		if err != nil {
			return "", errors.Wrap(err, "encoding filter document")
		}
		return string(data), nil

	case BackendSQL:
		clause, err := query.Parse(input, traced[sqlfilter.Clause](sqlfilter.Builder{}, cfg, logger), opts...)
		if err != nil {
			return "", err
		}
		if cfg.Numbered {
			clause = clause.Numbered()
		}
		args, err := json.Marshal(clause.Args)
		if err != nil {
			return "", errors.Wrap(err, "encoding SQL arguments")
		}
		return fmt.Sprintf("%s\n-- args: %s", clause.SQL, args), nil

	default:
		return "", errors.Errorf("unknown backend %q", cfg.Backend)
	}
}

func traced[E any](builder query.Builder[E], cfg Config, logger logrus.FieldLogger) query.Builder[E] {
	if cfg.Verbose {
		return query.Trace(builder, logger)
	}
	return builder
}
