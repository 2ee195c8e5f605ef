package repository

import (
	"context"
	"errors"

	"github.com/gizemabali/retaildiscountsapi/internal/domain"
)

// ErrUnavailable is returned when the search index cannot be queried
var ErrUnavailable = errors.New("search index unavailable")

// TermQuery matches documents whose field equals the given value exactly.
type TermQuery struct {
	Field string
	Value string
}

// Query matches documents satisfying any of its term clauses.
type Query struct {
	Should []TermQuery
}

// Term builds a single-clause Query.
func Term(field, value string) Query {
	return Query{Should: []TermQuery{{Field: field, Value: value}}}
}

// SearchIndex is the external index collaborator: paged term search over
// product documents plus a single-document write
type SearchIndex interface {
	// Search runs q against the named index and returns the page of hits
	// starting at offset from, at most size documents.
	Search(ctx context.Context, index string, q Query, from, size int) ([]domain.Product, error)
	// Index writes doc into the named index under the given id (generated
	// when empty) and returns the resulting document id.
	Index(ctx context.Context, index string, doc any, id string) (string, error)
}
