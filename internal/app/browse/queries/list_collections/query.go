package list_collections

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/browse/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/collections"
)

// Query lists the browsable collections.
type Query struct {
	factory contracts.ViewFactory
}

// NewQuery creates a new list collections query.
func NewQuery(factory contracts.ViewFactory) *Query {
	return &Query{factory: factory}
}

// Execute returns every collection with its filters and sorts.
func (q *Query) Execute(_ context.Context) []collections.Description {
	return q.factory.Describe()
}
