package get_view

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/browse/contracts"
	"github.com/light-bringer/storefront-service/internal/app/browse/domain"
)

// Request contains the view ID to retrieve.
type Request struct {
	ViewID string
}

// Query handles the get view query.
type Query struct {
	sessions contracts.SessionStore
}

// NewQuery creates a new get view query.
func NewQuery(sessions contracts.SessionStore) *Query {
	return &Query{sessions: sessions}
}

// Execute returns the current page of a view.
func (q *Query) Execute(_ context.Context, req *Request) (*domain.Page, error) {
	browser, err := q.sessions.Get(req.ViewID)
	if err != nil {
		return nil, err
	}
	page := browser.Page()
	page.ViewID = req.ViewID
	return &page, nil
}
