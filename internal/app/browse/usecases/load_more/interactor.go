package load_more

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/browse/contracts"
	"github.com/light-bringer/storefront-service/internal/app/browse/domain"
)

// Request identifies the view to extend.
type Request struct {
	ViewID string
}

// Response carries the grown page and how many items the call added.
type Response struct {
	Page  domain.Page
	Added int
}

// Interactor handles the load more use case.
type Interactor struct {
	sessions contracts.SessionStore
}

// NewInteractor creates a new load more interactor.
func NewInteractor(sessions contracts.SessionStore) *Interactor {
	return &Interactor{sessions: sessions}
}

// Execute appends the next page. It fails with collection.ErrLoadInProgress
// while another load on the same view is pending, and adds nothing once the
// list is exhausted.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	browser, err := i.sessions.Get(req.ViewID)
	if err != nil {
		return nil, err
	}

	added, err := browser.LoadMore(ctx)
	if err != nil {
		return nil, err
	}

	page := browser.Page()
	page.ViewID = req.ViewID
	return &Response{Page: page, Added: added}, nil
}
