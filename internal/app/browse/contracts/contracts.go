package contracts

import (
	"github.com/light-bringer/storefront-service/internal/app/browse/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/collections"
	"github.com/light-bringer/storefront-service/internal/pkg/collection"
)

// OpenRequest selects a collection and the initial view state.
type OpenRequest struct {
	Collection string
	// Owner scopes per-account collections: the advertiser for ads, the
	// user for transactions. Ignored elsewhere.
	Owner   string
	Options collection.ViewOptions
}

// ViewFactory creates browsers over the catalog.
type ViewFactory interface {
	Open(req OpenRequest) (domain.Browser, error)
	Describe() []collections.Description
}

// SessionStore keeps open browsers between requests.
type SessionStore interface {
	Add(b domain.Browser) (string, error)
	Get(id string) (domain.Browser, error)
	Remove(id string) error
	Len() int
}
