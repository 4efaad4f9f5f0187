package repo

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/browse/contracts"
	"github.com/light-bringer/storefront-service/internal/app/browse/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/collections"
	catalogcontracts "github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/collection"
)

// Catalog opens browsers over the catalog store, one pipeline per collection.
type Catalog struct {
	store       catalogcontracts.CatalogStore
	set         *collections.Set
	delay       collection.DelayFunc
	maxPageSize int
}

// NewCatalog creates a view factory. delay is installed on every window;
// maxPageSize bounds client-chosen page sizes (0 disables the bound).
func NewCatalog(store catalogcontracts.CatalogStore, set *collections.Set, delay collection.DelayFunc, maxPageSize int) contracts.ViewFactory {
	return &Catalog{store: store, set: set, delay: delay, maxPageSize: maxPageSize}
}

// Open creates an idle browser; call Refresh to load its records.
func (c *Catalog) Open(req contracts.OpenRequest) (domain.Browser, error) {
	opts := req.Options
	if c.maxPageSize > 0 && opts.PageSize > c.maxPageSize {
		return nil, fmt.Errorf("%w: %d > %d", domain.ErrPageSizeTooLarge, opts.PageSize, c.maxPageSize)
	}
	if opts.Delay == nil {
		opts.Delay = c.delay
	}

	switch req.Collection {
	case collections.Products:
		return domain.NewBrowser(req.Collection, c.set.Products, collection.SourceFunc[catalog.Product](c.store.Products), opts)
	case collections.Raffles:
		return domain.NewBrowser(req.Collection, c.set.Raffles, collection.SourceFunc[catalog.Raffle](c.store.Raffles), opts)
	case collections.Plans:
		return domain.NewBrowser(req.Collection, c.set.Plans, collection.SourceFunc[catalog.Plan](c.store.Plans), opts)
	case collections.Ads:
		if req.Owner == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrOwnerRequired, req.Collection)
		}
		src := func(ctx context.Context) ([]catalog.Ad, error) {
			return c.store.Ads(ctx, req.Owner)
		}
		return domain.NewBrowser(req.Collection, c.set.Ads, collection.SourceFunc[catalog.Ad](src), opts)
	case collections.Transactions:
		if req.Owner == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrOwnerRequired, req.Collection)
		}
		src := func(ctx context.Context) ([]catalog.Transaction, error) {
			return c.store.Transactions(ctx, req.Owner)
		}
		return domain.NewBrowser(req.Collection, c.set.Transactions, collection.SourceFunc[catalog.Transaction](src), opts)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, req.Collection)
	}
}

// Describe lists the collections and what each can filter and sort by.
func (c *Catalog) Describe() []collections.Description {
	return c.set.Describe()
}
