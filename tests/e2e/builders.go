package e2e

import (
	"github.com/light-bringer/storefront-service/internal/app/browse/domain"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/open_view"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/update_view"
	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/collection"
)

// OpenViewBuilder provides a fluent API for building open view requests.
type OpenViewBuilder struct {
	req *open_view.Request
}

// NewOpenView creates a builder for the given collection.
func NewOpenView(name string) *OpenViewBuilder {
	return &OpenViewBuilder{req: &open_view.Request{Collection: name}}
}

func (b *OpenViewBuilder) WithOwner(owner string) *OpenViewBuilder {
	b.req.Owner = owner
	return b
}

func (b *OpenViewBuilder) WithPageSize(n int) *OpenViewBuilder {
	b.req.PageSize = n
	return b
}

func (b *OpenViewBuilder) WithSort(key string) *OpenViewBuilder {
	b.req.Sort = key
	return b
}

func (b *OpenViewBuilder) WithFilter(name, value string) *OpenViewBuilder {
	if b.req.Filters == nil {
		b.req.Filters = collection.Selection{}
	}
	b.req.Filters[name] = value
	return b
}

func (b *OpenViewBuilder) Build() *open_view.Request {
	return b.req
}

// UpdateBuilder provides a fluent API for building update view requests.
type UpdateBuilder struct {
	req *update_view.Request
}

// NewUpdate creates a builder for the given view.
func NewUpdate(viewID string) *UpdateBuilder {
	return &UpdateBuilder{req: &update_view.Request{ViewID: viewID}}
}

func (b *UpdateBuilder) Filter(name, value string) *UpdateBuilder {
	if b.req.Update.Filters == nil {
		b.req.Update.Filters = collection.Selection{}
	}
	b.req.Update.Filters[name] = value
	return b
}

func (b *UpdateBuilder) Search(term string) *UpdateBuilder {
	b.req.Update.Search = &term
	return b
}

func (b *UpdateBuilder) Sort(key string) *UpdateBuilder {
	b.req.Update.Sort = &key
	return b
}

func (b *UpdateBuilder) Mode(m collection.Mode) *UpdateBuilder {
	b.req.Update.Mode = &m
	return b
}

func (b *UpdateBuilder) ClearFilters() *UpdateBuilder {
	b.req.Update.ClearFilters = true
	return b
}

func (b *UpdateBuilder) Reload() *UpdateBuilder {
	b.req.Update.Reload = true
	return b
}

func (b *UpdateBuilder) Build() *update_view.Request {
	return b.req
}

// Products returns the typed items of a products page.
func Products(p *domain.Page) []catalog.Product {
	return p.Items.([]catalog.Product)
}

// Raffles returns the typed items of a raffles page.
func Raffles(p *domain.Page) []catalog.Raffle {
	return p.Items.([]catalog.Raffle)
}

// Transactions returns the typed items of a transactions page.
func Transactions(p *domain.Page) []catalog.Transaction {
	return p.Items.([]catalog.Transaction)
}
