package domain

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/pkg/collection"
)

// Browser is a view with its record type erased, so sessions over different
// collections can live in one registry.
type Browser interface {
	Collection() string
	Refresh(ctx context.Context) error
	Apply(u Update) error
	LoadMore(ctx context.Context) (int, error)
	Page() Page
}

type browser[T any] struct {
	name     string
	pipeline *collection.Pipeline[T]
	view     *collection.View[T]
	source   collection.Source[T]
}

// NewBrowser wraps a typed view. src is fetched on Refresh.
func NewBrowser[T any](name string, p *collection.Pipeline[T], src collection.Source[T], opts collection.ViewOptions) (Browser, error) {
	view, err := collection.NewView(p, opts)
	if err != nil {
		return nil, err
	}
	return &browser[T]{name: name, pipeline: p, view: view, source: src}, nil
}

func (b *browser[T]) Collection() string { return b.name }

func (b *browser[T]) Refresh(ctx context.Context) error {
	return b.view.Refresh(ctx, b.source)
}

// Apply validates the whole update before touching the view, so a bad field
// leaves the view unchanged.
func (b *browser[T]) Apply(u Update) error {
	if err := b.validate(u); err != nil {
		return err
	}

	if u.ClearFilters {
		b.view.ClearFilters()
	}
	if len(u.Filters) > 0 {
		if err := b.view.SetFilters(u.Filters); err != nil {
			return err
		}
	}
	if u.Search != nil {
		if err := b.view.SetSearch(*u.Search); err != nil {
			return err
		}
	}
	if u.Sort != nil {
		if err := b.view.SetSort(*u.Sort); err != nil {
			return err
		}
	}
	if u.Mode != nil {
		if err := b.view.SetMode(*u.Mode); err != nil {
			return err
		}
	}
	return nil
}

func (b *browser[T]) validate(u Update) error {
	for name := range u.Filters {
		if !b.pipeline.HasFilter(name) {
			return fmt.Errorf("%w: %s", collection.ErrUnknownFilter, name)
		}
	}
	if u.Search != nil && !b.pipeline.HasFilter(collection.SearchFilter) {
		return collection.ErrNoSearchFilter
	}
	if u.Sort != nil && !b.pipeline.HasSort(*u.Sort) {
		return fmt.Errorf("%w: %s", collection.ErrUnknownSort, *u.Sort)
	}
	if u.Mode != nil {
		if _, err := collection.ParseMode(string(*u.Mode)); err != nil {
			return err
		}
	}
	return nil
}

func (b *browser[T]) LoadMore(ctx context.Context) (int, error) {
	return b.view.LoadMore(ctx)
}

func (b *browser[T]) Page() Page {
	snap := b.view.Snapshot()

	items := snap.Items
	if items == nil {
		items = []T{}
	}
	page := Page{
		Collection:   b.name,
		Items:        items,
		Total:        snap.Total,
		Materialized: snap.Materialized,
		PageSize:     snap.PageSize,
		HasMore:      snap.HasMore,
		Loading:      snap.Loading,
		Sort:         snap.Sort,
		Filters:      snap.Filters,
		Mode:         snap.Mode,
		State:        snap.State,
		Facets:       snap.Facets,
	}
	if snap.Err != nil {
		page.Error = snap.Err.Error()
	}
	return page
}
