package open_view

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/browse/contracts"
	"github.com/light-bringer/storefront-service/internal/app/browse/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/collection"
)

// Request contains the data needed to open a view.
type Request struct {
	Collection string
	Owner      string
	PageSize   int // 0 uses the configured default
	Mode       string
	Sort       string
	Filters    collection.Selection
}

// Interactor handles the open view use case.
type Interactor struct {
	factory         contracts.ViewFactory
	sessions        contracts.SessionStore
	defaultPageSize int
	logger          *zap.Logger
}

// NewInteractor creates a new open view interactor.
func NewInteractor(
	factory contracts.ViewFactory,
	sessions contracts.SessionStore,
	defaultPageSize int,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		factory:         factory,
		sessions:        sessions,
		defaultPageSize: defaultPageSize,
		logger:          logger,
	}
}

// Execute opens a view, registers it and loads its records. A failed load
// still returns the registered view in the failed state so the client can
// retry with a reload.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Page, error) {
	if req.Collection == "" {
		return nil, fmt.Errorf("%w: collection is required", domain.ErrUnknownCollection)
	}
	mode, err := collection.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = i.defaultPageSize
	}

	browser, err := i.factory.Open(contracts.OpenRequest{
		Collection: req.Collection,
		Owner:      req.Owner,
		Options: collection.ViewOptions{
			PageSize: pageSize,
			Mode:     mode,
			Sort:     req.Sort,
			Filters:  req.Filters,
		},
	})
	if err != nil {
		return nil, err
	}

	id, err := i.sessions.Add(browser)
	if err != nil {
		return nil, err
	}

	if err := browser.Refresh(ctx); err != nil {
		i.logger.Warn("initial load failed",
			zap.String("view_id", id),
			zap.String("collection", req.Collection),
			zap.Error(err),
		)
	}

	page := browser.Page()
	page.ViewID = id
	return &page, nil
}
