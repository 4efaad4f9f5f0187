package update_view

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/browse/contracts"
	"github.com/light-bringer/storefront-service/internal/app/browse/domain"
)

// Request contains the view to change and the changes.
type Request struct {
	ViewID string
	Update domain.Update
}

// Interactor handles the update view use case.
type Interactor struct {
	sessions contracts.SessionStore
	logger   *zap.Logger
}

// NewInteractor creates a new update view interactor.
func NewInteractor(sessions contracts.SessionStore, logger *zap.Logger) *Interactor {
	return &Interactor{sessions: sessions, logger: logger}
}

// Execute applies the update and returns the recomputed first page.
// A rejected update leaves the view as it was.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Page, error) {
	browser, err := i.sessions.Get(req.ViewID)
	if err != nil {
		return nil, err
	}

	if err := browser.Apply(req.Update); err != nil {
		return nil, err
	}

	if req.Update.Reload {
		if err := browser.Refresh(ctx); err != nil {
			i.logger.Warn("reload failed",
				zap.String("view_id", req.ViewID),
				zap.String("collection", browser.Collection()),
				zap.Error(err),
			)
		}
	}

	page := browser.Page()
	page.ViewID = req.ViewID
	return &page, nil
}
