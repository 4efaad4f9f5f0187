package close_view

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/browse/contracts"
)

// Request identifies the view to close.
type Request struct {
	ViewID string
}

// Interactor handles the close view use case.
type Interactor struct {
	sessions contracts.SessionStore
}

// NewInteractor creates a new close view interactor.
func NewInteractor(sessions contracts.SessionStore) *Interactor {
	return &Interactor{sessions: sessions}
}

// Execute discards the view. Pending loads on it finish without effect.
func (i *Interactor) Execute(_ context.Context, req *Request) error {
	return i.sessions.Remove(req.ViewID)
}
