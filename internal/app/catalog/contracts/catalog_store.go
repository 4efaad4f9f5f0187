package contracts

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// CatalogStore fetches the full record set of a collection. Browsing happens
// in memory, so implementations return every visible record in a stable
// source order and leave filtering and sorting to the caller.
type CatalogStore interface {
	// Products returns active, non-archived products priced at the current time.
	Products(ctx context.Context) ([]domain.Product, error)

	// Raffles returns every raffle, soonest ending first.
	Raffles(ctx context.Context) ([]domain.Raffle, error)

	// Plans returns the plans currently on sale.
	Plans(ctx context.Context) ([]domain.Plan, error)

	// Ads returns the campaigns owned by an advertiser.
	Ads(ctx context.Context, advertiserID string) ([]domain.Ad, error)

	// Transactions returns a user's wallet history, newest first.
	Transactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}
