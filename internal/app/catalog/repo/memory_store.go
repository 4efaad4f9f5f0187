package repo

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// MemoryStore serves a catalog held in memory, typically loaded from a
// fixture file. Records keep their fixture order. It is read-only and safe for
// concurrent use.
type MemoryStore struct {
	rows  *Rows
	clock clock.Clock
}

// NewMemoryStore creates a store over rows. clk decides which discounts are live.
func NewMemoryStore(rows *Rows, clk clock.Clock) contracts.CatalogStore {
	if rows == nil {
		rows = &Rows{}
	}
	return &MemoryStore{rows: rows, clock: clk}
}

// Products returns active, non-archived products.
func (s *MemoryStore) Products(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := make([]domain.Product, 0, len(s.rows.Products))
	for i := range s.rows.Products {
		data := &s.rows.Products[i]
		if data.Status != string(domain.StatusActive) || data.ArchivedAt.Valid {
			continue
		}
		p, err := productFromData(data, now)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Raffles returns every raffle.
func (s *MemoryStore) Raffles(ctx context.Context) ([]domain.Raffle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Raffle, 0, len(s.rows.Raffles))
	for i := range s.rows.Raffles {
		out = append(out, raffleFromData(&s.rows.Raffles[i]))
	}
	return out, nil
}

// Plans returns active plans.
func (s *MemoryStore) Plans(ctx context.Context) ([]domain.Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Plan, 0, len(s.rows.Plans))
	for i := range s.rows.Plans {
		if s.rows.Plans[i].Active {
			out = append(out, planFromData(&s.rows.Plans[i]))
		}
	}
	return out, nil
}

// Ads returns the campaigns of one advertiser.
func (s *MemoryStore) Ads(ctx context.Context, advertiserID string) ([]domain.Ad, error) {
	if advertiserID == "" {
		return nil, domain.ErrEmptyID
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []domain.Ad
	for i := range s.rows.Ads {
		if s.rows.Ads[i].AdvertiserID == advertiserID {
			out = append(out, adFromData(&s.rows.Ads[i]))
		}
	}
	return out, nil
}

// Transactions returns the wallet history of one user.
func (s *MemoryStore) Transactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if userID == "" {
		return nil, domain.ErrEmptyID
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []domain.Transaction
	for i := range s.rows.Transactions {
		if s.rows.Transactions[i].UserID == userID {
			out = append(out, transactionFromData(&s.rows.Transactions[i]))
		}
	}
	return out, nil
}
