package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_ad"
	"github.com/light-bringer/storefront-service/internal/models/m_plan"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/models/m_raffle"
	"github.com/light-bringer/storefront-service/internal/models/m_transaction"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// DefaultMaxRecords caps a single collection fetch.
const DefaultMaxRecords = 5000

// SpannerStore implements CatalogStore for Spanner.
type SpannerStore struct {
	client     *spanner.Client
	clock      clock.Clock
	maxRecords int64
}

// NewSpannerStore creates a Spanner-backed store. A non-positive maxRecords
// uses DefaultMaxRecords.
func NewSpannerStore(client *spanner.Client, clk clock.Clock, maxRecords int64) contracts.CatalogStore {
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}
	return &SpannerStore{client: client, clock: clk, maxRecords: maxRecords}
}

// Products retrieves active, non-archived products, newest first.
func (s *SpannerStore) Products(ctx context.Context) ([]domain.Product, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.Columns...).
		Where(query.Eq(m_product.Status, string(domain.StatusActive))).
		Where(query.IsNull(m_product.ArchivedAt)).
		OrderBy(m_product.CreatedAt, query.Desc).
		OrderBy(m_product.ProductID, query.Asc).
		Limit(s.maxRecords).
		Build()

	now := s.clock.Now()
	return queryAll(ctx, s.client, stmt, "products", func(data *m_product.Data) (domain.Product, error) {
		return productFromData(data, now)
	})
}

// Raffles retrieves every raffle, soonest ending first.
func (s *SpannerStore) Raffles(ctx context.Context) ([]domain.Raffle, error) {
	stmt := query.From(m_raffle.TableName).
		Select(m_raffle.Columns...).
		OrderBy(m_raffle.EndsAt, query.Asc).
		OrderBy(m_raffle.RaffleID, query.Asc).
		Limit(s.maxRecords).
		Build()

	return queryAll(ctx, s.client, stmt, "raffles", infallible(raffleFromData))
}

// Plans retrieves active plans.
func (s *SpannerStore) Plans(ctx context.Context) ([]domain.Plan, error) {
	stmt := query.From(m_plan.TableName).
		Select(m_plan.Columns...).
		Where(query.Eq(m_plan.Active, true)).
		OrderBy(m_plan.PlanID, query.Asc).
		Limit(s.maxRecords).
		Build()

	return queryAll(ctx, s.client, stmt, "plans", infallible(planFromData))
}

// Ads retrieves one advertiser's campaigns, newest first.
func (s *SpannerStore) Ads(ctx context.Context, advertiserID string) ([]domain.Ad, error) {
	if advertiserID == "" {
		return nil, domain.ErrEmptyID
	}
	stmt := query.From(m_ad.TableName).
		Select(m_ad.Columns...).
		Where(query.Eq(m_ad.AdvertiserID, advertiserID)).
		OrderBy(m_ad.CreatedAt, query.Desc).
		OrderBy(m_ad.AdID, query.Asc).
		Limit(s.maxRecords).
		Build()

	return queryAll(ctx, s.client, stmt, "ads", infallible(adFromData))
}

// Transactions retrieves one user's wallet history, newest first.
func (s *SpannerStore) Transactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if userID == "" {
		return nil, domain.ErrEmptyID
	}
	stmt := query.From(m_transaction.TableName).
		Select(m_transaction.Columns...).
		Where(query.Eq(m_transaction.UserID, userID)).
		OrderBy(m_transaction.CreatedAt, query.Desc).
		OrderBy(m_transaction.TransactionID, query.Asc).
		Limit(s.maxRecords).
		Build()

	return queryAll(ctx, s.client, stmt, "transactions", infallible(transactionFromData))
}

func infallible[D, R any](fn func(*D) R) func(*D) (R, error) {
	return func(d *D) (R, error) { return fn(d), nil }
}

// queryAll runs stmt in a single-use read-only transaction and converts every row.
func queryAll[D, R any](ctx context.Context, client *spanner.Client, stmt spanner.Statement, what string, convert func(*D) (R, error)) ([]R, error) {
	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []R
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate %s: %w", what, err)
		}

		var data D
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse %s row: %w", what, err)
		}

		rec, err := convert(&data)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
