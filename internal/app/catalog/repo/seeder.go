package repo

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/models/m_ad"
	"github.com/light-bringer/storefront-service/internal/models/m_plan"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/models/m_raffle"
	"github.com/light-bringer/storefront-service/internal/models/m_transaction"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// SeedBatchSize keeps each seed commit well under Spanner's mutation limit.
const SeedBatchSize = 500

// SeedPlan builds upsert mutations for every row.
func SeedPlan(rows *Rows) *committer.CommitPlan {
	plan := committer.NewPlan()

	products := m_product.NewModel()
	for i := range rows.Products {
		plan.Add(products.InsertMut(&rows.Products[i]))
	}
	raffles := m_raffle.NewModel()
	for i := range rows.Raffles {
		plan.Add(raffles.InsertMut(&rows.Raffles[i]))
	}
	plans := m_plan.NewModel()
	for i := range rows.Plans {
		plan.Add(plans.InsertMut(&rows.Plans[i]))
	}
	ads := m_ad.NewModel()
	for i := range rows.Ads {
		plan.Add(ads.InsertMut(&rows.Ads[i]))
	}
	txs := m_transaction.NewModel()
	for i := range rows.Transactions {
		plan.Add(txs.InsertMut(&rows.Transactions[i]))
	}

	return plan
}

// Seed upserts rows in batches of SeedBatchSize and returns the number of rows
// written. Each batch commits on its own, so a failure can leave earlier
// batches in place; rows are upserts, so running Seed again completes it.
func Seed(ctx context.Context, c *committer.Committer, rows *Rows) (int, error) {
	written, err := c.ApplyInBatches(ctx, SeedPlan(rows), SeedBatchSize)
	if err != nil {
		return written, fmt.Errorf("failed to seed catalog: %w", err)
	}
	return written, nil
}
