//go:build integration

package integration

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/tests/testutil"
)

func TestSeed_DemoCatalog(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	rows := testutil.DemoRows(t)

	written, err := repo.Seed(ctx, committer.NewCommitter(client), rows)
	require.NoError(t, err)
	assert.Equal(t, len(rows.Products)+len(rows.Raffles)+len(rows.Plans)+len(rows.Ads)+len(rows.Transactions), written)

	testutil.AssertRowCount(t, client, "products", len(rows.Products))
	testutil.AssertRowCount(t, client, "transactions", len(rows.Transactions))

	t.Run("spanner and memory stores agree", func(t *testing.T) {
		clk := testutil.NewCatalogClock()
		spannerStore := repo.NewSpannerStore(client, clk, 0)
		memoryStore := repo.NewMemoryStore(rows, clk)

		fromSpanner, err := spannerStore.Products(ctx)
		require.NoError(t, err)
		fromMemory, err := memoryStore.Products(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, productIDs(fromMemory), productIDs(fromSpanner))

		txSpanner, err := spannerStore.Transactions(ctx, "user-2")
		require.NoError(t, err)
		txMemory, err := memoryStore.Transactions(ctx, "user-2")
		require.NoError(t, err)
		sort.Slice(txMemory, func(i, j int) bool { return txMemory[i].CreatedAt.After(txMemory[j].CreatedAt) })
		require.Len(t, txSpanner, len(txMemory))
		for i := range txMemory {
			assert.Equal(t, txMemory[i].Amount, txSpanner[i].Amount)
		}
	})

	t.Run("seeding twice is idempotent", func(t *testing.T) {
		_, err := repo.Seed(ctx, committer.NewCommitter(client), rows)
		require.NoError(t, err)
		testutil.AssertRowCount(t, client, "products", len(rows.Products))
	})
}

func TestSpannerStore_Products(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	store := repo.NewSpannerStore(client, clock.NewMockClock(now), 0)

	older := testutil.ProductRow("Older", "home", 10000, now.Add(-48*time.Hour))
	newer := testutil.WithDiscount(
		testutil.ProductRow("Newer", "home", 10000, now.Add(-time.Hour)),
		20, now.Add(-time.Hour), now.Add(24*time.Hour),
	)
	inactive := testutil.ProductRow("Hidden", "home", 500, now)
	inactive.Status = string(domain.StatusInactive)
	archived := testutil.ProductRow("Gone", "home", 500, now)
	archived.ArchivedAt.Valid = true
	archived.ArchivedAt.Time = now
	testutil.CreateTestProducts(t, client, older, newer, inactive, archived)

	products, err := store.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, newer.ProductID, products[0].ProductID, "newest first")
	assert.Equal(t, 100.0, products[0].BasePrice)
	assert.Equal(t, 80.0, products[0].EffectivePrice)
	assert.True(t, products[0].DiscountActive)
	assert.Equal(t, 100.0, products[1].EffectivePrice)

	t.Run("deleted rows disappear", func(t *testing.T) {
		testutil.DeleteTestProduct(t, client, older.ProductID)
		products, err := store.Products(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		testutil.AssertRowCount(t, client, m_product.TableName, 3)
	})
}

func TestSpannerStore_MaxRecords(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()
	for i := range 5 {
		testutil.CreateTestTransaction(t, client, "user-9", "credit", "1.50", now.Add(time.Duration(i)*time.Minute))
	}

	store := repo.NewSpannerStore(client, clock.NewRealClock(), 3)
	txs, err := store.Transactions(ctx, "user-9")
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, 1.5, txs[0].Amount)
	assert.True(t, txs[0].CreatedAt.After(txs[1].CreatedAt))

	_, err = store.Transactions(ctx, "")
	assert.ErrorIs(t, err, domain.ErrEmptyID)
}

func productIDs(products []domain.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ProductID
	}
	return ids
}
