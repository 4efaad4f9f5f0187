package testutil

import (
	"context"
	"math/big"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/models/m_transaction"
)

// ProductRow returns an active product priced at cents/100.
func ProductRow(name, category string, cents int64, createdAt time.Time) *m_product.Data {
	return &m_product.Data{
		ProductID:            uuid.NewString(),
		Name:                 name,
		Description:          "Test product description",
		Category:             category,
		BasePriceNumerator:   cents,
		BasePriceDenominator: 100,
		Rating:               4,
		Status:               "active",
		CreatedAt:            createdAt,
	}
}

// WithDiscount adds a discount running from start to end.
func WithDiscount(data *m_product.Data, percent int64, start, end time.Time) *m_product.Data {
	data.DiscountPercent = spanner.NullInt64{Int64: percent, Valid: true}
	data.DiscountStartDate = spanner.NullTime{Time: start, Valid: true}
	data.DiscountEndDate = spanner.NullTime{Time: end, Valid: true}
	return data
}

// CreateTestProducts writes product rows directly to the database.
func CreateTestProducts(t *testing.T, client *spanner.Client, rows ...*m_product.Data) {
	t.Helper()

	model := m_product.NewModel()
	muts := make([]*spanner.Mutation, 0, len(rows))
	for _, data := range rows {
		muts = append(muts, model.InsertMut(data))
	}

	_, err := client.Apply(context.Background(), muts)
	require.NoError(t, err, "failed to create test products")
}

// DeleteTestProduct removes a product row.
func DeleteTestProduct(t *testing.T, client *spanner.Client, productID string) {
	t.Helper()

	_, err := client.Apply(context.Background(), []*spanner.Mutation{m_product.NewModel().DeleteMut(productID)})
	require.NoError(t, err, "failed to delete test product")
}

// CreateTestTransaction writes one wallet transaction and returns its ID.
func CreateTestTransaction(t *testing.T, client *spanner.Client, userID, kind, amount string, createdAt time.Time) string {
	t.Helper()

	value, ok := new(big.Rat).SetString(amount)
	require.True(t, ok, "invalid amount %q", amount)

	data := &m_transaction.Data{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Kind:          kind,
		Description:   "Test transaction",
		Amount:        *value,
		Status:        "completed",
		CreatedAt:     createdAt,
	}

	_, err := client.Apply(context.Background(), []*spanner.Mutation{m_transaction.NewModel().InsertMut(data)})
	require.NoError(t, err, "failed to create test transaction")

	return data.TransactionID
}
