package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates an upsert mutation for a product. updated_at is set to
// the commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]any{
			data.ProductID,
			data.Name,
			data.Description,
			data.Category,
			data.BasePriceNumerator,
			data.BasePriceDenominator,
			data.DiscountPercent,
			data.DiscountStartDate,
			data.DiscountEndDate,
			data.Rating,
			data.Featured,
			data.Status,
			data.CreatedAt,
			spanner.CommitTimestamp,
			data.ArchivedAt,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a product (hard delete).
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
