package m_transaction

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the transactions table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates an upsert mutation for a wallet transaction.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName, Columns, []any{
		data.TransactionID,
		data.UserID,
		data.Kind,
		data.Description,
		&data.Amount,
		data.Status,
		data.CreatedAt,
	})
}
