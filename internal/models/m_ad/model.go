package m_ad

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the ads table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates an upsert mutation for an ad.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName, Columns, []any{
		data.AdID,
		data.AdvertiserID,
		data.Title,
		data.Category,
		data.Status,
		&data.Budget,
		&data.RewardPerView,
		data.Priority,
		data.CreatedAt,
	})
}
