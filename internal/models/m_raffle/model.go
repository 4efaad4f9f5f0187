package m_raffle

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the raffles table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates an upsert mutation for a raffle.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName, Columns, []any{
		data.RaffleID,
		data.Title,
		data.Prize,
		data.Category,
		&data.TicketPrice,
		data.TicketsTotal,
		data.TicketsSold,
		data.EndsAt,
		data.Status,
		data.Featured,
		data.CreatedAt,
	})
}
