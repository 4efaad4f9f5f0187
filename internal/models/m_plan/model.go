package m_plan

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the plans table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates an upsert mutation for a plan.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName, Columns, []any{
		data.PlanID,
		data.Name,
		data.Operator,
		data.Kind,
		&data.Price,
		data.DataGB,
		data.ValidityDays,
		data.Popular,
		data.Active,
	})
}
