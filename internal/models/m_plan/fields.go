package m_plan

// Field name constants for the plans table.
const (
	TableName = "plans"

	PlanID       = "plan_id"
	Name         = "name"
	Operator     = "operator"
	Kind         = "kind"
	Price        = "price"
	DataGB       = "data_gb"
	ValidityDays = "validity_days"
	Popular      = "popular"
	Active       = "active"
)

// Columns lists the columns read into Data, in struct order.
var Columns = []string{
	PlanID, Name, Operator, Kind, Price, DataGB, ValidityDays, Popular, Active,
}
