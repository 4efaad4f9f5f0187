package domain

// PlanKind distinguishes mobile offers.
type PlanKind string

const (
	PlanPrepaid  PlanKind = "prepaid"
	PlanPostpaid PlanKind = "postpaid"
	PlanRecharge PlanKind = "recharge"
)

// Plan is a mobile plan or recharge package.
type Plan struct {
	PlanID       string  `json:"plan_id"`
	Name         string  `json:"name"`
	Operator     string  `json:"operator"`
	Kind         string  `json:"kind"`
	Price        float64 `json:"price"`
	DataGB       float64 `json:"data_gb"`
	ValidityDays int64   `json:"validity_days"`
	Popular      bool    `json:"popular"`
}

// ValidPlanKind reports whether s is a known plan kind.
func ValidPlanKind(s string) bool {
	switch PlanKind(s) {
	case PlanPrepaid, PlanPostpaid, PlanRecharge:
		return true
	}
	return false
}
