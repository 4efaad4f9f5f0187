package m_plan

import "math/big"

// Data represents the database model for the plans table.
type Data struct {
	PlanID       string  `spanner:"plan_id"`
	Name         string  `spanner:"name"`
	Operator     string  `spanner:"operator"`
	Kind         string  `spanner:"kind"`
	Price        big.Rat `spanner:"price"`
	DataGB       float64 `spanner:"data_gb"`
	ValidityDays int64   `spanner:"validity_days"`
	Popular      bool    `spanner:"popular"`
	Active       bool    `spanner:"active"`
}
