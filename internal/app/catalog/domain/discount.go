package domain

import (
	"fmt"
	"math/big"
	"time"
)

// Discount represents a time-bound percentage discount on a product.
type Discount struct {
	percentage int64
	startDate  time.Time
	endDate    time.Time
	multiplier *big.Rat
}

// NewDiscount creates a new Discount with validation.
func NewDiscount(percentage int64, startDate, endDate time.Time) (*Discount, error) {
	if percentage < 0 || percentage > 100 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDiscountPercent, percentage)
	}
	if !endDate.After(startDate) {
		return nil, ErrInvalidDiscountPeriod
	}

	return &Discount{
		percentage: percentage,
		startDate:  startDate.UTC(),
		endDate:    endDate.UTC(),
		multiplier: big.NewRat(percentage, 100),
	}, nil
}

// Percentage returns the discount percentage.
func (d *Discount) Percentage() int64 {
	return d.percentage
}

// IsValidAt checks if the discount is valid at the given time.
// The discount period is inclusive on both ends.
func (d *Discount) IsValidAt(t time.Time) bool {
	return !t.Before(d.startDate) && !t.After(d.endDate)
}

// Apply returns price minus the discount.
func (d *Discount) Apply(price *Money) *Money {
	return price.Subtract(price.MultiplyByRat(d.multiplier))
}
