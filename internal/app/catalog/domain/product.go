package domain

import (
	"time"
)

// ProductStatus represents the lifecycle status of a product
type ProductStatus string

const (
	StatusInactive ProductStatus = "inactive"
	StatusActive   ProductStatus = "active"
	StatusArchived ProductStatus = "archived"
)

// Product is a catalog listing as shown to shoppers.
type Product struct {
	ProductID       string    `json:"product_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	BasePrice       float64   `json:"base_price"`
	EffectivePrice  float64   `json:"effective_price"`
	DiscountPercent *int64    `json:"discount_percent,omitempty"`
	DiscountActive  bool      `json:"discount_active"`
	Rating          float64   `json:"rating"`
	Featured        bool      `json:"featured"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// PriceProduct fills the price fields of p from its base price and an optional
// discount evaluated at now.
func PriceProduct(p *Product, base *Money, discount *Discount, now time.Time) {
	p.BasePrice = base.Float64()
	p.EffectivePrice = p.BasePrice
	p.DiscountPercent = nil
	p.DiscountActive = false

	if discount != nil && discount.IsValidAt(now) {
		pct := discount.Percentage()
		p.DiscountPercent = &pct
		p.DiscountActive = true
		p.EffectivePrice = discount.Apply(base).Float64()
	}
}
