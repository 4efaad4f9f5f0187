package repo

import (
	"github.com/light-bringer/storefront-service/internal/models/m_ad"
	"github.com/light-bringer/storefront-service/internal/models/m_plan"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/models/m_raffle"
	"github.com/light-bringer/storefront-service/internal/models/m_transaction"
)

// Rows is a catalog held as table rows, the shape shared by the Spanner
// tables, the fixture loader and the in-memory store.
type Rows struct {
	Products     []m_product.Data
	Raffles      []m_raffle.Data
	Plans        []m_plan.Data
	Ads          []m_ad.Data
	Transactions []m_transaction.Data
}
