package testutil

import (
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// NewCatalogClock creates a mock clock set to CatalogNow.
func NewCatalogClock() *clock.MockClock {
	return clock.NewMockClock(CatalogNow)
}
