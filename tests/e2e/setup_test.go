package e2e

import (
	"testing"

	"github.com/light-bringer/storefront-service/internal/config"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/services"
	"github.com/light-bringer/storefront-service/tests/testutil"
)

// Suite holds the wired service and its controllable clock.
type Suite struct {
	*services.ServiceOptions
	Clock *clock.MockClock
}

// setupTest wires the whole service over the demo fixtures.
func setupTest(t *testing.T, tweak func(*config.Config)) *Suite {
	t.Helper()

	cfg := testutil.TestConfig()
	if tweak != nil {
		tweak(cfg)
	}
	clk := testutil.NewCatalogClock()

	return &Suite{
		ServiceOptions: testutil.NewMemoryServices(t, cfg, clk),
		Clock:          clk,
	}
}
