package testutil

import (
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-service/internal/config"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/services"
)

// CatalogNow is inside the discount windows of the demo fixtures.
var CatalogNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

// RepoRoot returns the module root directory.
func RepoRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

// DemoRows loads configs/fixtures.yaml.
func DemoRows(t *testing.T) *repo.Rows {
	t.Helper()

	rows, err := repo.LoadFixtures(filepath.Join(RepoRoot(), "configs", "fixtures.yaml"))
	require.NoError(t, err, "failed to load demo fixtures")
	return rows
}

// TestConfig returns a valid configuration with no load latency and no rate
// limiting.
func TestConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Source: config.SourceConfig{
			Kind:       config.SourceMemory,
			Fixtures:   filepath.Join(RepoRoot(), "configs", "fixtures.yaml"),
			MaxRecords: repo.DefaultMaxRecords,
		},
		Views: config.ViewsConfig{
			DefaultPageSize: 12,
			MaxPageSize:     100,
			IdleTTL:         30 * time.Minute,
			MaxOpen:         100,
			SweepInterval:   time.Minute,
		},
		Log: config.LogConfig{Level: "debug", Format: "json"},
	}
}

// NewMemoryServices wires the whole service over the demo fixtures.
func NewMemoryServices(t *testing.T, cfg *config.Config, clk clock.Clock) *services.ServiceOptions {
	t.Helper()

	if cfg == nil {
		cfg = TestConfig()
	}
	store := repo.NewMemoryStore(DemoRows(t), clk)
	return services.NewWithStore(cfg, store, clk, zap.NewNop())
}
