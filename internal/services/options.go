package services

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/browse/queries/get_view"
	"github.com/light-bringer/storefront-service/internal/app/browse/queries/list_collections"
	browserepo "github.com/light-bringer/storefront-service/internal/app/browse/repo"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/close_view"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/load_more"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/open_view"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/update_view"
	"github.com/light-bringer/storefront-service/internal/app/catalog/collections"
	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	catalogrepo "github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-service/internal/config"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/collection"
	"github.com/light-bringer/storefront-service/internal/transport/grpc/browse"
	httptransport "github.com/light-bringer/storefront-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Sessions      *browserepo.SessionStore
	BrowseHandler *browse.Handler
	HTTPHandler   http.Handler

	// Use cases, exposed for in-process callers and tests.
	OpenView        *open_view.Interactor
	UpdateView      *update_view.Interactor
	LoadMore        *load_more.Interactor
	CloseView       *close_view.Interactor
	GetView         *get_view.Query
	ListCollections *list_collections.Query
}

// NewServiceOptions creates the catalog store selected by cfg.Source and
// wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ServiceOptions, error) {
	// 1. Create infrastructure components
	clk := clock.NewRealClock()

	// 2. Create the catalog store
	var (
		store         contracts.CatalogStore
		spannerClient *spanner.Client
	)
	switch cfg.Source.Kind {
	case config.SourceSpanner:
		client, err := spanner.NewClient(ctx, cfg.Source.SpannerDatabase)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		spannerClient = client
		store = catalogrepo.NewSpannerStore(client, clk, cfg.Source.MaxRecords)
	default:
		rows, err := catalogrepo.LoadFixtures(cfg.Source.Fixtures)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog fixtures: %w", err)
		}
		store = catalogrepo.NewMemoryStore(rows, clk)
	}

	opts := NewWithStore(cfg, store, clk, logger)
	opts.SpannerClient = spannerClient

	logger.Info("catalog store ready", zap.String("source", cfg.Source.Kind))
	return opts, nil
}

// NewWithStore wires the browse service over an existing catalog store.
func NewWithStore(cfg *config.Config, store contracts.CatalogStore, clk clock.Clock, logger *zap.Logger) *ServiceOptions {
	// 1. Create collection pipelines and repositories
	set := collections.New(clk)
	catalog := browserepo.NewCatalog(store, set, collection.Latency(clk, cfg.Views.LoadLatency), cfg.Views.MaxPageSize)
	sessions := browserepo.NewSessionStore(clk, cfg.Views.IdleTTL, cfg.Views.MaxOpen)

	// 2. Create command use cases
	openView := open_view.NewInteractor(catalog, sessions, cfg.Views.DefaultPageSize, logger)
	updateView := update_view.NewInteractor(sessions, logger)
	loadMore := load_more.NewInteractor(sessions)
	closeView := close_view.NewInteractor(sessions)

	// 3. Create query use cases
	getView := get_view.NewQuery(sessions)
	listCollections := list_collections.NewQuery(catalog)

	// 4. Create transport handlers
	grpcHandler := browse.NewHandler(openView, updateView, loadMore, closeView, getView, listCollections, logger)
	httpHandler := httptransport.NewRouter(
		httptransport.NewBrowseHandler(openView, updateView, loadMore, closeView, getView, listCollections, logger),
		httptransport.RouterConfig{
			RequestsPerSecond: cfg.RateLimiter.RequestsPerSecond,
			BurstSize:         cfg.RateLimiter.BurstSize,
		},
		clk,
		logger,
	)

	return &ServiceOptions{
		Sessions:        sessions,
		BrowseHandler:   grpcHandler,
		HTTPHandler:     httpHandler,
		OpenView:        openView,
		UpdateView:      updateView,
		LoadMore:        loadMore,
		CloseView:       closeView,
		GetView:         getView,
		ListCollections: listCollections,
	}
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
