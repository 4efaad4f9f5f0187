package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// RouterConfig tunes the middleware around the JSON API.
type RouterConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

// NewRouter mounts the browse API and health check behind access logging,
// panic recovery and per-client rate limiting.
func NewRouter(h *BrowseHandler, cfg RouterConfig, clk clock.Clock, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /api/v1/collections", h.ListCollections)
	mux.HandleFunc("POST /api/v1/views", h.OpenView)
	mux.HandleFunc("GET /api/v1/views/{id}", h.GetView)
	mux.HandleFunc("PATCH /api/v1/views/{id}", h.UpdateView)
	mux.HandleFunc("DELETE /api/v1/views/{id}", h.CloseView)
	mux.HandleFunc("POST /api/v1/views/{id}/more", h.LoadMore)

	var handler http.Handler = mux
	if cfg.RequestsPerSecond > 0 {
		handler = NewClientLimiter(cfg.RequestsPerSecond, cfg.BurstSize, clk).Middleware(handler)
	}
	handler = Recover(logger, handler)
	handler = AccessLog(logger, handler)
	return handler
}
