package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/browse/domain"
	"github.com/light-bringer/storefront-service/internal/app/browse/queries/get_view"
	"github.com/light-bringer/storefront-service/internal/app/browse/queries/list_collections"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/close_view"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/load_more"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/open_view"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/update_view"
	"github.com/light-bringer/storefront-service/internal/pkg/collection"
	"github.com/light-bringer/storefront-service/internal/transport/wire"
)

const maxBodyBytes = 64 << 10

// BrowseHandler serves the browse use cases as JSON over HTTP.
type BrowseHandler struct {
	openView        *open_view.Interactor
	updateView      *update_view.Interactor
	loadMore        *load_more.Interactor
	closeView       *close_view.Interactor
	getView         *get_view.Query
	listCollections *list_collections.Query
	logger          *zap.Logger
}

// NewBrowseHandler creates a new HTTP browse handler.
func NewBrowseHandler(
	openView *open_view.Interactor,
	updateView *update_view.Interactor,
	loadMore *load_more.Interactor,
	closeView *close_view.Interactor,
	getView *get_view.Query,
	listCollections *list_collections.Query,
	logger *zap.Logger,
) *BrowseHandler {
	return &BrowseHandler{
		openView:        openView,
		updateView:      updateView,
		loadMore:        loadMore,
		closeView:       closeView,
		getView:         getView,
		listCollections: listCollections,
		logger:          logger,
	}
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListCollections handles GET /api/v1/collections.
func (h *BrowseHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, wire.CollectionsResponse{Collections: h.listCollections.Execute(r.Context())})
}

// OpenView handles POST /api/v1/views.
func (h *BrowseHandler) OpenView(w http.ResponseWriter, r *http.Request) {
	var req wire.OpenViewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Collection == "" {
		writeError(w, http.StatusBadRequest, "collection is required")
		return
	}

	page, err := h.openView.Execute(r.Context(), req.ToUseCase())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, page)
}

// GetView handles GET /api/v1/views/{id}.
func (h *BrowseHandler) GetView(w http.ResponseWriter, r *http.Request) {
	page, err := h.getView.Execute(r.Context(), &get_view.Request{ViewID: r.PathValue("id")})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// UpdateView handles PATCH /api/v1/views/{id}.
func (h *BrowseHandler) UpdateView(w http.ResponseWriter, r *http.Request) {
	var req wire.UpdateViewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ViewID = r.PathValue("id")

	ucReq, err := req.ToUseCase()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	page, err := h.updateView.Execute(r.Context(), ucReq)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// LoadMore handles POST /api/v1/views/{id}/more.
func (h *BrowseHandler) LoadMore(w http.ResponseWriter, r *http.Request) {
	resp, err := h.loadMore.Execute(r.Context(), &load_more.Request{ViewID: r.PathValue("id")})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wire.LoadMoreResponse{Page: resp.Page, Added: resp.Added})
}

// CloseView handles DELETE /api/v1/views/{id}.
func (h *BrowseHandler) CloseView(w http.ResponseWriter, r *http.Request) {
	if err := h.closeView.Execute(r.Context(), &close_view.Request{ViewID: r.PathValue("id")}); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BrowseHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == StatusClientClosedRequest {
		h.logger.Debug("client went away", zap.String("path", r.URL.Path), zap.Error(err))
	}
	if code == http.StatusInternalServerError {
		h.logger.Error("browse request failed", zap.String("path", r.URL.Path), zap.Error(err))
		msg = "internal server error"
	}
	writeError(w, code, msg)
}

// StatusClientClosedRequest is reported when the caller cancelled the request.
const StatusClientClosedRequest = 499

// statusFor maps browse and collection errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrViewNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrTooManyViews):
		return http.StatusServiceUnavailable
	case errors.Is(err, collection.ErrLoadInProgress):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownCollection),
		errors.Is(err, domain.ErrOwnerRequired),
		errors.Is(err, domain.ErrPageSizeTooLarge),
		errors.Is(err, collection.ErrUnknownFilter),
		errors.Is(err, collection.ErrUnknownSort),
		errors.Is(err, collection.ErrInvalidMode),
		errors.Is(err, collection.ErrInvalidPageSize),
		errors.Is(err, collection.ErrNoSearchFilter):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg})
}
