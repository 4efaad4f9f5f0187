package browse

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/storefront-service/internal/app/browse/queries/get_view"
	"github.com/light-bringer/storefront-service/internal/app/browse/queries/list_collections"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/close_view"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/load_more"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/open_view"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/update_view"
	"github.com/light-bringer/storefront-service/internal/transport/wire"
)

var _ BrowseServiceServer = (*Handler)(nil)

// Handler implements the gRPC BrowseService.
// It's a thin coordinator that delegates to use cases and queries.
type Handler struct {
	// Commands
	openView   *open_view.Interactor
	updateView *update_view.Interactor
	loadMore   *load_more.Interactor
	closeView  *close_view.Interactor

	// Queries
	getView         *get_view.Query
	listCollections *list_collections.Query

	logger *zap.Logger
}

// NewHandler creates a new gRPC browse handler.
func NewHandler(
	openView *open_view.Interactor,
	updateView *update_view.Interactor,
	loadMore *load_more.Interactor,
	closeView *close_view.Interactor,
	getView *get_view.Query,
	listCollections *list_collections.Query,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		openView:        openView,
		updateView:      updateView,
		loadMore:        loadMore,
		closeView:       closeView,
		getView:         getView,
		listCollections: listCollections,
		logger:          logger,
	}
}

// OpenView opens a view and returns its first page.
func (h *Handler) OpenView(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req wire.OpenViewRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, err
	}
	if req.Collection == "" {
		return nil, status.Error(codes.InvalidArgument, "collection is required")
	}

	page, err := h.openView.Execute(ctx, req.ToUseCase())
	if err != nil {
		return nil, h.fail("OpenView", err)
	}
	return encodeStruct(page)
}

// UpdateView applies filter, search, sort or mode changes.
func (h *Handler) UpdateView(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req wire.UpdateViewRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, err
	}
	if req.ViewID == "" {
		return nil, status.Error(codes.InvalidArgument, "view_id is required")
	}

	ucReq, err := req.ToUseCase()
	if err != nil {
		return nil, h.fail("UpdateView", err)
	}
	page, err := h.updateView.Execute(ctx, ucReq)
	if err != nil {
		return nil, h.fail("UpdateView", err)
	}
	return encodeStruct(page)
}

// LoadMore appends the next page of a view.
func (h *Handler) LoadMore(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	viewID, err := viewIDFrom(in)
	if err != nil {
		return nil, err
	}

	resp, err := h.loadMore.Execute(ctx, &load_more.Request{ViewID: viewID})
	if err != nil {
		return nil, h.fail("LoadMore", err)
	}
	return encodeStruct(wire.LoadMoreResponse{Page: resp.Page, Added: resp.Added})
}

// GetView returns the current page of a view.
func (h *Handler) GetView(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	viewID, err := viewIDFrom(in)
	if err != nil {
		return nil, err
	}

	page, err := h.getView.Execute(ctx, &get_view.Request{ViewID: viewID})
	if err != nil {
		return nil, h.fail("GetView", err)
	}
	return encodeStruct(page)
}

// CloseView discards a view.
func (h *Handler) CloseView(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	viewID, err := viewIDFrom(in)
	if err != nil {
		return nil, err
	}

	if err := h.closeView.Execute(ctx, &close_view.Request{ViewID: viewID}); err != nil {
		return nil, h.fail("CloseView", err)
	}
	return encodeStruct(map[string]any{"view_id": viewID, "closed": true})
}

// ListCollections describes every collection's filters and sorts.
func (h *Handler) ListCollections(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return encodeStruct(wire.CollectionsResponse{Collections: h.listCollections.Execute(ctx)})
}

func viewIDFrom(in *structpb.Struct) (string, error) {
	var req wire.ViewRequest
	if err := decodeStruct(in, &req); err != nil {
		return "", err
	}
	if req.ViewID == "" {
		return "", status.Error(codes.InvalidArgument, "view_id is required")
	}
	return req.ViewID, nil
}

func (h *Handler) fail(method string, err error) error {
	st := mapDomainErrorToGRPC(err)
	if status.Code(st) == codes.Internal {
		h.logger.Error("browse call failed", zap.String("method", method), zap.Error(err))
	}
	return st
}
