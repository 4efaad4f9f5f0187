// Package wire holds the JSON request and response bodies shared by the gRPC
// and HTTP transports, and their conversion to use case requests.
package wire

import (
	"github.com/light-bringer/storefront-service/internal/app/browse/domain"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/open_view"
	"github.com/light-bringer/storefront-service/internal/app/browse/usecases/update_view"
	"github.com/light-bringer/storefront-service/internal/app/catalog/collections"
	"github.com/light-bringer/storefront-service/internal/pkg/collection"
)

// OpenViewRequest opens a view over one collection.
type OpenViewRequest struct {
	Collection string            `json:"collection"`
	Owner      string            `json:"owner,omitempty"`
	PageSize   int               `json:"page_size,omitempty"`
	Mode       string            `json:"mode,omitempty"`
	Sort       string            `json:"sort,omitempty"`
	Filters    map[string]string `json:"filters,omitempty"`
}

// ToUseCase converts the body to an open view request.
func (r OpenViewRequest) ToUseCase() *open_view.Request {
	return &open_view.Request{
		Collection: r.Collection,
		Owner:      r.Owner,
		PageSize:   r.PageSize,
		Mode:       r.Mode,
		Sort:       r.Sort,
		Filters:    collection.Selection(r.Filters),
	}
}

// UpdateViewRequest changes filters, search, sort or mode of a view.
// Absent fields are left as they are.
type UpdateViewRequest struct {
	ViewID       string            `json:"view_id"`
	ClearFilters bool              `json:"clear_filters,omitempty"`
	Filters      map[string]string `json:"filters,omitempty"`
	Search       *string           `json:"search,omitempty"`
	Sort         *string           `json:"sort,omitempty"`
	Mode         *string           `json:"mode,omitempty"`
	Reload       bool              `json:"reload,omitempty"`
}

// ToUseCase converts the body to an update view request. It fails only on
// an invalid mode name.
func (r UpdateViewRequest) ToUseCase() (*update_view.Request, error) {
	u := domain.Update{
		ClearFilters: r.ClearFilters,
		Filters:      collection.Selection(r.Filters),
		Search:       r.Search,
		Sort:         r.Sort,
		Reload:       r.Reload,
	}
	if r.Mode != nil {
		mode, err := collection.ParseMode(*r.Mode)
		if err != nil {
			return nil, err
		}
		u.Mode = &mode
	}
	return &update_view.Request{ViewID: r.ViewID, Update: u}, nil
}

// ViewRequest names an open view.
type ViewRequest struct {
	ViewID string `json:"view_id"`
}

// LoadMoreResponse is the grown page plus the number of items appended.
type LoadMoreResponse struct {
	domain.Page
	Added int `json:"added"`
}

// CollectionsResponse lists what every collection can filter and sort by.
type CollectionsResponse struct {
	Collections []collections.Description `json:"collections"`
}
