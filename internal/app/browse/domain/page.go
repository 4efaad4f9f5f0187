package domain

import (
	"github.com/light-bringer/storefront-service/internal/pkg/collection"
)

// Page is what a client renders for one view: the materialized items plus
// the state needed to draw filters, sort selector and the load-more control.
type Page struct {
	ViewID       string                      `json:"view_id"`
	Collection   string                      `json:"collection"`
	Items        any                         `json:"items"`
	Total        int                         `json:"total"`
	Materialized int                         `json:"materialized"`
	PageSize     int                         `json:"page_size"`
	HasMore      bool                        `json:"has_more"`
	Loading      bool                        `json:"loading"`
	Sort         string                      `json:"sort"`
	Filters      collection.Selection        `json:"filters"`
	Mode         collection.Mode             `json:"mode"`
	State        collection.State            `json:"state"`
	Error        string                      `json:"error,omitempty"`
	Facets       map[string]collection.Facet `json:"facets,omitempty"`
}

// Update is a batch of view changes. Nil fields are left alone. ClearFilters
// runs before Filters, so both together replace the selection.
type Update struct {
	ClearFilters bool
	Filters      collection.Selection
	Search       *string
	Sort         *string
	Mode         *collection.Mode
	// Reload refetches the records from the store.
	Reload bool
}

// IsEmpty reports whether the update changes nothing.
func (u Update) IsEmpty() bool {
	return !u.ClearFilters && len(u.Filters) == 0 && u.Search == nil &&
		u.Sort == nil && u.Mode == nil && !u.Reload
}
