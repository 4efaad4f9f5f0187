package collection

import (
	"context"
	"fmt"
	"sync"
)

// Mode is the presentation the client renders the window in.
type Mode string

const (
	ModeGrid Mode = "grid"
	ModeList Mode = "list"
)

// ParseMode validates a mode name. Empty means grid.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeGrid:
		return ModeGrid, nil
	case ModeList:
		return ModeList, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// State tells a failed fetch apart from an empty result.
type State string

const (
	StateIdle   State = "idle"
	StateReady  State = "ready"
	StateEmpty  State = "empty"
	StateFailed State = "failed"
)

// Source supplies the records a view browses.
type Source[T any] interface {
	Fetch(ctx context.Context) ([]T, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc[T any] func(ctx context.Context) ([]T, error)

// Fetch calls f.
func (f SourceFunc[T]) Fetch(ctx context.Context) ([]T, error) { return f(ctx) }

// ViewOptions configures a new view.
type ViewOptions struct {
	PageSize int
	Delay    DelayFunc
	Mode     Mode
	Sort     string
	Filters  Selection
}

// Snapshot is a consistent copy of everything a client renders.
type Snapshot[T any] struct {
	Items        []T
	Total        int
	Materialized int
	PageSize     int
	HasMore      bool
	Loading      bool
	Sort         string
	Filters      Selection
	Mode         Mode
	State        State
	Err          error
	Facets       map[string]Facet
}

// View is the controller behind one browsing session. Every setter recomputes
// the filtered and sorted list synchronously and resets the window to its
// first page; there is no debouncing, so the cost of each keystroke grows
// with the record count.
type View[T any] struct {
	mu       sync.Mutex
	pipeline *Pipeline[T]
	window   *Window[T]

	records   []T
	loaded    bool
	selection Selection
	sortKey   string
	mode      Mode
	state     State
	err       error
	facets    map[string]Facet
}

// NewView creates a view with no records.
func NewView[T any](p *Pipeline[T], opts ViewOptions) (*View[T], error) {
	window, err := NewWindow[T](opts.PageSize, opts.Delay)
	if err != nil {
		return nil, err
	}
	mode, err := ParseMode(string(opts.Mode))
	if err != nil {
		return nil, err
	}

	v := &View[T]{
		pipeline:  p,
		window:    window,
		selection: make(Selection),
		sortKey:   p.DefaultSort(),
		mode:      mode,
		state:     StateIdle,
		facets:    map[string]Facet{},
	}

	if opts.Sort != "" {
		if !p.HasSort(opts.Sort) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSort, opts.Sort)
		}
		v.sortKey = opts.Sort
	}
	for name, value := range opts.Filters {
		if !p.HasFilter(name) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, name)
		}
		v.selection[name] = value
	}

	return v, nil
}

// Refresh fetches records from src. A failed fetch leaves the view in
// StateFailed with no records, so it cannot be mistaken for an empty result.
func (v *View[T]) Refresh(ctx context.Context, src Source[T]) error {
	if src == nil {
		return ErrSourceNotDefined
	}
	records, err := src.Fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if err != nil {
		v.records = nil
		v.loaded = false
		v.err = err
		v.facets = map[string]Facet{}
		v.recomputeLocked()
		return fmt.Errorf("fetching records: %w", err)
	}

	v.records = records
	v.loaded = true
	v.err = nil
	v.facets = v.pipeline.Facets(records)
	v.recomputeLocked()
	return nil
}

// SetRecords replaces the source records.
func (v *View[T]) SetRecords(records []T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.records = records
	v.loaded = true
	v.err = nil
	v.facets = v.pipeline.Facets(records)
	v.recomputeLocked()
}

// SetFilter sets one filter value.
func (v *View[T]) SetFilter(name, value string) error {
	return v.SetFilters(Selection{name: value})
}

// SetFilters merges values into the selection with a single recompute.
// Nothing changes if any name is unknown.
func (v *View[T]) SetFilters(sel Selection) error {
	for name := range sel {
		if !v.pipeline.HasFilter(name) {
			return fmt.Errorf("%w: %s", ErrUnknownFilter, name)
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	for name, value := range sel {
		v.selection[name] = value
	}
	v.recomputeLocked()
	return nil
}

// ClearFilters removes every filter value.
func (v *View[T]) ClearFilters() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.selection = make(Selection)
	v.recomputeLocked()
}

// SetSearch sets the free-text term.
func (v *View[T]) SetSearch(term string) error {
	if !v.pipeline.HasFilter(SearchFilter) {
		return ErrNoSearchFilter
	}
	return v.SetFilter(SearchFilter, term)
}

// SetSort selects the active comparator.
func (v *View[T]) SetSort(key string) error {
	if !v.pipeline.HasSort(key) {
		return fmt.Errorf("%w: %s", ErrUnknownSort, key)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.sortKey = key
	v.recomputeLocked()
	return nil
}

// SetMode switches between grid and list. The window is left untouched.
func (v *View[T]) SetMode(mode Mode) error {
	m, err := ParseMode(string(mode))
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.mode = m
	return nil
}

// LoadMore grows the window by one page. See Window.LoadMore.
func (v *View[T]) LoadMore(ctx context.Context) (int, error) {
	return v.window.LoadMore(ctx)
}

// Snapshot returns the current state.
func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	items, total, hasMore, loading := v.window.state()
	return Snapshot[T]{
		Items:        items,
		Total:        total,
		Materialized: len(items),
		PageSize:     v.window.PageSize(),
		HasMore:      hasMore,
		Loading:      loading,
		Sort:         v.pipeline.ResolveSort(v.sortKey),
		Filters:      v.selection.Clone(),
		Mode:         v.mode,
		State:        v.state,
		Err:          v.err,
		Facets:       v.facets,
	}
}

func (v *View[T]) recomputeLocked() {
	derived := v.pipeline.Apply(v.records, v.selection, v.sortKey)
	v.window.Reset(derived)

	switch {
	case v.err != nil:
		v.state = StateFailed
	case !v.loaded:
		v.state = StateIdle
	case len(derived) == 0:
		v.state = StateEmpty
	default:
		v.state = StateReady
	}
}
