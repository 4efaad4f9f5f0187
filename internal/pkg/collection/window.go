package collection

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// DelayFunc runs before a page is appended. It stands in for the latency of
// fetching the next page and may block until ctx is done.
type DelayFunc func(ctx context.Context) error

// NoDelay appends pages immediately.
func NoDelay(ctx context.Context) error { return nil }

// Latency returns a DelayFunc sleeping d on clk. A non-positive d means NoDelay.
func Latency(clk clock.Clock, d time.Duration) DelayFunc {
	if d <= 0 {
		return NoDelay
	}
	return func(ctx context.Context) error {
		return clk.Sleep(ctx, d)
	}
}

// Window materializes a growing prefix of a list, one page at a time.
//
// The materialized count is always a multiple of the page size unless it has
// reached the end of the list. Only one LoadMore may be in flight; Reset
// discards any load still pending.
type Window[T any] struct {
	mu       sync.Mutex
	pageSize int
	delay    DelayFunc

	items   []T
	size    int
	loading bool
	epoch   uint64
}

// NewWindow creates an empty window. A nil delay means NoDelay.
func NewWindow[T any](pageSize int, delay DelayFunc) (*Window[T], error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}
	if delay == nil {
		delay = NoDelay
	}
	return &Window[T]{pageSize: pageSize, delay: delay}, nil
}

// Reset replaces the underlying list and shows its first page.
func (w *Window[T]) Reset(items []T) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.items = items
	w.size = min(w.pageSize, len(items))
	w.loading = false
	w.epoch++
}

// LoadMore appends the next page and returns how many records were added.
//
// It returns 0 and a nil error when everything is already materialized, and
// ErrLoadInProgress when another call has not finished yet. If the window is
// reset while the delay runs, the load is dropped and 0 is returned.
func (w *Window[T]) LoadMore(ctx context.Context) (int, error) {
	w.mu.Lock()
	if w.loading {
		w.mu.Unlock()
		return 0, ErrLoadInProgress
	}
	if w.size >= len(w.items) {
		w.mu.Unlock()
		return 0, nil
	}
	w.loading = true
	epoch := w.epoch
	w.mu.Unlock()

	err := w.delay(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()

	if epoch != w.epoch {
		return 0, nil
	}
	w.loading = false
	if err != nil {
		return 0, fmt.Errorf("loading next page: %w", err)
	}

	next := min(w.size+w.pageSize, len(w.items))
	added := next - w.size
	w.size = next
	return added, nil
}

// Items returns a copy of the materialized records.
func (w *Window[T]) Items() []T {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]T, w.size)
	copy(out, w.items[:w.size])
	return out
}

// Len returns the number of materialized records.
func (w *Window[T]) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// Total returns the length of the underlying list.
func (w *Window[T]) Total() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

// HasMore reports whether records remain beyond the materialized prefix.
func (w *Window[T]) HasMore() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size < len(w.items)
}

// Loading reports whether a LoadMore call is in flight.
func (w *Window[T]) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

// PageSize returns the fixed page size.
func (w *Window[T]) PageSize() int {
	return w.pageSize
}

// state returns a consistent copy of the window for snapshots.
func (w *Window[T]) state() (items []T, total int, hasMore, loading bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	items = make([]T, w.size)
	copy(items, w.items[:w.size])
	return items, len(w.items), w.size < len(w.items), w.loading
}
