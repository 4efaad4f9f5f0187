// Package collection implements the in-memory browse pipeline shared by every
// marketplace listing: a conjunctive set of filters, a named sort selector,
// an incrementally growing page window and the view controller tying them
// together.
//
// Records are never inspected directly. Each filter and comparator is built
// from extractor functions, so a single pipeline definition serves products,
// raffles, plans, ads or wallet transactions alike.
package collection

import (
	"maps"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

const (
	// SearchFilter is the conventional name of the free-text filter.
	SearchFilter = "search"
	// RangeSeparator splits the bounds of range and window values.
	RangeSeparator = ".."
)

// Selection maps filter names to the raw values chosen by the user.
type Selection map[string]string

// Clone returns an independent copy of the selection.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	maps.Copy(out, s)
	return out
}

// Predicate reports whether a record passes a filter.
type Predicate[T any] func(T) bool

// Filter turns a raw selection value into a predicate.
// Compile returns nil when the value disables the filter.
type Filter[T any] interface {
	Name() string
	Compile(value string) Predicate[T]
}

// Facet summarises the values a filter can take over a record set.
type Facet struct {
	Counts map[string]int `json:"counts,omitempty"`
	Min    *float64       `json:"min,omitempty"`
	Max    *float64       `json:"max,omitempty"`
}

// Faceter is implemented by filters able to describe their value space.
type Faceter[T any] interface {
	Facet(records []T) Facet
}

// allSentinels disable an Equal filter.
var allSentinels = []string{"", "all", "todos", "todas"}

func isSentinel(value string, extra []string) bool {
	for _, s := range allSentinels {
		if strings.EqualFold(value, s) {
			return true
		}
	}
	for _, s := range extra {
		if strings.EqualFold(value, s) {
			return true
		}
	}
	return false
}

// equalFilter matches a string field case-insensitively.
type equalFilter[T any] struct {
	name      string
	get       func(T) string
	sentinels []string
}

// Equal creates a filter matching records whose field equals the selected value,
// ignoring case. Empty values, "all", "todos" and any extra sentinels disable it.
func Equal[T any](name string, get func(T) string, sentinels ...string) Filter[T] {
	return &equalFilter[T]{name: name, get: get, sentinels: sentinels}
}

func (f *equalFilter[T]) Name() string { return f.name }

func (f *equalFilter[T]) Compile(value string) Predicate[T] {
	value = strings.TrimSpace(value)
	if isSentinel(value, f.sentinels) {
		return nil
	}
	return func(rec T) bool {
		return strings.EqualFold(f.get(rec), value)
	}
}

func (f *equalFilter[T]) Facet(records []T) Facet {
	counts := make(map[string]int)
	for _, rec := range records {
		if v := f.get(rec); v != "" {
			counts[v]++
		}
	}
	return Facet{Counts: counts}
}

// searchFilter does case-insensitive substring matching over several fields.
type searchFilter[T any] struct {
	name   string
	fields []func(T) string
}

// Search creates a free-text filter. A record matches when any field contains
// the trimmed term, ignoring case. A blank term disables the filter.
func Search[T any](name string, fields ...func(T) string) Filter[T] {
	return &searchFilter[T]{name: name, fields: fields}
}

func (f *searchFilter[T]) Name() string { return f.name }

func (f *searchFilter[T]) Compile(value string) Predicate[T] {
	term := strings.ToLower(strings.TrimSpace(value))
	if term == "" {
		return nil
	}
	return func(rec T) bool {
		for _, get := range f.fields {
			if strings.Contains(strings.ToLower(get(rec)), term) {
				return true
			}
		}
		return false
	}
}

// rangeFilter keeps records whose numeric field lies within [lo, hi].
type rangeFilter[T any] struct {
	name string
	get  func(T) float64
}

// Range creates an inclusive numeric range filter. Values have the form
// "lo..hi"; either bound may be omitted and a lone number is an upper bound.
// Malformed bounds are ignored and reversed bounds are swapped.
func Range[T any](name string, get func(T) float64) Filter[T] {
	return &rangeFilter[T]{name: name, get: get}
}

func (f *rangeFilter[T]) Name() string { return f.name }

func (f *rangeFilter[T]) Compile(value string) Predicate[T] {
	lo, hi, ok := ParseRange(value)
	if !ok {
		return nil
	}
	return func(rec T) bool {
		v := f.get(rec)
		if lo != nil && v < *lo {
			return false
		}
		if hi != nil && v > *hi {
			return false
		}
		return true
	}
}

func (f *rangeFilter[T]) Facet(records []T) Facet {
	if len(records) == 0 {
		return Facet{}
	}
	lo, hi := f.get(records[0]), f.get(records[0])
	for _, rec := range records[1:] {
		v := f.get(rec)
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return Facet{Min: &lo, Max: &hi}
}

// ParseRange parses "lo..hi". ok is false when neither bound is usable.
func ParseRange(value string) (lo, hi *float64, ok bool) {
	left, right, found := strings.Cut(strings.TrimSpace(value), RangeSeparator)
	if !found {
		// A single number is an upper bound ("up to").
		right, left = left, ""
	}
	lo = parseBound(left)
	hi = parseBound(right)
	if lo == nil && hi == nil {
		return nil, nil, false
	}
	if lo != nil && hi != nil && *lo > *hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

func parseBound(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// windowFilter keeps records whose date lies within a time window.
type windowFilter[T any] struct {
	name  string
	get   func(T) time.Time
	clock clock.Clock
}

// DateWindow creates a date filter. Accepted values:
//   - "7d", "24h": within the last N, relative to now
//   - "+7d", "+48h": within the next N
//   - "from..to": inclusive dates (2006-01-02 or RFC3339), either side optional
func DateWindow[T any](name string, get func(T) time.Time, clk clock.Clock) Filter[T] {
	return &windowFilter[T]{name: name, get: get, clock: clk}
}

func (f *windowFilter[T]) Name() string { return f.name }

func (f *windowFilter[T]) Compile(value string) Predicate[T] {
	from, to, ok := ParseWindow(value, f.clock.Now())
	if !ok {
		return nil
	}
	return func(rec T) bool {
		t := f.get(rec)
		if !from.IsZero() && t.Before(from) {
			return false
		}
		if !to.IsZero() && t.After(to) {
			return false
		}
		return true
	}
}

// ParseWindow resolves a window value against now. Zero times mean open ends.
func ParseWindow(value string, now time.Time) (from, to time.Time, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, time.Time{}, false
	}

	if d, future, isRel := parseRelative(value); isRel {
		if future {
			return now, now.Add(d), true
		}
		return now.Add(-d), now, true
	}

	left, right, found := strings.Cut(value, RangeSeparator)
	if !found {
		return time.Time{}, time.Time{}, false
	}
	from, fromOK := parseDate(left, false)
	to, toOK := parseDate(right, true)
	if !fromOK && !toOK {
		return time.Time{}, time.Time{}, false
	}
	if fromOK && toOK && from.After(to) {
		from, _ = parseDate(right, false)
		to, _ = parseDate(left, true)
	}
	return from, to, true
}

// maxWindowDays is the largest day count a time.Duration can hold.
const maxWindowDays = math.MaxInt64 / int64(24*time.Hour)

func parseRelative(value string) (time.Duration, bool, bool) {
	future := strings.HasPrefix(value, "+")
	body := strings.TrimPrefix(value, "+")
	if strings.HasSuffix(body, "d") {
		days, err := strconv.ParseInt(strings.TrimSuffix(body, "d"), 10, 64)
		if err != nil || days <= 0 || days > maxWindowDays {
			return 0, false, false
		}
		return time.Duration(days) * 24 * time.Hour, future, true
	}
	d, err := time.ParseDuration(body)
	if err != nil || d <= 0 {
		return 0, false, false
	}
	return d, future, true
}

func parseDate(s string, endOfDay bool) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, true
}

// flagFilter matches a boolean field.
type flagFilter[T any] struct {
	name string
	get  func(T) bool
}

// Flag creates a boolean filter. Unrecognised values disable it.
func Flag[T any](name string, get func(T) bool) Filter[T] {
	return &flagFilter[T]{name: name, get: get}
}

func (f *flagFilter[T]) Name() string { return f.name }

func (f *flagFilter[T]) Compile(value string) Predicate[T] {
	want, ok := ParseFlag(value)
	if !ok {
		return nil
	}
	return func(rec T) bool {
		return f.get(rec) == want
	}
}

func (f *flagFilter[T]) Facet(records []T) Facet {
	counts := map[string]int{"true": 0, "false": 0}
	for _, rec := range records {
		counts[strconv.FormatBool(f.get(rec))]++
	}
	return Facet{Counts: counts}
}

// ParseFlag accepts the usual boolean spellings, including "si"/"sí".
func ParseFlag(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "si", "sí", "on":
		return true, true
	case "no", "off":
		return false, true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return b, true
}
