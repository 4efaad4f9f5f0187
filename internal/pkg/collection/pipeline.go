package collection

import (
	"fmt"
	"slices"
)

// Definition declares the filters and sorts a pipeline offers.
type Definition[T any] struct {
	Filters []Filter[T]
	Sorts   []Sort[T]
	// DefaultSort is used when no sort key, or an unknown one, is selected.
	// Empty keeps source order.
	DefaultSort string
}

// Pipeline filters and sorts record slices. It holds no per-view state and is
// safe to share between views.
type Pipeline[T any] struct {
	filters     []Filter[T]
	byName      map[string]Filter[T]
	sorts       []Sort[T]
	byKey       map[string]Comparator[T]
	defaultSort string
}

// NewPipeline validates a definition and builds a pipeline from it.
func NewPipeline[T any](def Definition[T]) (*Pipeline[T], error) {
	p := &Pipeline[T]{
		filters: make([]Filter[T], 0, len(def.Filters)),
		byName:  make(map[string]Filter[T], len(def.Filters)),
		sorts:   make([]Sort[T], 0, len(def.Sorts)),
		byKey:   make(map[string]Comparator[T], len(def.Sorts)),
	}

	for _, f := range def.Filters {
		if _, dup := p.byName[f.Name()]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFilter, f.Name())
		}
		p.byName[f.Name()] = f
		p.filters = append(p.filters, f)
	}

	for _, s := range def.Sorts {
		if _, dup := p.byKey[s.Key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSort, s.Key)
		}
		p.byKey[s.Key] = s.Compare
		p.sorts = append(p.sorts, s)
	}

	if def.DefaultSort != "" {
		if _, ok := p.byKey[def.DefaultSort]; !ok {
			return nil, fmt.Errorf("%w: default %s", ErrUnknownSort, def.DefaultSort)
		}
	}
	p.defaultSort = def.DefaultSort

	return p, nil
}

// MustPipeline is NewPipeline for static definitions; it panics on error.
func MustPipeline[T any](def Definition[T]) *Pipeline[T] {
	p, err := NewPipeline(def)
	if err != nil {
		panic(err)
	}
	return p
}

// FilterNames returns filter names in declaration order.
func (p *Pipeline[T]) FilterNames() []string {
	names := make([]string, len(p.filters))
	for i, f := range p.filters {
		names[i] = f.Name()
	}
	return names
}

// SortKeys returns sort keys in declaration order.
func (p *Pipeline[T]) SortKeys() []string {
	keys := make([]string, len(p.sorts))
	for i, s := range p.sorts {
		keys[i] = s.Key
	}
	return keys
}

// DefaultSort returns the key used when none is selected.
func (p *Pipeline[T]) DefaultSort() string {
	return p.defaultSort
}

// HasFilter reports whether name is a declared filter.
func (p *Pipeline[T]) HasFilter(name string) bool {
	_, ok := p.byName[name]
	return ok
}

// HasSort reports whether key is a declared sort.
func (p *Pipeline[T]) HasSort(key string) bool {
	_, ok := p.byKey[key]
	return ok
}

// ResolveSort maps a requested key to the key actually applied.
func (p *Pipeline[T]) ResolveSort(key string) string {
	if _, ok := p.byKey[key]; ok {
		return key
	}
	return p.defaultSort
}

// Filter returns the records passing every active filter of sel, in source order.
// Unknown names in sel are ignored. The input slice is never modified.
func (p *Pipeline[T]) Filter(records []T, sel Selection) []T {
	preds := make([]Predicate[T], 0, len(sel))
	for _, f := range p.filters {
		value, ok := sel[f.Name()]
		if !ok {
			continue
		}
		if pred := f.Compile(value); pred != nil {
			preds = append(preds, pred)
		}
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		if matchAll(rec, preds) {
			out = append(out, rec)
		}
	}
	return out
}

func matchAll[T any](rec T, preds []Predicate[T]) bool {
	for _, pred := range preds {
		if !pred(rec) {
			return false
		}
	}
	return true
}

// Sort orders records in place by the resolved key. The sort is stable, so
// ties keep their source order.
func (p *Pipeline[T]) Sort(records []T, key string) {
	compare, ok := p.byKey[p.ResolveSort(key)]
	if !ok {
		return
	}
	slices.SortStableFunc(records, compare)
}

// Apply filters then sorts. The result is a fresh slice and a pure function
// of its inputs.
func (p *Pipeline[T]) Apply(records []T, sel Selection, sortKey string) []T {
	out := p.Filter(records, sel)
	p.Sort(out, sortKey)
	return out
}

// Facets describes every faceted filter over records.
func (p *Pipeline[T]) Facets(records []T) map[string]Facet {
	facets := make(map[string]Facet)
	for _, f := range p.filters {
		if fc, ok := f.(Faceter[T]); ok {
			facets[f.Name()] = fc.Facet(records)
		}
	}
	return facets
}
