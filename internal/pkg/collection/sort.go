package collection

import (
	"cmp"
	"time"
)

// Comparator orders two records: negative if a sorts first, positive if b does.
type Comparator[T any] func(a, b T) int

// Sort binds a comparator to the key clients select it by.
type Sort[T any] struct {
	Key     string
	Compare Comparator[T]
}

// Ascending orders by an ordered key, smallest first.
func Ascending[T any, K cmp.Ordered](get func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(get(a), get(b))
	}
}

// Descending orders by an ordered key, largest first.
func Descending[T any, K cmp.Ordered](get func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(get(b), get(a))
	}
}

// FlagFirst puts records whose flag is set before the rest.
func FlagFirst[T any](get func(T) bool) Comparator[T] {
	return func(a, b T) int {
		fa, fb := get(a), get(b)
		switch {
		case fa == fb:
			return 0
		case fa:
			return -1
		default:
			return 1
		}
	}
}

// Newest orders by date, most recent first.
func Newest[T any](get func(T) time.Time) Comparator[T] {
	return func(a, b T) int {
		return get(b).Compare(get(a))
	}
}

// Soonest orders by date, earliest first.
func Soonest[T any](get func(T) time.Time) Comparator[T] {
	return func(a, b T) int {
		return get(a).Compare(get(b))
	}
}

// Then chains comparators; later ones break ties left by earlier ones.
func Then[T any](cmps ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, c := range cmps {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}
