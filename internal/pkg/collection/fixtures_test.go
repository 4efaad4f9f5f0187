package collection

import (
	"fmt"
	"time"
)

type item struct {
	ID       int
	Name     string
	Category string
	Price    float64
	Rating   float64
	Featured bool
	Created  time.Time
}

var baseTime = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func itemID(i item) int { return i.ID }

func ids(items []item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

// makeItems builds n items cycling through three categories.
func makeItems(n int) []item {
	categories := []string{"Electronics", "Home", "Sports"}
	out := make([]item, n)
	for i := range n {
		out[i] = item{
			ID:       i + 1,
			Name:     fmt.Sprintf("Item %02d", i+1),
			Category: categories[i%len(categories)],
			Price:    float64((i%10)+1) * 1000,
			Rating:   float64(i%5) + 0.5,
			Featured: i%4 == 0,
			Created:  baseTime.Add(-time.Duration(i) * time.Hour),
		}
	}
	return out
}

func testPipeline() *Pipeline[item] {
	return MustPipeline(Definition[item]{
		Filters: []Filter[item]{
			Equal("category", func(i item) string { return i.Category }),
			Range("price", func(i item) float64 { return i.Price }),
			Flag("featured", func(i item) bool { return i.Featured }),
			Search(SearchFilter, func(i item) string { return i.Name }, func(i item) string { return i.Category }),
		},
		Sorts: []Sort[item]{
			{Key: "featured", Compare: FlagFirst(func(i item) bool { return i.Featured })},
			{Key: "price-low", Compare: Ascending(func(i item) float64 { return i.Price })},
			{Key: "price-high", Compare: Descending(func(i item) float64 { return i.Price })},
			{Key: "rating", Compare: Descending(func(i item) float64 { return i.Rating })},
			{Key: "newest", Compare: Newest(func(i item) time.Time { return i.Created })},
		},
		DefaultSort: "featured",
	})
}
