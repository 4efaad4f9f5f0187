package collection

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipeline_Validation(t *testing.T) {
	name := func(i item) string { return i.Name }

	t.Run("duplicate filter", func(t *testing.T) {
		_, err := NewPipeline(Definition[item]{
			Filters: []Filter[item]{Equal("a", name), Search("a", name)},
		})
		assert.ErrorIs(t, err, ErrDuplicateFilter)
	})

	t.Run("duplicate sort", func(t *testing.T) {
		_, err := NewPipeline(Definition[item]{
			Sorts: []Sort[item]{
				{Key: "x", Compare: Ascending(itemID)},
				{Key: "x", Compare: Descending(itemID)},
			},
		})
		assert.ErrorIs(t, err, ErrDuplicateSort)
	})

	t.Run("unknown default sort", func(t *testing.T) {
		_, err := NewPipeline(Definition[item]{DefaultSort: "missing"})
		assert.ErrorIs(t, err, ErrUnknownSort)
	})

	t.Run("MustPipeline panics on invalid definition", func(t *testing.T) {
		assert.Panics(t, func() {
			MustPipeline(Definition[item]{DefaultSort: "missing"})
		})
	})
}

func TestPipeline_Describe(t *testing.T) {
	p := testPipeline()
	assert.Equal(t, []string{"category", "price", "featured", "search"}, p.FilterNames())
	assert.Equal(t, []string{"featured", "price-low", "price-high", "rating", "newest"}, p.SortKeys())
	assert.Equal(t, "featured", p.DefaultSort())
	assert.Equal(t, "rating", p.ResolveSort("rating"))
	assert.Equal(t, "featured", p.ResolveSort("bogus"))
}

func TestPipeline_FilterIsConjunctiveSubset(t *testing.T) {
	p := testPipeline()
	records := makeItems(60)

	selections := []Selection{
		{},
		{"category": "Home"},
		{"category": "home", "price": "2000..5000"},
		{"category": "Sports", "featured": "true"},
		{"search": "item 1", "price": "..3000"},
		{"category": "Todos", "price": "garbage"},
		{"unknown": "ignored"},
	}

	for _, sel := range selections {
		got := p.Filter(records, sel)

		for _, rec := range got {
			assert.Contains(t, records, rec)
			for name, value := range sel {
				if !p.HasFilter(name) {
					continue
				}
				if pred := p.byName[name].Compile(value); pred != nil {
					assert.True(t, pred(rec), "record %d fails %s=%s", rec.ID, name, value)
				}
			}
		}
	}
}

func TestPipeline_FilterKeepsSourceOrder(t *testing.T) {
	p := testPipeline()
	got := p.Filter(makeItems(9), Selection{"category": "Home"})
	assert.Equal(t, []int{2, 5, 8}, ids(got))
}

func TestPipeline_SortIsPermutation(t *testing.T) {
	p := testPipeline()
	records := makeItems(40)
	filtered := p.Filter(records, Selection{"price": "2000.."})

	for _, key := range p.SortKeys() {
		sorted := p.Apply(records, Selection{"price": "2000.."}, key)
		require.Len(t, sorted, len(filtered), key)
		assert.ElementsMatch(t, filtered, sorted, key)
	}
}

func TestPipeline_SortOrders(t *testing.T) {
	p := testPipeline()
	records := []item{
		{ID: 1, Price: 300, Rating: 4.0, Created: baseTime.Add(-2 * time.Hour)},
		{ID: 2, Price: 100, Rating: 4.5, Featured: true, Created: baseTime},
		{ID: 3, Price: 200, Rating: 4.0, Created: baseTime.Add(-time.Hour)},
		{ID: 4, Price: 100, Rating: 3.0, Featured: true, Created: baseTime.Add(-3 * time.Hour)},
	}

	tests := map[string][]int{
		"price-low":  {2, 4, 3, 1},
		"price-high": {1, 3, 2, 4},
		"rating":     {2, 1, 3, 4},
		"newest":     {2, 3, 1, 4},
		"featured":   {2, 4, 1, 3},
		"":           {2, 4, 1, 3},
		"nonsense":   {2, 4, 1, 3},
	}

	for key, want := range tests {
		t.Run(key, func(t *testing.T) {
			got := ids(p.Apply(records, nil, key))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPipeline_StableTies(t *testing.T) {
	p := testPipeline()
	records := make([]item, 20)
	for i := range records {
		records[i] = item{ID: i + 1, Price: 500}
	}

	got := p.Apply(records, nil, "price-high")
	assert.Equal(t, ids(records), ids(got))
}

func TestPipeline_ApplyIsPureAndIdempotent(t *testing.T) {
	p := testPipeline()
	records := makeItems(30)
	original := append([]item(nil), records...)
	sel := Selection{"category": "Electronics"}

	first := p.Apply(records, sel, "price-high")
	second := p.Apply(records, sel, "price-high")

	assert.Equal(t, first, second)
	assert.Equal(t, original, records, "input must not be reordered")
}

func TestPipeline_NoDefaultSortKeepsSourceOrder(t *testing.T) {
	p := MustPipeline(Definition[item]{
		Sorts: []Sort[item]{{Key: "id-desc", Compare: Descending(itemID)}},
	})
	records := makeItems(5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(p.Apply(records, nil, "")))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, ids(p.Apply(records, nil, "id-desc")))
}

func TestThen(t *testing.T) {
	c := Then(
		Descending(func(i item) float64 { return i.Rating }),
		Ascending(func(i item) float64 { return i.Price }),
	)
	a := item{Rating: 4, Price: 10}
	b := item{Rating: 4, Price: 20}
	assert.Negative(t, c(a, b))
	assert.Positive(t, c(b, a))
	assert.Zero(t, c(a, a))
}

func TestSoonest(t *testing.T) {
	c := Soonest(func(i item) time.Time { return i.Created })
	assert.Negative(t, c(item{Created: baseTime}, item{Created: baseTime.Add(time.Minute)}))
}

func TestPipeline_Facets(t *testing.T) {
	p := testPipeline()
	facets := p.Facets(makeItems(12))

	require.Contains(t, facets, "category")
	require.Contains(t, facets, "price")
	require.Contains(t, facets, "featured")
	assert.NotContains(t, facets, "search")

	assert.Equal(t, 4, facets["category"].Counts["Home"])
	assert.Equal(t, 1000.0, *facets["price"].Min)
	assert.Equal(t, 10000.0, *facets["price"].Max)
	assert.Equal(t, 3, facets["featured"].Counts["true"])
}
