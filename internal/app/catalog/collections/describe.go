package collections

// Description tells a client what it may select on a collection.
type Description struct {
	Name        string   `json:"name"`
	Filters     []string `json:"filters"`
	Sorts       []string `json:"sorts"`
	DefaultSort string   `json:"default_sort"`
}

type describer interface {
	FilterNames() []string
	SortKeys() []string
	DefaultSort() string
}

// Describe lists every collection in Names order.
func (s *Set) Describe() []Description {
	pipelines := map[string]describer{
		Products:     s.Products,
		Raffles:      s.Raffles,
		Plans:        s.Plans,
		Ads:          s.Ads,
		Transactions: s.Transactions,
	}

	out := make([]Description, 0, len(Names))
	for _, name := range Names {
		p := pipelines[name]
		out = append(out, Description{
			Name:        name,
			Filters:     p.FilterNames(),
			Sorts:       p.SortKeys(),
			DefaultSort: p.DefaultSort(),
		})
	}
	return out
}
