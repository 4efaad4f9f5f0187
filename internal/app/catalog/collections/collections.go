// Package collections declares the browse pipeline of every marketplace
// listing: which filters a shopper can apply and which orders they can pick.
package collections

import (
	"time"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	c "github.com/light-bringer/storefront-service/internal/pkg/collection"
)

// Collection names as exposed to clients.
const (
	Products     = "products"
	Raffles      = "raffles"
	Plans        = "plans"
	Ads          = "ads"
	Transactions = "transactions"
)

// Names lists every collection in display order.
var Names = []string{Products, Raffles, Plans, Ads, Transactions}

// Set holds one pipeline per collection. Pipelines are stateless and shared
// by every view of the same collection.
type Set struct {
	Products     *c.Pipeline[domain.Product]
	Raffles      *c.Pipeline[domain.Raffle]
	Plans        *c.Pipeline[domain.Plan]
	Ads          *c.Pipeline[domain.Ad]
	Transactions *c.Pipeline[domain.Transaction]
}

// New builds the pipelines. clk anchors relative date filters such as "7d".
func New(clk clock.Clock) *Set {
	return &Set{
		Products:     productPipeline(),
		Raffles:      rafflePipeline(clk),
		Plans:        planPipeline(),
		Ads:          adPipeline(clk),
		Transactions: transactionPipeline(clk),
	}
}

func productPipeline() *c.Pipeline[domain.Product] {
	price := func(p domain.Product) float64 { return p.EffectivePrice }
	featured := func(p domain.Product) bool { return p.Featured }

	return c.MustPipeline(c.Definition[domain.Product]{
		Filters: []c.Filter[domain.Product]{
			c.Equal("category", func(p domain.Product) string { return p.Category }),
			c.Range("price", price),
			c.Range("rating", func(p domain.Product) float64 { return p.Rating }),
			c.Flag("featured", featured),
			c.Search(c.SearchFilter,
				func(p domain.Product) string { return p.Name },
				func(p domain.Product) string { return p.Description },
				func(p domain.Product) string { return p.Category },
			),
		},
		Sorts: []c.Sort[domain.Product]{
			{Key: "featured", Compare: c.FlagFirst(featured)},
			{Key: "price-low", Compare: c.Ascending(price)},
			{Key: "price-high", Compare: c.Descending(price)},
			{Key: "rating", Compare: c.Descending(func(p domain.Product) float64 { return p.Rating })},
			{Key: "newest", Compare: c.Newest(func(p domain.Product) time.Time { return p.CreatedAt })},
		},
		DefaultSort: "featured",
	})
}

func rafflePipeline(clk clock.Clock) *c.Pipeline[domain.Raffle] {
	price := func(r domain.Raffle) float64 { return r.TicketPrice }
	endsAt := func(r domain.Raffle) time.Time { return r.EndsAt }
	featured := func(r domain.Raffle) bool { return r.Featured }
	open := func(r domain.Raffle) bool { return r.Status == string(domain.RaffleOpen) }

	return c.MustPipeline(c.Definition[domain.Raffle]{
		Filters: []c.Filter[domain.Raffle]{
			c.Equal("category", func(r domain.Raffle) string { return r.Category }),
			c.Equal("status", func(r domain.Raffle) string { return r.Status }),
			c.Range("ticket-price", price),
			c.DateWindow("ending", endsAt, clk),
			c.Flag("featured", featured),
			c.Search(c.SearchFilter,
				func(r domain.Raffle) string { return r.Title },
				func(r domain.Raffle) string { return r.Prize },
			),
		},
		Sorts: []c.Sort[domain.Raffle]{
			{Key: "ending-soon", Compare: c.Then(c.FlagFirst(open), c.Soonest(endsAt))},
			{Key: "featured", Compare: c.FlagFirst(featured)},
			{Key: "tickets-left", Compare: c.Ascending(domain.Raffle.TicketsLeft)},
			{Key: "price-low", Compare: c.Ascending(price)},
			{Key: "price-high", Compare: c.Descending(price)},
			{Key: "ending-last", Compare: c.Newest(endsAt)},
		},
		DefaultSort: "ending-soon",
	})
}

func planPipeline() *c.Pipeline[domain.Plan] {
	price := func(p domain.Plan) float64 { return p.Price }
	popular := func(p domain.Plan) bool { return p.Popular }

	return c.MustPipeline(c.Definition[domain.Plan]{
		Filters: []c.Filter[domain.Plan]{
			c.Equal("operator", func(p domain.Plan) string { return p.Operator }),
			c.Equal("kind", func(p domain.Plan) string { return p.Kind }),
			c.Range("price", price),
			c.Flag("popular", popular),
			c.Search(c.SearchFilter,
				func(p domain.Plan) string { return p.Name },
				func(p domain.Plan) string { return p.Operator },
			),
		},
		Sorts: []c.Sort[domain.Plan]{
			{Key: "popular", Compare: c.Then(c.FlagFirst(popular), c.Ascending(price))},
			{Key: "price-low", Compare: c.Ascending(price)},
			{Key: "price-high", Compare: c.Descending(price)},
			{Key: "data", Compare: c.Descending(func(p domain.Plan) float64 { return p.DataGB })},
		},
		DefaultSort: "popular",
	})
}

func adPipeline(clk clock.Clock) *c.Pipeline[domain.Ad] {
	created := func(a domain.Ad) time.Time { return a.CreatedAt }

	return c.MustPipeline(c.Definition[domain.Ad]{
		Filters: []c.Filter[domain.Ad]{
			c.Equal("status", func(a domain.Ad) string { return a.Status }),
			c.Equal("category", func(a domain.Ad) string { return a.Category }),
			c.Range("budget", func(a domain.Ad) float64 { return a.Budget }),
			c.DateWindow("created", created, clk),
			c.Search(c.SearchFilter,
				func(a domain.Ad) string { return a.Title },
				func(a domain.Ad) string { return a.Category },
			),
		},
		Sorts: []c.Sort[domain.Ad]{
			{Key: "priority", Compare: c.Then(c.FlagFirst(func(a domain.Ad) bool { return a.Priority }), c.Newest(created))},
			{Key: "newest", Compare: c.Newest(created)},
			{Key: "budget-high", Compare: c.Descending(func(a domain.Ad) float64 { return a.Budget })},
			{Key: "reward-high", Compare: c.Descending(func(a domain.Ad) float64 { return a.RewardPerView })},
		},
		DefaultSort: "priority",
	})
}

func transactionPipeline(clk clock.Clock) *c.Pipeline[domain.Transaction] {
	created := func(t domain.Transaction) time.Time { return t.CreatedAt }
	amount := func(t domain.Transaction) float64 { return t.Amount }

	return c.MustPipeline(c.Definition[domain.Transaction]{
		Filters: []c.Filter[domain.Transaction]{
			c.Equal("kind", func(t domain.Transaction) string { return t.Kind }),
			c.Equal("status", func(t domain.Transaction) string { return t.Status }),
			c.Range("amount", amount),
			c.DateWindow("date", created, clk),
			c.Search(c.SearchFilter,
				func(t domain.Transaction) string { return t.Description },
				func(t domain.Transaction) string { return t.Kind },
			),
		},
		Sorts: []c.Sort[domain.Transaction]{
			{Key: "newest", Compare: c.Newest(created)},
			{Key: "oldest", Compare: c.Soonest(created)},
			{Key: "amount-high", Compare: c.Descending(amount)},
			{Key: "amount-low", Compare: c.Ascending(amount)},
		},
		DefaultSort: "newest",
	})
}
