package collections

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/collection"
)

var now = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newSet() *Set {
	return New(clock.NewMockClock(now))
}

func productIDs(ps []domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ProductID
	}
	return out
}

func TestProducts(t *testing.T) {
	s := newSet()
	products := []domain.Product{
		{ProductID: "p1", Name: "Auriculares", Category: "Electronics", EffectivePrice: 59.9, Rating: 4.2, CreatedAt: now.Add(-72 * time.Hour)},
		{ProductID: "p2", Name: "Lamp", Category: "Home", EffectivePrice: 25, Rating: 4.8, Featured: true, CreatedAt: now.Add(-time.Hour)},
		{ProductID: "p3", Name: "Smart TV", Category: "Electronics", EffectivePrice: 499, Rating: 3.9, Featured: true, CreatedAt: now.Add(-24 * time.Hour)},
		{ProductID: "p4", Name: "Kettle", Description: "electric kettle", Category: "Home", EffectivePrice: 30, Rating: 4.5, CreatedAt: now},
	}

	tests := []struct {
		name string
		sel  collection.Selection
		sort string
		want []string
	}{
		{"default order puts featured first", nil, "", []string{"p2", "p3", "p1", "p4"}},
		{"category", collection.Selection{"category": "home"}, "price-low", []string{"p2", "p4"}},
		{"price range uses effective price", collection.Selection{"price": "20..60"}, "price-high", []string{"p1", "p4", "p2"}},
		{"minimum rating", collection.Selection{"rating": "4.5.."}, "rating", []string{"p2", "p4"}},
		{"search covers description", collection.Selection{"search": "ELECTRIC"}, "", []string{"p4"}},
		{"all categories sentinel", collection.Selection{"category": "Todos"}, "newest", []string{"p4", "p2", "p3", "p1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Products.Apply(products, tt.sel, tt.sort)
			assert.Equal(t, tt.want, productIDs(got))
		})
	}
}

func TestRaffles(t *testing.T) {
	s := newSet()
	raffles := []domain.Raffle{
		{RaffleID: "r1", Title: "Moto", Status: "closed", TicketPrice: 5, TicketsTotal: 100, TicketsSold: 100, EndsAt: now.Add(-time.Hour)},
		{RaffleID: "r2", Title: "iPhone", Status: "open", TicketPrice: 2, TicketsTotal: 500, TicketsSold: 120, EndsAt: now.Add(72 * time.Hour), Featured: true},
		{RaffleID: "r3", Title: "Viaje", Prize: "Cancun trip", Status: "open", TicketPrice: 10, TicketsTotal: 50, TicketsSold: 45, EndsAt: now.Add(20 * time.Hour)},
	}
	ids := func(rs []domain.Raffle) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.RaffleID
		}
		return out
	}

	assert.Equal(t, []string{"r3", "r2", "r1"}, ids(s.Raffles.Apply(raffles, nil, "")))
	assert.Equal(t, []string{"r1", "r3", "r2"}, ids(s.Raffles.Apply(raffles, nil, "tickets-left")))
	assert.Equal(t, []string{"r3"}, ids(s.Raffles.Apply(raffles, collection.Selection{"ending": "+24h"}, "")))
	assert.Equal(t, []string{"r3"}, ids(s.Raffles.Apply(raffles, collection.Selection{"search": "cancun"}, "")))
	assert.Equal(t, []string{"r2", "r3"}, ids(s.Raffles.Apply(raffles, collection.Selection{"status": "OPEN"}, "price-low")))
}

func TestPlans(t *testing.T) {
	s := newSet()
	plans := []domain.Plan{
		{PlanID: "a", Operator: "Claro", Kind: "prepaid", Price: 20, DataGB: 5},
		{PlanID: "b", Operator: "Movistar", Kind: "postpaid", Price: 45, DataGB: 30, Popular: true},
		{PlanID: "c", Operator: "Claro", Kind: "recharge", Price: 10, DataGB: 1, Popular: true},
	}
	ids := func(ps []domain.Plan) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.PlanID
		}
		return out
	}

	assert.Equal(t, []string{"c", "b", "a"}, ids(s.Plans.Apply(plans, nil, "")))
	assert.Equal(t, []string{"b", "a", "c"}, ids(s.Plans.Apply(plans, nil, "data")))
	assert.Equal(t, []string{"a", "c"}, ids(s.Plans.Apply(plans, collection.Selection{"operator": "claro"}, "price-high")))
}

func TestAdsAndTransactions(t *testing.T) {
	s := newSet()

	ads := []domain.Ad{
		{AdID: "x", Status: "active", Budget: 100, CreatedAt: now.Add(-10 * 24 * time.Hour)},
		{AdID: "y", Status: "pending", Budget: 300, CreatedAt: now.Add(-2 * 24 * time.Hour), Priority: true},
		{AdID: "z", Status: "active", Budget: 50, CreatedAt: now.Add(-time.Hour)},
	}
	got := s.Ads.Apply(ads, collection.Selection{"created": "7d"}, "")
	require.Len(t, got, 2)
	assert.Equal(t, "y", got[0].AdID)
	assert.Equal(t, "z", got[1].AdID)

	txs := []domain.Transaction{
		{TransactionID: "1", Kind: "credit", Amount: 10, CreatedAt: now.Add(-3 * time.Hour)},
		{TransactionID: "2", Kind: "debit", Amount: 40, CreatedAt: now.Add(-time.Hour)},
		{TransactionID: "3", Kind: "reward", Amount: 2.5, CreatedAt: now.Add(-2 * time.Hour)},
	}
	order := func(ts []domain.Transaction) []string {
		out := make([]string, len(ts))
		for i, tx := range ts {
			out[i] = tx.TransactionID
		}
		return out
	}
	assert.Equal(t, []string{"2", "3", "1"}, order(s.Transactions.Apply(txs, nil, "")))
	assert.Equal(t, []string{"1", "3", "2"}, order(s.Transactions.Apply(txs, nil, "oldest")))
	assert.Equal(t, []string{"2", "1"}, order(s.Transactions.Apply(txs, collection.Selection{"amount": "5.."}, "amount-high")))
}

func TestDescribe(t *testing.T) {
	desc := newSet().Describe()
	require.Len(t, desc, len(Names))

	for i, d := range desc {
		assert.Equal(t, Names[i], d.Name)
		assert.Contains(t, d.Filters, collection.SearchFilter, d.Name)
		assert.Contains(t, d.Sorts, d.DefaultSort, d.Name)
	}
	assert.Equal(t, []string{"featured", "price-low", "price-high", "rating", "newest"}, desc[0].Sorts)
	assert.Equal(t, []string{"ending-soon", "featured", "tickets-left", "price-low", "price-high", "ending-last"}, desc[1].Sorts)
}

func TestRafflesEndingLast(t *testing.T) {
	s := newSet()

	raffles := []domain.Raffle{
		{RaffleID: "a", Status: "open", EndsAt: now.Add(24 * time.Hour)},
		{RaffleID: "b", Status: "closed", EndsAt: now.Add(72 * time.Hour)},
		{RaffleID: "c", Status: "open", EndsAt: now.Add(48 * time.Hour)},
	}
	got := s.Raffles.Apply(raffles, nil, "ending-last")
	ids := make([]string, len(got))
	for i, r := range got {
		ids[i] = r.RaffleID
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids)
	assert.False(t, s.Raffles.HasSort("newest"))
}
