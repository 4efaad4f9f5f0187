package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceProduct(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	base, _ := NewMoney(10000, 100)

	t.Run("no discount", func(t *testing.T) {
		var p Product
		PriceProduct(&p, base, nil, now)
		assert.Equal(t, 100.0, p.BasePrice)
		assert.Equal(t, 100.0, p.EffectivePrice)
		assert.False(t, p.DiscountActive)
		assert.Nil(t, p.DiscountPercent)
	})

	t.Run("active discount", func(t *testing.T) {
		d, err := NewDiscount(15, now.Add(-time.Hour), now.Add(time.Hour))
		require.NoError(t, err)

		var p Product
		PriceProduct(&p, base, d, now)
		assert.Equal(t, 85.0, p.EffectivePrice)
		assert.True(t, p.DiscountActive)
		require.NotNil(t, p.DiscountPercent)
		assert.Equal(t, int64(15), *p.DiscountPercent)
	})

	t.Run("expired discount is ignored", func(t *testing.T) {
		d, err := NewDiscount(15, now.Add(-48*time.Hour), now.Add(-24*time.Hour))
		require.NoError(t, err)

		p := Product{DiscountActive: true}
		PriceProduct(&p, base, d, now)
		assert.Equal(t, 100.0, p.EffectivePrice)
		assert.False(t, p.DiscountActive)
	})
}

func TestRaffle_TicketsLeft(t *testing.T) {
	assert.Equal(t, int64(40), Raffle{TicketsTotal: 100, TicketsSold: 60}.TicketsLeft())
	assert.Zero(t, Raffle{TicketsTotal: 10, TicketsSold: 12}.TicketsLeft())
}

func TestValidKinds(t *testing.T) {
	assert.True(t, ValidRaffleStatus("open"))
	assert.False(t, ValidRaffleStatus("Open"))
	assert.True(t, ValidPlanKind("recharge"))
	assert.False(t, ValidPlanKind("bundle"))
	assert.True(t, ValidAdStatus("paused"))
	assert.False(t, ValidAdStatus("deleted"))
	assert.True(t, ValidTransactionKind("referral"))
	assert.False(t, ValidTransactionKind("refund"))
}
