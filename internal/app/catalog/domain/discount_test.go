package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscount(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(30 * 24 * time.Hour)

	t.Run("valid discount", func(t *testing.T) {
		d, err := NewDiscount(20, start, end)
		require.NoError(t, err)
		assert.Equal(t, int64(20), d.Percentage())
	})

	t.Run("percentage out of range", func(t *testing.T) {
		_, err := NewDiscount(101, start, end)
		assert.ErrorIs(t, err, ErrInvalidDiscountPercent)

		_, err = NewDiscount(-1, start, end)
		assert.ErrorIs(t, err, ErrInvalidDiscountPercent)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := NewDiscount(10, end, start)
		assert.ErrorIs(t, err, ErrInvalidDiscountPeriod)
	})
}

func TestDiscount_IsValidAt(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	d, err := NewDiscount(10, start, end)
	require.NoError(t, err)

	assert.True(t, d.IsValidAt(start))
	assert.True(t, d.IsValidAt(end))
	assert.True(t, d.IsValidAt(start.Add(time.Hour)))
	assert.False(t, d.IsValidAt(start.Add(-time.Second)))
	assert.False(t, d.IsValidAt(end.Add(time.Second)))
}

func TestDiscount_Apply(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d, err := NewDiscount(25, start, start.Add(time.Hour))
	require.NoError(t, err)

	price, _ := NewMoney(8000, 100)
	assert.Equal(t, "60.00", d.Apply(price).String())
}
