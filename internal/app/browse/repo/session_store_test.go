package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/browse/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

type stubBrowser struct {
	domain.Browser
	name string
}

func (s stubBrowser) Collection() string { return s.name }

var start = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func TestSessionStore_AddGetRemove(t *testing.T) {
	s := NewSessionStore(clock.NewMockClock(start), time.Minute, 0)

	id, err := s.Add(stubBrowser{name: "products"})
	require.NoError(t, err)
	assert.Len(t, id, 36)

	b, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "products", b.Collection())

	require.NoError(t, s.Remove(id))
	_, err = s.Get(id)
	assert.ErrorIs(t, err, domain.ErrViewNotFound)
	assert.ErrorIs(t, s.Remove(id), domain.ErrViewNotFound)
}

func TestSessionStore_IdleExpiry(t *testing.T) {
	clk := clock.NewMockClock(start)
	s := NewSessionStore(clk, 10*time.Minute, 0)

	id, err := s.Add(stubBrowser{name: "plans"})
	require.NoError(t, err)

	clk.Advance(9 * time.Minute)
	_, err = s.Get(id)
	require.NoError(t, err, "access refreshes the idle timer")

	clk.Advance(9 * time.Minute)
	_, err = s.Get(id)
	require.NoError(t, err)

	clk.Advance(11 * time.Minute)
	_, err = s.Get(id)
	assert.ErrorIs(t, err, domain.ErrViewNotFound)
	assert.Zero(t, s.Len())
}

func TestSessionStore_ZeroTTLNeverExpires(t *testing.T) {
	clk := clock.NewMockClock(start)
	s := NewSessionStore(clk, 0, 0)
	id, err := s.Add(stubBrowser{})
	require.NoError(t, err)

	clk.Advance(1000 * time.Hour)
	_, err = s.Get(id)
	assert.NoError(t, err)
}

func TestSessionStore_Capacity(t *testing.T) {
	clk := clock.NewMockClock(start)
	s := NewSessionStore(clk, time.Minute, 2)

	_, err := s.Add(stubBrowser{})
	require.NoError(t, err)
	_, err = s.Add(stubBrowser{})
	require.NoError(t, err)

	_, err = s.Add(stubBrowser{})
	assert.ErrorIs(t, err, domain.ErrTooManyViews)

	clk.Advance(2 * time.Minute)
	_, err = s.Add(stubBrowser{})
	require.NoError(t, err, "expired sessions free their slots")
	assert.Equal(t, 1, s.Len())
}

func TestSessionStore_Sweep(t *testing.T) {
	clk := clock.NewMockClock(start)
	s := NewSessionStore(clk, time.Minute, 0)

	old, _ := s.Add(stubBrowser{})
	clk.Advance(45 * time.Second)
	fresh, _ := s.Add(stubBrowser{})
	clk.Advance(30 * time.Second)

	assert.Equal(t, 1, s.Sweep())
	_, err := s.Get(old)
	assert.ErrorIs(t, err, domain.ErrViewNotFound)
	_, err = s.Get(fresh)
	assert.NoError(t, err)
}

func TestSessionStore_RunSweeperStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewSessionStore(clock.NewRealClock(), time.Millisecond, 0)
	_, _ = s.Add(stubBrowser{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- s.RunSweeper(ctx, 5*time.Millisecond, zap.NewNop())
	}()

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}
