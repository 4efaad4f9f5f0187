package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/browse/contracts"
	"github.com/light-bringer/storefront-service/internal/app/browse/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/collections"
	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/collection"
)

type fakeStore struct {
	owner string
	err   error
}

func (f *fakeStore) Products(context.Context) ([]catalog.Product, error) {
	return []catalog.Product{{ProductID: "p1"}, {ProductID: "p2", Featured: true}}, f.err
}

func (f *fakeStore) Raffles(context.Context) ([]catalog.Raffle, error) {
	return []catalog.Raffle{{RaffleID: "r1", Status: "open"}}, f.err
}

func (f *fakeStore) Plans(context.Context) ([]catalog.Plan, error) {
	return []catalog.Plan{{PlanID: "pl1"}}, f.err
}

func (f *fakeStore) Ads(_ context.Context, advertiserID string) ([]catalog.Ad, error) {
	f.owner = advertiserID
	return []catalog.Ad{{AdID: "a1", AdvertiserID: advertiserID}}, f.err
}

func (f *fakeStore) Transactions(_ context.Context, userID string) ([]catalog.Transaction, error) {
	f.owner = userID
	return []catalog.Transaction{{TransactionID: "t1", UserID: userID}}, f.err
}

func newCatalog(store *fakeStore, maxPageSize int) contracts.ViewFactory {
	set := collections.New(clock.NewMockClock(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)))
	return NewCatalog(store, set, nil, maxPageSize)
}

func TestCatalog_OpenEveryCollection(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	c := newCatalog(store, 0)

	for _, name := range collections.Names {
		t.Run(name, func(t *testing.T) {
			b, err := c.Open(contracts.OpenRequest{
				Collection: name,
				Owner:      "acct-1",
				Options:    collection.ViewOptions{PageSize: 10},
			})
			require.NoError(t, err)
			assert.Equal(t, name, b.Collection())

			require.NoError(t, b.Refresh(ctx))
			page := b.Page()
			assert.Equal(t, collection.StateReady, page.State)
			assert.Positive(t, page.Total)
		})
	}
}

func TestCatalog_OwnerScopedCollections(t *testing.T) {
	store := &fakeStore{}
	c := newCatalog(store, 0)

	for _, name := range []string{collections.Ads, collections.Transactions} {
		_, err := c.Open(contracts.OpenRequest{Collection: name, Options: collection.ViewOptions{PageSize: 5}})
		assert.ErrorIs(t, err, domain.ErrOwnerRequired, name)
	}

	b, err := c.Open(contracts.OpenRequest{Collection: collections.Ads, Owner: "adv-9", Options: collection.ViewOptions{PageSize: 5}})
	require.NoError(t, err)
	require.NoError(t, b.Refresh(context.Background()))
	assert.Equal(t, "adv-9", store.owner)
}

func TestCatalog_OpenErrors(t *testing.T) {
	c := newCatalog(&fakeStore{}, 50)

	_, err := c.Open(contracts.OpenRequest{Collection: "cars", Options: collection.ViewOptions{PageSize: 5}})
	assert.ErrorIs(t, err, domain.ErrUnknownCollection)

	_, err = c.Open(contracts.OpenRequest{Collection: collections.Products, Options: collection.ViewOptions{PageSize: 51}})
	assert.ErrorIs(t, err, domain.ErrPageSizeTooLarge)

	_, err = c.Open(contracts.OpenRequest{Collection: collections.Products, Options: collection.ViewOptions{PageSize: 5, Sort: "cheapest"}})
	assert.ErrorIs(t, err, collection.ErrUnknownSort)
}

func TestCatalog_StoreFailureMarksViewFailed(t *testing.T) {
	c := newCatalog(&fakeStore{err: errors.New("deadline exceeded")}, 0)
	b, err := c.Open(contracts.OpenRequest{Collection: collections.Plans, Options: collection.ViewOptions{PageSize: 5}})
	require.NoError(t, err)

	assert.Error(t, b.Refresh(context.Background()))
	assert.Equal(t, collection.StateFailed, b.Page().State)
}

func TestCatalog_Describe(t *testing.T) {
	desc := newCatalog(&fakeStore{}, 0).Describe()
	assert.Len(t, desc, len(collections.Names))
}
