package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

type recordingApplier struct {
	batches int
	total   int
	err     error
	// failAt fails the batch with this 1-based index; 0 never fails.
	failAt int
}

func (r *recordingApplier) Apply(_ context.Context, ms []*spanner.Mutation, _ ...spanner.ApplyOption) (time.Time, error) {
	if r.err != nil {
		return time.Time{}, r.err
	}
	if r.failAt > 0 && r.batches+1 == r.failAt {
		return time.Time{}, errors.New("aborted")
	}
	r.batches++
	r.total += len(ms)
	return time.Now(), nil
}

func TestSeed(t *testing.T) {
	rows, err := LoadFixtures("testdata/catalog.yaml")
	require.NoError(t, err)

	plan := SeedPlan(rows)
	assert.Equal(t, 12, plan.Count())

	app := &recordingApplier{}
	written, err := Seed(context.Background(), committer.NewCommitter(app), rows)
	require.NoError(t, err)
	assert.Equal(t, 12, written)
	assert.Equal(t, 1, app.batches)
}

func TestSeed_Failure(t *testing.T) {
	rows, err := LoadFixtures("testdata/catalog.yaml")
	require.NoError(t, err)

	app := &recordingApplier{err: errors.New("permission denied")}
	_, err = Seed(context.Background(), committer.NewCommitter(app), rows)
	assert.ErrorContains(t, err, "failed to seed catalog")
}

func TestSeed_PartialBatches(t *testing.T) {
	base, err := LoadFixtures("testdata/catalog.yaml")
	require.NoError(t, err)

	rows := &Rows{}
	for range SeedBatchSize + 1 {
		rows.Products = append(rows.Products, base.Products[0])
	}

	app := &recordingApplier{failAt: 2}
	written, err := Seed(context.Background(), committer.NewCommitter(app), rows)
	require.ErrorContains(t, err, "failed to seed catalog")
	assert.Equal(t, SeedBatchSize, written, "the first batch stays committed")
	assert.Equal(t, 1, app.batches)

	app.failAt = 0
	written, err = Seed(context.Background(), committer.NewCommitter(app), rows)
	require.NoError(t, err)
	assert.Equal(t, SeedBatchSize+1, written)
}
