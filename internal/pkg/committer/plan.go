// Package committer collects Spanner mutations into a plan and applies them
// atomically.
//
// Repositories and seeders never write directly. They build mutations through
// the table models, add them to a CommitPlan and hand the plan to a Committer:
//
//	plan := committer.NewPlan()
//	for _, p := range products {
//	    plan.Add(productModel.InsertMut(p))
//	}
//	err := c.Apply(ctx, plan)
//
// Large plans can be split with ApplyInBatches; each batch is atomic on its
// own, the plan as a whole is not.
package committer

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
)

// CommitPlan is a typed wrapper around an ordered list of Spanner mutations.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Batches splits the plan into consecutive chunks of at most size mutations.
func (cp *CommitPlan) Batches(size int) [][]*spanner.Mutation {
	if size <= 0 || len(cp.mutations) <= size {
		if cp.IsEmpty() {
			return nil
		}
		return [][]*spanner.Mutation{cp.mutations}
	}

	batches := make([][]*spanner.Mutation, 0, (len(cp.mutations)+size-1)/size)
	for start := 0; start < len(cp.mutations); start += size {
		end := min(start+size, len(cp.mutations))
		batches = append(batches, cp.mutations[start:end])
	}
	return batches
}

// Applier is the subset of *spanner.Client the committer needs.
type Applier interface {
	Apply(ctx context.Context, ms []*spanner.Mutation, opts ...spanner.ApplyOption) (time.Time, error)
}

// Committer provides transaction execution for CommitPlans.
type Committer struct {
	client Applier
}

// NewCommitter creates a new Committer.
func NewCommitter(client Applier) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically within a Spanner transaction.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}
	return nil
}

// ApplyInBatches commits the plan in chunks of at most size mutations and
// returns the number of mutations written before any failure.
func (c *Committer) ApplyInBatches(ctx context.Context, plan *CommitPlan, size int) (int, error) {
	written := 0
	for i, batch := range plan.Batches(size) {
		if _, err := c.client.Apply(ctx, batch); err != nil {
			return written, fmt.Errorf("failed to apply batch %d: %w", i, err)
		}
		written += len(batch)
	}
	return written, nil
}
