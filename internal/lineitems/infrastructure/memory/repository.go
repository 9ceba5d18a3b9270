// Package memory holds in-memory repositories for demo/testing.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	lineitems "fabline/internal/lineitems/domain"
)

// Repository keeps jobs and their items in process memory. It implements
// both lineitems.JobRepository and lineitems.ItemRepository.
type Repository struct {
	mu    sync.RWMutex
	jobs  map[string]lineitems.Job
	items map[string][]lineitems.StoredItem
	seq   int
}

// NewRepository constructs an empty repository.
func NewRepository() *Repository {
	return &Repository{
		jobs:  make(map[string]lineitems.Job),
		items: make(map[string][]lineitems.StoredItem),
	}
}

// Insert stores a job.
func (r *Repository) Insert(ctx context.Context, job *lineitems.Job) error {
	_ = ctx
	if job == nil || job.ID == "" {
		return lineitems.ErrJobNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = *job
	return nil
}

// Get loads a job by id.
func (r *Repository) Get(ctx context.Context, id string) (*lineitems.Job, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, lineitems.ErrJobNotFound
	}
	return &job, nil
}

// List returns all jobs.
func (r *Repository) List(ctx context.Context) ([]lineitems.Job, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]lineitems.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		out = append(out, job)
	}
	return out, nil
}

// Append stores one generation of items against a job.
func (r *Repository) Append(ctx context.Context, jobID string, items []lineitems.LineItem) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[jobID]; !ok {
		return lineitems.ErrJobNotFound
	}
	now := time.Now().UTC()
	for _, item := range items {
		r.seq++
		r.items[jobID] = append(r.items[jobID], lineitems.StoredItem{
			LineItem:  item,
			ID:        fmt.Sprintf("mem-%d", r.seq),
			JobID:     jobID,
			CreatedAt: now,
		})
	}
	return nil
}

// ListByJob returns the stored items for a job in insertion order.
func (r *Repository) ListByJob(ctx context.Context, jobID string) ([]lineitems.StoredItem, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.jobs[jobID]; !ok {
		return nil, lineitems.ErrJobNotFound
	}
	out := make([]lineitems.StoredItem, len(r.items[jobID]))
	copy(out, r.items[jobID])
	return out, nil
}
