package lineitems

import (
	"context"
	"time"
)

// Job groups the generated line items for one shop order.
type Job struct {
	ID        string
	JobNumber string
	JobName   string
	Drafter   string
	CreatedAt time.Time
}

// StoredItem is a persisted line item together with its job linkage.
type StoredItem struct {
	LineItem
	ID        string
	JobID     string
	CreatedAt time.Time
}

// JobRepository persists jobs.
type JobRepository interface {
	Insert(ctx context.Context, job *Job) error
	Get(ctx context.Context, id string) (*Job, error)
	List(ctx context.Context) ([]Job, error)
}

// ItemRepository persists generated line items. A save appends a fresh
// generation; items are never updated in place.
type ItemRepository interface {
	Append(ctx context.Context, jobID string, items []LineItem) error
	ListByJob(ctx context.Context, jobID string) ([]StoredItem, error)
}
