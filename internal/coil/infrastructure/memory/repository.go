// Package memory backs the coil specification store with process-local
// state, for tests and single-node runs without Postgres.
package memory

import (
	"context"
	"fmt"
	"sync"

	coil "fabline/internal/coil/domain"
)

type Repository struct {
	mu    sync.RWMutex
	specs []coil.Specification
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) ReplaceAll(_ context.Context, specs []coil.Specification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs = append([]coil.Specification(nil), specs...)
	return nil
}

func (r *Repository) List(_ context.Context) ([]coil.Specification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]coil.Specification(nil), r.specs...), nil
}

func (r *Repository) FindByPartNumber(_ context.Context, partNumber string) (*coil.Specification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.specs {
		if r.specs[i].PartNumber == partNumber {
			spec := r.specs[i]
			return &spec, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", coil.ErrSpecNotFound, partNumber)
}
