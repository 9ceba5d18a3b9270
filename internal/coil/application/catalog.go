package application

import (
	"context"
	"errors"
	"strings"

	coil "fabline/internal/coil/domain"
)

// Catalog answers read queries against the reconciled specification set.
type Catalog struct {
	repo coil.Repository
}

func NewCatalog(repo coil.Repository) (*Catalog, error) {
	if repo == nil {
		return nil, errors.New("coil catalog: nil repository")
	}
	return &Catalog{repo: repo}, nil
}

// Filter narrows a catalog listing. Empty fields match everything.
type Filter struct {
	Material      string
	ComponentType string
}

func (c *Catalog) Find(ctx context.Context, partNumber string) (*coil.Specification, error) {
	return c.repo.FindByPartNumber(ctx, partNumber)
}

// List returns specifications matching the filter, in stored order.
func (c *Catalog) List(ctx context.Context, filter Filter) ([]coil.Specification, error) {
	all, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter.Material == "" && filter.ComponentType == "" {
		return all, nil
	}
	out := make([]coil.Specification, 0, len(all))
	for _, spec := range all {
		if filter.Material != "" && !strings.EqualFold(string(spec.MaterialType), filter.Material) {
			continue
		}
		if filter.ComponentType != "" && !strings.EqualFold(string(spec.ComponentType), filter.ComponentType) {
			continue
		}
		out = append(out, spec)
	}
	return out, nil
}
