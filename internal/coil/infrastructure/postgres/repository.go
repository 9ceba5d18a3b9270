// Package postgres persists reconciled coil specifications.
//
// Schema:
//
//	CREATE TABLE coil_specifications (
//	    part_number     TEXT PRIMARY KEY,
//	    description     TEXT NOT NULL,
//	    material_type   TEXT NOT NULL,
//	    diameter_inches DOUBLE PRECISION NOT NULL,
//	    component_type  TEXT NOT NULL,
//	    length_inches   DOUBLE PRECISION NOT NULL,
//	    square_feet     DOUBLE PRECISION NOT NULL,
//	    gauge           TEXT NOT NULL,
//	    sheet_size      TEXT NOT NULL,
//	    position        INTEGER NOT NULL
//	);
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	coil "fabline/internal/coil/domain"
)

const defaultSpecsTable = "coil_specifications"

// Repository is the Postgres implementation of the coil specification store.
type Repository struct {
	db         *sql.DB
	specsTable string
}

func NewRepository(db *sql.DB, opts ...RepositoryOption) *Repository {
	repo := &Repository{db: db, specsTable: defaultSpecsTable}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// RepositoryOption configures the repository.
type RepositoryOption func(*Repository)

// WithTable overrides the default table name.
func WithTable(specs string) RepositoryOption {
	return func(repo *Repository) {
		if specs != "" {
			repo.specsTable = specs
		}
	}
}

// ReplaceAll deletes every stored specification and inserts the new set in
// one transaction. A reconciliation run is the unit of truth: partial
// writes never survive.
func (r *Repository) ReplaceAll(ctx context.Context, specs []coil.Specification) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, r.specsTable)); err != nil {
		return err
	}

	query := fmt.Sprintf(`
INSERT INTO %s (part_number, description, material_type, diameter_inches, component_type, length_inches, square_feet, gauge, sheet_size, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`, r.specsTable)

	for i, spec := range specs {
		if _, err := tx.ExecContext(ctx, query,
			spec.PartNumber, spec.Description, string(spec.MaterialType), spec.DiameterInches,
			string(spec.ComponentType), spec.LengthInches, spec.SquareFeet, spec.Gauge, spec.SheetSize, i,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// List returns the stored set in reconciliation order.
func (r *Repository) List(ctx context.Context) ([]coil.Specification, error) {
	query := fmt.Sprintf(`
SELECT part_number, description, material_type, diameter_inches, component_type, length_inches, square_feet, gauge, sheet_size
FROM %s
ORDER BY position ASC`, r.specsTable)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var specs []coil.Specification
	for rows.Next() {
		spec, err := scanSpec(rows.Scan)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, rows.Err()
}

// FindByPartNumber loads one specification.
func (r *Repository) FindByPartNumber(ctx context.Context, partNumber string) (*coil.Specification, error) {
	query := fmt.Sprintf(`
SELECT part_number, description, material_type, diameter_inches, component_type, length_inches, square_feet, gauge, sheet_size
FROM %s
WHERE part_number = $1`, r.specsTable)

	spec, err := scanSpec(r.db.QueryRowContext(ctx, query, partNumber).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", coil.ErrSpecNotFound, partNumber)
	}
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func scanSpec(scan func(...any) error) (coil.Specification, error) {
	var (
		spec      coil.Specification
		material  string
		component string
	)
	err := scan(&spec.PartNumber, &spec.Description, &material, &spec.DiameterInches,
		&component, &spec.LengthInches, &spec.SquareFeet, &spec.Gauge, &spec.SheetSize)
	if err != nil {
		return coil.Specification{}, err
	}
	spec.MaterialType = coil.Material(material)
	spec.ComponentType = coil.ComponentType(component)
	return spec, nil
}
