// Package postgres persists jobs and generated line items.
//
// Schema:
//
//	CREATE TABLE jobs (
//	    id          TEXT PRIMARY KEY,
//	    job_number  TEXT NOT NULL,
//	    job_name    TEXT NOT NULL DEFAULT '',
//	    drafter     TEXT NOT NULL DEFAULT '',
//	    created_at  TIMESTAMPTZ NOT NULL
//	);
//
//	CREATE TABLE line_items (
//	    id           TEXT PRIMARY KEY,
//	    job_id       TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
//	    kind         TEXT NOT NULL,
//	    part_number  TEXT NOT NULL,
//	    description  TEXT NOT NULL,
//	    bom_number   TEXT NOT NULL,
//	    template     TEXT NOT NULL,
//	    product_type TEXT NOT NULL,
//	    params       JSONB NOT NULL,
//	    created_at   TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX idx_line_items_job ON line_items(job_id);
package postgres

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	lineitems "fabline/internal/lineitems/domain"
)

const (
	defaultJobsTable  = "jobs"
	defaultItemsTable = "line_items"
)

// Repository is the Postgres implementation of the job and item stores.
type Repository struct {
	db         *sql.DB
	jobsTable  string
	itemsTable string
}

// NewRepository constructs a repository using the default table names.
func NewRepository(db *sql.DB, opts ...RepositoryOption) *Repository {
	repo := &Repository{
		db:         db,
		jobsTable:  defaultJobsTable,
		itemsTable: defaultItemsTable,
	}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// RepositoryOption configures the repository.
type RepositoryOption func(*Repository)

// WithTables overrides the default table names.
func WithTables(jobs, items string) RepositoryOption {
	return func(repo *Repository) {
		if jobs != "" {
			repo.jobsTable = jobs
		}
		if items != "" {
			repo.itemsTable = items
		}
	}
}

// Insert stores a job.
func (r *Repository) Insert(ctx context.Context, job *lineitems.Job) error {
	if job == nil {
		return errors.New("lineitems repo: nil job")
	}
	query := fmt.Sprintf(`
INSERT INTO %s (id, job_number, job_name, drafter, created_at)
VALUES ($1, $2, $3, $4, $5)`, r.jobsTable)
	_, err := r.db.ExecContext(ctx, query, job.ID, job.JobNumber, job.JobName, job.Drafter, job.CreatedAt)
	return err
}

// Get loads a job by id.
func (r *Repository) Get(ctx context.Context, id string) (*lineitems.Job, error) {
	query := fmt.Sprintf(`
SELECT id, job_number, job_name, drafter, created_at
FROM %s
WHERE id = $1`, r.jobsTable)

	var job lineitems.Job
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID, &job.JobNumber, &job.JobName, &job.Drafter, &job.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lineitems.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List returns all jobs, newest first.
func (r *Repository) List(ctx context.Context) ([]lineitems.Job, error) {
	query := fmt.Sprintf(`
SELECT id, job_number, job_name, drafter, created_at
FROM %s
ORDER BY created_at DESC`, r.jobsTable)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []lineitems.Job
	for rows.Next() {
		var job lineitems.Job
		if err := rows.Scan(&job.ID, &job.JobNumber, &job.JobName, &job.Drafter, &job.CreatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Append stores one generation of items against a job in a single
// transaction, so a failed generation never half-saves.
func (r *Repository) Append(ctx context.Context, jobID string, items []lineitems.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
INSERT INTO %s (id, job_id, kind, part_number, description, bom_number, template, product_type, params, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`, r.itemsTable)

	now := time.Now().UTC()
	for _, item := range items {
		params, err := json.Marshal(item.Params)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query,
			newRowID(), jobID, string(item.Kind), item.PartNumber, item.Description,
			item.BOMNumber, string(item.Template), string(item.ProductType), params, now,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListByJob returns the stored items for a job in insertion order.
func (r *Repository) ListByJob(ctx context.Context, jobID string) ([]lineitems.StoredItem, error) {
	query := fmt.Sprintf(`
SELECT id, job_id, kind, part_number, description, bom_number, template, product_type, params, created_at
FROM %s
WHERE job_id = $1
ORDER BY created_at ASC, id ASC`, r.itemsTable)

	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []lineitems.StoredItem
	for rows.Next() {
		var (
			item   lineitems.StoredItem
			kind   string
			tmpl   string
			ptype  string
			params []byte
		)
		if err := rows.Scan(&item.ID, &item.JobID, &kind, &item.PartNumber, &item.Description,
			&item.BOMNumber, &tmpl, &ptype, &params, &item.CreatedAt); err != nil {
			return nil, err
		}
		item.Kind = lineitems.Kind(kind)
		item.Template = lineitems.Template(tmpl)
		item.ProductType = lineitems.ProductType(ptype)
		if len(params) > 0 {
			if err := json.Unmarshal(params, &item.Params); err != nil {
				return nil, err
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func newRowID() string {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return hex.EncodeToString(buf[:])
	}
	buf[6] = (buf[6] & 0x0f) | 0x40
	buf[8] = (buf[8] & 0x3f) | 0x80
	return hex.EncodeToString(buf[:])
}
