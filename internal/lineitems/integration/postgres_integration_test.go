package integration_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	lineitemsapp "fabline/internal/lineitems/application"
	lineitems "fabline/internal/lineitems/domain"
	lineitemspg "fabline/internal/lineitems/infrastructure/postgres"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func TestJobGenerationRoundTrip(t *testing.T) {
	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		t.Skip("PG_DSN not set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := applyMigrations(db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	ctx := context.Background()
	_, _ = db.ExecContext(ctx, "DELETE FROM line_items")
	_, _ = db.ExecContext(ctx, "DELETE FROM jobs")

	repo := lineitemspg.NewRepository(db)
	service, err := lineitemsapp.NewService(repo, repo, log.New(os.Stderr, "", 0))
	if err != nil {
		t.Fatalf("service: %v", err)
	}

	job, err := service.CreateJob(ctx, "33371", "Test Plant", "ACB")
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	tankCfg := lineitems.TankConfig{
		JobNumber:  "33371",
		Dash:       "03",
		DiameterIn: 96,
		HeightFt:   10,
		TypeCode:   "HW",
		Material:   "304",
	}
	if _, err := service.SaveTank(ctx, job.ID, tankCfg); err != nil {
		t.Fatalf("save tank: %v", err)
	}

	pumpCfg := lineitems.PumpConfig{
		JobNumber:  "33371",
		Dash:       "05",
		PumpCount:  "DUPLEX",
		Pressure:   "MP",
		TypeCode:   "HW",
		HP:         5,
		Material:   "304",
		FrameLenIn: 60,
		FrameWIn:   30,
		FrameHIn:   120,
	}
	if _, err := service.SavePump(ctx, job.ID, pumpCfg); err != nil {
		t.Fatalf("save pump: %v", err)
	}

	items, err := service.ListJobItems(ctx, job.ID)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 6 {
		t.Fatalf("expected 6 items, got %d", len(items))
	}
	if items[0].PartNumber != "33371-03" {
		t.Fatalf("first part number = %q", items[0].PartNumber)
	}
	if items[len(items)-1].PartNumber != "33371-05.1-A" {
		t.Fatalf("last part number = %q", items[len(items)-1].PartNumber)
	}
	for _, item := range items {
		if item.BOMNumber != item.PartNumber+"-000" {
			t.Fatalf("bom %q for pn %q", item.BOMNumber, item.PartNumber)
		}
		if len(item.Params) == 0 {
			t.Fatalf("params missing for %q", item.PartNumber)
		}
	}
}

func applyMigrations(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id          TEXT PRIMARY KEY,
			job_number  TEXT NOT NULL,
			job_name    TEXT NOT NULL DEFAULT '',
			drafter     TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS line_items (
			id           TEXT PRIMARY KEY,
			job_id       TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
			kind         TEXT NOT NULL,
			part_number  TEXT NOT NULL,
			description  TEXT NOT NULL,
			bom_number   TEXT NOT NULL,
			template     TEXT NOT NULL,
			product_type TEXT NOT NULL,
			params       JSONB NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_line_items_job ON line_items(job_id)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
