package integration_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	coil "fabline/internal/coil/domain"
	coilpg "fabline/internal/coil/infrastructure/postgres"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func TestReplaceAllIsTotal(t *testing.T) {
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
	repo := coilpg.NewRepository(db)

	first := []coil.Specification{
		spec("304-12-48-152.5", coil.MaterialSS304, 48, 152.5, 50.75),
		spec("304-12-54-171.5", coil.MaterialSS304, 54, 171.5, 64.25),
	}
	if err := repo.ReplaceAll(ctx, first); err != nil {
		t.Fatalf("first replace: %v", err)
	}

	second := []coil.Specification{
		spec("316-12-60-190.25", coil.MaterialSS316, 60, 190.25, 79.25),
	}
	if err := repo.ReplaceAll(ctx, second); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	specs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(specs) != 1 || specs[0].PartNumber != "316-12-60-190.25" {
		t.Fatalf("stored after rerun: %+v", specs)
	}

	found, err := repo.FindByPartNumber(ctx, "316-12-60-190.25")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.MaterialType != coil.MaterialSS316 || found.SquareFeet != 79.25 {
		t.Fatalf("found = %+v", found)
	}

	if _, err := repo.FindByPartNumber(ctx, "304-12-48-152.5"); !errors.Is(err, coil.ErrSpecNotFound) {
		t.Fatalf("stale row still findable: %v", err)
	}
}

func spec(pn string, material coil.Material, diameter, length, sqft float64) coil.Specification {
	return coil.Specification{
		PartNumber:     pn,
		Description:    coil.DescriptionFor(material, diameter, length),
		MaterialType:   material,
		DiameterInches: diameter,
		ComponentType:  coil.ComponentTank,
		LengthInches:   length,
		SquareFeet:     sqft,
		Gauge:          coil.DefaultGauge,
		SheetSize:      `48"`,
	}
}

func applyMigrations(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS coil_specifications (
		part_number     TEXT PRIMARY KEY,
		description     TEXT NOT NULL,
		material_type   TEXT NOT NULL,
		diameter_inches DOUBLE PRECISION NOT NULL,
		component_type  TEXT NOT NULL,
		length_inches   DOUBLE PRECISION NOT NULL,
		square_feet     DOUBLE PRECISION NOT NULL,
		gauge           TEXT NOT NULL,
		sheet_size      TEXT NOT NULL,
		position        INTEGER NOT NULL
	)`)
	return err
}
