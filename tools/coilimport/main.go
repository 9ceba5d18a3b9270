// Command coilimport reconciles a legacy coil workbook into the coil
// specification store.
package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib"

	coilapp "fabline/internal/coil/application"
	coil "fabline/internal/coil/domain"
	coilmem "fabline/internal/coil/infrastructure/memory"
	coilpg "fabline/internal/coil/infrastructure/postgres"
	coilif "fabline/internal/coil/interfaces"
)

type config struct {
	dbURL      string
	workbook   string
	classifier string
	outCSV     string
	dryRun     bool
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	logger := log.New(os.Stderr, "coilimport ", log.LstdFlags)

	var repo coil.Repository
	if cfg.dryRun {
		repo = coilmem.NewRepository()
	} else {
		db, err := sql.Open("pgx", cfg.dbURL)
		if err != nil {
			fmt.Fprintln(os.Stderr, "db open:", err)
			os.Exit(2)
		}
		defer db.Close()
		repo = coilpg.NewRepository(db)
	}

	classifier, err := pickClassifier(cfg.classifier)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	reconciler, err := coilapp.NewReconciler(repo, classifier, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	sheets, err := coilif.ExtractWorkbook(cfg.workbook)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read workbook:", err)
		os.Exit(2)
	}

	ctx := context.Background()
	result, err := reconciler.Reconcile(ctx, sheets)
	if err != nil {
		fmt.Fprintln(os.Stderr, "reconcile:", err)
		os.Exit(1)
	}

	if cfg.outCSV != "" {
		specs, err := repo.List(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(1)
		}
		if err := writeSpecsCSV(cfg.outCSV, specs); err != nil {
			fmt.Fprintln(os.Stderr, "write csv:", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Imported %d specifications from %d sheets (%d rows skipped, %d sheets unrecognized)\n",
		result.Imported, result.SheetsProcessed, result.SkippedRows, len(result.UnrecognizedSheets))
}

func parseFlags() (config, error) {
	var cfg config
	flag.StringVar(&cfg.dbURL, "db", getenvDefault("DATABASE_URL", getenvDefault("PG_DSN", "")), "Postgres DSN")
	flag.StringVar(&cfg.workbook, "workbook", "", "legacy coil workbook path (.xlsx)")
	flag.StringVar(&cfg.classifier, "classifier", "threshold", "component classifier: threshold or legacy")
	flag.StringVar(&cfg.outCSV, "out-csv", "", "also write the imported set to a CSV file (optional)")
	flag.BoolVar(&cfg.dryRun, "dry-run", false, "reconcile in memory without touching the database")
	flag.Parse()

	if cfg.workbook == "" {
		return cfg, errors.New("missing --workbook")
	}
	if !cfg.dryRun && cfg.dbURL == "" {
		return cfg, errors.New("missing --db or DATABASE_URL/PG_DSN (or pass --dry-run)")
	}
	return cfg, nil
}

func pickClassifier(name string) (coil.Classifier, error) {
	switch name {
	case "threshold":
		return coil.DefaultThresholdClassifier, nil
	case "legacy":
		return coil.NewMembershipClassifier(coil.LegacyHeaterDiameters()), nil
	default:
		return nil, fmt.Errorf("unknown classifier %q (threshold or legacy)", name)
	}
}

func writeSpecsCSV(path string, specs []coil.Specification) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{
		"part_number",
		"description",
		"material_type",
		"diameter_inches",
		"component_type",
		"length_inches",
		"square_feet",
		"gauge",
		"sheet_size",
	}); err != nil {
		return err
	}
	for _, spec := range specs {
		if err := writer.Write([]string{
			spec.PartNumber,
			spec.Description,
			string(spec.MaterialType),
			formatFloat(spec.DiameterInches),
			string(spec.ComponentType),
			formatFloat(spec.LengthInches),
			formatFloat(spec.SquareFeet),
			spec.Gauge,
			spec.SheetSize,
		}); err != nil {
			return err
		}
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
