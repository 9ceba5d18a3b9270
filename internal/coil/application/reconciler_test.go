package application

import (
	"context"
	"log"
	"os"
	"testing"

	coil "fabline/internal/coil/domain"
	"fabline/internal/coil/infrastructure/memory"
)

func newTestReconciler(t *testing.T) (*Reconciler, *memory.Repository) {
	t.Helper()
	repo := memory.NewRepository()
	rec, err := NewReconciler(repo, coil.DefaultThresholdClassifier, log.New(os.Stderr, "", 0))
	if err != nil {
		t.Fatalf("NewReconciler: %v", err)
	}
	return rec, repo
}

func valueCell(v string) coil.Cell   { return coil.Cell{Value: v} }
func formulaCell(f string) coil.Cell { return coil.Cell{Formula: f} }

func dataRow(index int, diameter string) coil.Row {
	return coil.Row{
		Index:       index,
		Diameter:    valueCell(diameter),
		Length:      formulaCell("=CEILING(PI()*(A3-0.1094)+2,0.25)"),
		PartNumber:  formulaCell(`=CONCATENATE("304-12-",A3,"-",B3)`),
		Description: formulaCell(`=CONCATENATE("SHEET, SS304, 12GA, ",A3,""" X ",B3)`),
		SquareFeet:  formulaCell("=ROUND((A3*B3)/144*4,0)/4"),
	}
}

func TestReconcileRecomputesFormulaCells(t *testing.T) {
	rec, repo := newTestReconciler(t)
	sheets := []coil.Sheet{{
		Name: "48 Sheet - SS304",
		Rows: []coil.Row{dataRow(3, "48")},
	}}

	result, err := rec.Reconcile(context.Background(), sheets)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if result.Imported != 1 || result.SheetsProcessed != 1 {
		t.Fatalf("result = %+v", result)
	}

	specs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	spec := specs[0]
	if spec.PartNumber != "304-12-48-152.5" {
		t.Fatalf("PartNumber = %q", spec.PartNumber)
	}
	if spec.Description != `SHEET, SS304, 12GA, 48" X 152.5` {
		t.Fatalf("Description = %q", spec.Description)
	}
	if spec.LengthInches != 152.5 || spec.SquareFeet != 50.75 {
		t.Fatalf("length/sqft = %v/%v", spec.LengthInches, spec.SquareFeet)
	}
	if spec.ComponentType != coil.ComponentTank {
		t.Fatalf("ComponentType = %v", spec.ComponentType)
	}
	if spec.Gauge != "12GA" || spec.SheetSize != `48"` {
		t.Fatalf("gauge/sheet = %q/%q", spec.Gauge, spec.SheetSize)
	}
}

func TestReconcilePrefersMaterializedValues(t *testing.T) {
	rec, repo := newTestReconciler(t)
	row := coil.Row{
		Index:       3,
		Diameter:    valueCell("48"),
		Length:      valueCell("160"),
		PartNumber:  valueCell("304-12-48-160"),
		Description: valueCell(`SHEET, SS304, 12GA, 48" X 160`),
		SquareFeet:  valueCell("53.25"),
	}
	if _, err := rec.Reconcile(context.Background(), []coil.Sheet{{Name: "48 Sheet - SS304", Rows: []coil.Row{row}}}); err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	specs, _ := repo.List(context.Background())
	if specs[0].LengthInches != 160 || specs[0].SquareFeet != 53.25 {
		t.Fatalf("stored %v/%v, want the workbook's own values", specs[0].LengthInches, specs[0].SquareFeet)
	}
}

func TestReconcileSkipsUnrecognizedSheets(t *testing.T) {
	rec, repo := newTestReconciler(t)
	sheets := []coil.Sheet{
		{Name: "Summary", Rows: []coil.Row{dataRow(3, "48")}},
		{Name: "60 Sheet - SS316", Rows: []coil.Row{dataRow(3, "60")}},
	}
	result, err := rec.Reconcile(context.Background(), sheets)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if len(result.UnrecognizedSheets) != 1 || result.UnrecognizedSheets[0] != "Summary" {
		t.Fatalf("UnrecognizedSheets = %v", result.UnrecognizedSheets)
	}
	if result.SheetsProcessed != 1 || result.Imported != 1 {
		t.Fatalf("result = %+v", result)
	}
	specs, _ := repo.List(context.Background())
	if specs[0].MaterialType != coil.MaterialSS316 {
		t.Fatalf("MaterialType = %v", specs[0].MaterialType)
	}
}

func TestReconcileSkipsHeaderAndBadRows(t *testing.T) {
	rec, _ := newTestReconciler(t)
	sheets := []coil.Sheet{{
		Name: "48 Sheet - SS304",
		Rows: []coil.Row{
			dataRow(1, "48"),  // header
			dataRow(2, "48"),  // header
			dataRow(3, "50"),  // not on the allow-list
			dataRow(4, ""),    // no diameter
			{Index: 5, Diameter: valueCell("48")}, // nothing to build from
			dataRow(6, "48"),
		},
	}}
	result, err := rec.Reconcile(context.Background(), sheets)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if result.Imported != 1 {
		t.Fatalf("Imported = %d", result.Imported)
	}
	if result.SkippedRows != 5 {
		t.Fatalf("SkippedRows = %d", result.SkippedRows)
	}
}

func TestReconcileDuplicatePartNumberLastWins(t *testing.T) {
	rec, repo := newTestReconciler(t)
	first := dataRow(3, "48")
	second := dataRow(4, "48")
	second.SquareFeet = valueCell("99")
	sheets := []coil.Sheet{{Name: "48 Sheet - SS304", Rows: []coil.Row{first, second}}}

	result, err := rec.Reconcile(context.Background(), sheets)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if result.Imported != 1 {
		t.Fatalf("Imported = %d", result.Imported)
	}
	specs, _ := repo.List(context.Background())
	if specs[0].SquareFeet != 99 {
		t.Fatalf("SquareFeet = %v, want the later row to win", specs[0].SquareFeet)
	}
}

func TestReconcileReplacesPreviousRun(t *testing.T) {
	rec, repo := newTestReconciler(t)
	ctx := context.Background()

	if _, err := rec.Reconcile(ctx, []coil.Sheet{{Name: "48 Sheet - SS304", Rows: []coil.Row{dataRow(3, "48"), dataRow(4, "54")}}}); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := rec.Reconcile(ctx, []coil.Sheet{{Name: "48 Sheet - SS304", Rows: []coil.Row{dataRow(3, "60")}}}); err != nil {
		t.Fatalf("second run: %v", err)
	}

	specs, _ := repo.List(ctx)
	if len(specs) != 1 || specs[0].DiameterInches != 60 {
		t.Fatalf("stored after rerun: %+v", specs)
	}
}
