package application

import (
	"context"
	"errors"
	"log"
	"strconv"

	coil "fabline/internal/coil/domain"
	"fabline/internal/dimension"
	"fabline/internal/observability/metrics"
)

// Row skip outcomes, used for logging and metrics labels.
const (
	outcomeImported      = "imported"
	outcomeHeaderRow     = "header_row"
	outcomeNoDiameter    = "no_diameter"
	outcomeBadDiameter   = "diameter_not_allowed"
	outcomeIncomplete    = "incomplete"
	outcomeRecomputeFail = "recompute_failed"
)

// Result summarizes one reconciliation run.
type Result struct {
	SheetsProcessed    int
	UnrecognizedSheets []string
	Imported           int
	SkippedRows        int
}

// Reconciler rebuilds coil specifications from extracted legacy workbook
// cells and full-replaces the target store with them.
type Reconciler struct {
	repo       coil.Repository
	classifier coil.Classifier
	logger     *log.Logger
}

// NewReconciler constructs a reconciler. The classifier is the per-source
// component-type rule; both legacy rules are in the domain package.
func NewReconciler(repo coil.Repository, classifier coil.Classifier, logger *log.Logger) (*Reconciler, error) {
	if repo == nil {
		return nil, errors.New("coil reconciler: nil repository")
	}
	if classifier == nil {
		return nil, errors.New("coil reconciler: nil classifier")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Reconciler{repo: repo, classifier: classifier, logger: logger}, nil
}

// Reconcile interprets the extracted sheets and replaces the stored
// specification set with the result. Sheets with unrecognized names and
// rows that fail the allow-list or completeness checks are skipped and
// logged; they never abort the run. The store write is total: rerunning
// with updated legacy data leaves no stale rows behind.
func (r *Reconciler) Reconcile(ctx context.Context, sheets []coil.Sheet) (Result, error) {
	var result Result
	// Keyed by part number so a duplicate within one run overwrites
	// instead of erroring; insertion order is kept for the store write.
	index := make(map[string]int)
	var specs []coil.Specification

	for _, sheet := range sheets {
		info, err := coil.ParseSheetName(sheet.Name)
		metrics.ObserveReconcileSheet(err)
		if err != nil {
			r.logger.Printf("coil: skipping sheet %q: %v", sheet.Name, err)
			result.UnrecognizedSheets = append(result.UnrecognizedSheets, sheet.Name)
			continue
		}
		result.SheetsProcessed++

		for _, row := range sheet.Rows {
			spec, outcome := r.reconcileRow(info, row)
			metrics.ObserveReconcileRow(outcome)
			if spec == nil {
				if outcome != outcomeHeaderRow {
					r.logger.Printf("coil: sheet %q row %d skipped: %s", sheet.Name, row.Index, outcome)
				}
				result.SkippedRows++
				continue
			}
			if at, ok := index[spec.PartNumber]; ok {
				specs[at] = *spec
				continue
			}
			index[spec.PartNumber] = len(specs)
			specs = append(specs, *spec)
		}
	}

	err := r.repo.ReplaceAll(ctx, specs)
	metrics.ObserveReconcileRun(err)
	if err != nil {
		return result, err
	}
	result.Imported = len(specs)
	r.logger.Printf("coil: reconciled %d specifications (%d rows skipped, %d sheets unrecognized)",
		result.Imported, result.SkippedRows, len(result.UnrecognizedSheets))
	return result, nil
}

// reconcileRow turns one workbook row into a specification, or reports why
// it cannot. Missing cells that carried formulas are recomputed with the
// same dimension math the workbook encoded.
func (r *Reconciler) reconcileRow(info coil.SheetInfo, row coil.Row) (*coil.Specification, string) {
	if row.Index < coil.HeaderRowThreshold {
		return nil, outcomeHeaderRow
	}

	if !row.Diameter.HasValue() {
		return nil, outcomeNoDiameter
	}
	diameter, err := strconv.ParseFloat(row.Diameter.Value, 64)
	if err != nil {
		return nil, outcomeNoDiameter
	}
	if !coil.DiameterAllowed(diameter) {
		return nil, outcomeBadDiameter
	}

	length, outcome := r.resolveLength(row.Length, diameter)
	if outcome != "" {
		return nil, outcome
	}

	partNumber := row.PartNumber.Value
	if partNumber == "" && row.PartNumber.HasFormula() {
		partNumber = coil.PartNumberFor(info.Material, diameter, length)
	}
	description := row.Description.Value
	if description == "" && row.Description.HasFormula() {
		description = coil.DescriptionFor(info.Material, diameter, length)
	}

	squareFeet, outcome := r.resolveSquareFeet(row.SquareFeet, diameter, length)
	if outcome != "" {
		return nil, outcome
	}

	if partNumber == "" || description == "" || length <= 0 || squareFeet <= 0 {
		return nil, outcomeIncomplete
	}

	return &coil.Specification{
		PartNumber:     partNumber,
		Description:    description,
		MaterialType:   info.Material,
		DiameterInches: diameter,
		ComponentType:  r.classifier.Classify(diameter),
		LengthInches:   length,
		SquareFeet:     squareFeet,
		Gauge:          coil.DefaultGauge,
		SheetSize:      info.SheetSize(),
	}, outcomeImported
}

func (r *Reconciler) resolveLength(cell coil.Cell, diameter float64) (float64, string) {
	if cell.HasValue() {
		length, err := strconv.ParseFloat(cell.Value, 64)
		if err != nil {
			return 0, outcomeIncomplete
		}
		return length, ""
	}
	if cell.HasFormula() {
		length, err := dimension.LengthFromDiameter(diameter)
		if err != nil {
			return 0, outcomeRecomputeFail
		}
		return length, ""
	}
	return 0, outcomeIncomplete
}

func (r *Reconciler) resolveSquareFeet(cell coil.Cell, diameter, length float64) (float64, string) {
	if cell.HasValue() {
		sqft, err := strconv.ParseFloat(cell.Value, 64)
		if err != nil {
			return 0, outcomeIncomplete
		}
		return sqft, ""
	}
	if cell.HasFormula() {
		sqft, err := dimension.SquareFeet(diameter, length)
		if err != nil {
			return 0, outcomeRecomputeFail
		}
		return sqft, ""
	}
	return 0, outcomeIncomplete
}
