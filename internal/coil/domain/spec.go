// Package coil models the legacy coil-length workbook records and the rules
// for reconciling them into importable specifications.
package coil

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
)

// Material is a stainless grade a coil sheet comes in.
type Material string

const (
	MaterialSS304 Material = "SS304"
	MaterialSS316 Material = "SS316"
)

// Code returns the short grade code used inside part numbers.
func (m Material) Code() string {
	switch m {
	case MaterialSS304:
		return "304"
	case MaterialSS316:
		return "316"
	}
	return string(m)
}

// ComponentType says which product family a coil is cut for.
type ComponentType string

const (
	ComponentHeater ComponentType = "HEATER"
	ComponentTank   ComponentType = "TANK"
)

// DefaultGauge is the coil gauge unless a sheet overrides it.
const DefaultGauge = "12GA"

// Specification is one reconciled coil record, keyed by part number.
type Specification struct {
	PartNumber     string
	Description    string
	MaterialType   Material
	DiameterInches float64
	ComponentType  ComponentType
	LengthInches   float64
	SquareFeet     float64
	Gauge          string
	SheetSize      string
}

// Repository stores coil specifications. A reconciliation run replaces the
// whole set; there is no incremental upsert path.
type Repository interface {
	// ReplaceAll deletes every stored specification and inserts the
	// given set atomically.
	ReplaceAll(ctx context.Context, specs []Specification) error
	List(ctx context.Context) ([]Specification, error)
	FindByPartNumber(ctx context.Context, partNumber string) (*Specification, error)
}

// SheetInfo is what a well-formed sheet name encodes.
type SheetInfo struct {
	WidthInches int
	Material    Material
}

var sheetNamePattern = regexp.MustCompile(`^(\d+)\s+Sheet\s+-\s+(SS\d+)$`)

// ParseSheetName extracts width and material from a sheet tab name like
// `48 Sheet - SS304`. Widths other than 48/60/72 and grades other than
// SS304/SS316 are not legacy coil sheets.
func ParseSheetName(name string) (SheetInfo, error) {
	m := sheetNamePattern.FindStringSubmatch(name)
	if m == nil {
		return SheetInfo{}, fmt.Errorf("%w: %q", ErrUnrecognizedSheetName, name)
	}
	width, err := strconv.Atoi(m[1])
	if err != nil || (width != 48 && width != 60 && width != 72) {
		return SheetInfo{}, fmt.Errorf("%w: %q has width %s", ErrUnrecognizedSheetName, name, m[1])
	}
	material := Material(m[2])
	if material != MaterialSS304 && material != MaterialSS316 {
		return SheetInfo{}, fmt.Errorf("%w: %q has material %s", ErrUnrecognizedSheetName, name, m[2])
	}
	return SheetInfo{WidthInches: width, Material: material}, nil
}

// SheetSize renders the stored sheet size, e.g. `48"`.
func (i SheetInfo) SheetSize() string {
	return fmt.Sprintf("%d\"", i.WidthInches)
}

// PartNumberFor rebuilds the workbook part-number template for a coil whose
// part-number cell held only a formula: `{grade}-12-{diam}-{length}`.
func PartNumberFor(material Material, diameter, length float64) string {
	return fmt.Sprintf("%s-12-%s-%s", material.Code(), formatNumber(diameter), formatNumber(length))
}

// DescriptionFor rebuilds the workbook description template:
// `SHEET, {material}, 12GA, {diam}" X {length}`.
func DescriptionFor(material Material, diameter, length float64) string {
	return fmt.Sprintf("SHEET, %s, %s, %s\" X %s", material, DefaultGauge, formatNumber(diameter), formatNumber(length))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
