package interfaces

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	coil "fabline/internal/coil/domain"
)

// Legacy workbook column layout, identical on every coil tab.
const (
	colDiameter    = "A"
	colLength      = "B"
	colPartNumber  = "C"
	colDescription = "D"
	colSquareFeet  = "E"
)

// ExtractWorkbook opens a legacy coil workbook and extracts every tab into
// the cell model the reconciler consumes. Formula strings are carried
// alongside values so missing values can be recomputed downstream; no
// interpretation happens here.
func ExtractWorkbook(path string) ([]coil.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("coil workbook: open %s: %w", path, err)
	}
	defer f.Close()

	var sheets []coil.Sheet
	for _, name := range f.GetSheetList() {
		sheet, err := extractSheet(f, name)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func extractSheet(f *excelize.File, name string) (coil.Sheet, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return coil.Sheet{}, fmt.Errorf("coil workbook: sheet %s: %w", name, err)
	}

	sheet := coil.Sheet{Name: name}
	for i := range rows {
		index := i + 1
		row := coil.Row{Index: index}
		for _, bind := range []struct {
			col  string
			cell *coil.Cell
		}{
			{colDiameter, &row.Diameter},
			{colLength, &row.Length},
			{colPartNumber, &row.PartNumber},
			{colDescription, &row.Description},
			{colSquareFeet, &row.SquareFeet},
		} {
			cell, err := extractCell(f, name, fmt.Sprintf("%s%d", bind.col, index))
			if err != nil {
				return coil.Sheet{}, err
			}
			*bind.cell = cell
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

func extractCell(f *excelize.File, sheet, axis string) (coil.Cell, error) {
	value, err := f.GetCellValue(sheet, axis)
	if err != nil {
		return coil.Cell{}, fmt.Errorf("coil workbook: %s!%s: %w", sheet, axis, err)
	}
	formula, err := f.GetCellFormula(sheet, axis)
	if err != nil {
		return coil.Cell{}, fmt.Errorf("coil workbook: %s!%s: %w", sheet, axis, err)
	}
	return coil.Cell{Value: value, Formula: formula}, nil
}
