package interfaces

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	lineitems "fabline/internal/lineitems/domain"
)

// importColumns is the column order the ERP import template expects.
var importColumns = []string{"Part Number", "Description", "BOM Number", "Template", "Product Type"}

// BuildImportXLSX renders a job's line items as an ERP import workbook.
// One row per item, in the order given (callers pass them already sorted).
func BuildImportXLSX(job *lineitems.Job, items []lineitems.StoredItem) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "import"
	f.SetSheetName("Sheet1", sheet)

	for i, col := range importColumns {
		axis, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(sheet, axis, col)
	}
	for i, item := range items {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.PartNumber)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Description)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.BOMNumber)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), string(item.Template))
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), string(item.ProductType))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildJobPDF renders a printable line item sheet for shop-floor review.
func BuildJobPDF(job *lineitems.Job, items []lineitems.StoredItem) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, fmt.Sprintf("Job %s Line Items", job.JobNumber))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	if job.JobName != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Name: %s", job.JobName))
		pdf.Ln(5)
	}
	if job.Drafter != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Drafter: %s", job.Drafter))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().UTC().Format(time.RFC3339)))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(35, 6, "Part Number", "1", 0, "C", false, 0, "")
	pdf.CellFormat(130, 6, "Description", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "BOM Number", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Template", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Product Type", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, item := range items {
		pdf.CellFormat(35, 6, item.PartNumber, "1", 0, "L", false, 0, "")
		pdf.CellFormat(130, 6, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, item.BOMNumber, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, string(item.Template), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, string(item.ProductType), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
