// internal/report/xlsx.go
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bstardust/photo-gps-report/pkg/models"
)

// WriteXLSX writes the report as a single-sheet workbook. Coordinate cells
// stay numeric so spreadsheet tools can sort and chart them.
func WriteXLSX(path string, records []*models.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	columns := models.Columns()
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		cells := r.Cells()
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", r.Path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
