package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/golam/internal/trace"
)

// ExportXLSX writes a computation trace as a spreadsheet, one row per step.
func ExportXLSX(t *trace.Trace, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Trace"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Step", "Label", "Value", "Unit", "Formula (LaTeX)", "Pages"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	if err := f.SetCellValue(sheet, "A2", t.Title); err != nil {
		return err
	}

	for row, s := range t.Steps {
		values := []interface{}{row + 1, s.Label, s.Value, s.Unit, s.Formula, s.Pages}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+3)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("saving %s: %w", filename, err)
	}
	return nil
}
