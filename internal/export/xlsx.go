package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/matscan/matscan/internal/composition"
)

const xlsxSheet = "Composition"

// xlsxValue returns a typed cell value. Plain magnitudes go in as
// numbers so spreadsheet formulas work on them; trace readings keep
// their textual "<" form.
func xlsxValue(r composition.Reading) interface{} {
	if r.HasMagnitude && !r.Trace {
		return r.Magnitude
	}
	return FormatValue(r)
}

// WriteXLSXFile writes records to an Excel workbook with one sheet.
func WriteXLSXFile(path string, records []composition.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return err
	}
	for col, h := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(xlsxSheet, cell, h); err != nil {
			return err
		}
	}
	for i, rec := range records {
		row := i + 2
		cells := []interface{}{rec.Element, xlsxValue(rec.Value), rec.Unit}
		for col, v := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(xlsxSheet, cell, v); err != nil {
				return err
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}
