// Package export writes the accumulated output rows to an XLSX workbook.
// A write failure here is the run's only fatal error class.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/aapp-oss/pledges/internal/template"
)

// DefaultSheet is the sheet name used when none is configured.
const DefaultSheet = "Extracted"

// Writer produces one workbook with one sheet: a header row in template
// column order followed by one row per output record.
type Writer struct {
	sheet string
}

// NewWriter creates a writer targeting the named sheet.
func NewWriter(sheet string) *Writer {
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &Writer{sheet: sheet}
}

// Write saves columns and rows to an XLSX file at path.
func (w *Writer) Write(path string, columns []string, rows []template.OutputRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(w.sheet); err != nil {
		return fmt.Errorf("create sheet %q: %w", w.sheet, err)
	}
	index, err := f.GetSheetIndex(w.sheet)
	if err != nil {
		return fmt.Errorf("locate sheet %q: %w", w.sheet, err)
	}
	f.SetActiveSheet(index)
	if w.sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("drop default sheet: %w", err)
		}
	}

	for i, header := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell %d: %w", i+1, err)
		}
		if err := f.SetCellValue(w.sheet, cell, header); err != nil {
			return fmt.Errorf("write header %q: %w", header, err)
		}
	}

	for r, row := range rows {
		for c, value := range row.Cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("cell %d,%d: %w", c+1, r+2, err)
			}
			if err := f.SetCellValue(w.sheet, cell, value); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}
