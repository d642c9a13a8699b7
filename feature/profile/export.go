package profile

import (
	"fmt"

	"data-integrity/core/frame"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// AutoProfileToFile runs AutoProfile and writes the result table to a
// spreadsheet at path, logging a confirmation instead of returning the
// table.
func (p *Profiler) AutoProfileToFile(data any, path string) error {
	result, err := p.AutoProfile(data)
	if err != nil {
		return err
	}
	if err := writeSpreadsheet(result, path); err != nil {
		return fmt.Errorf("profile: write %s: %w", path, err)
	}
	p.logger.Info("Profile results saved", zap.String("path", path))
	return nil
}

// writeSpreadsheet writes a frame to an xlsx file, header row first.
func writeSpreadsheet(f *frame.Frame, path string) error {
	book := excelize.NewFile()
	defer book.Close()

	const sheet = "Sheet1"
	for i, name := range f.Columns() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := book.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
		values, _ := f.Values(name)
		for row, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row+2)
			if err != nil {
				return err
			}
			if err := book.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return book.SaveAs(path)
}
