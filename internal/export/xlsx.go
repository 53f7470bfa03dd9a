package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"inventario/internal/domain"
)

const sheetName = "Reporte"

// WriteXLSX renders a report and its element snapshot as an XLSX workbook.
func WriteXLSX(rep *domain.Report, elements []domain.Element) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	// Title block
	if err := f.SetCellValue(sheetName, "A1", rep.Title); err != nil {
		return nil, fmt.Errorf("writing title: %w", err)
	}
	if err := f.SetCellValue(sheetName, "A2", rep.Description); err != nil {
		return nil, fmt.Errorf("writing description: %w", err)
	}

	// Header row
	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 4)
		if err != nil {
			return nil, fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	// Element rows
	for rowIdx := range elements {
		row := elementRow(&elements[rowIdx])
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("writing cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf, nil
}
