package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/odyssey-erp/medicare-web/internal/listing"
)

// WriteWorkbook renders rows under the resource's headers as a single-sheet
// xlsx document. Cells hold the same text the list page shows.
func WriteWorkbook(res listing.Resource, rows []listing.Row) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if name := sheetName(res.Heading); name != "" {
		if err := f.SetSheetName(sheet, name); err != nil {
			return nil, fmt.Errorf("reports: name sheet: %w", err)
		}
		sheet = name
	}

	headers := res.Headers()
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("reports: write header: %w", err)
	}
	if len(headers) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, fmt.Errorf("reports: header style: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(headers), 1)
		if err != nil {
			return nil, fmt.Errorf("reports: header range: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return nil, fmt.Errorf("reports: header style: %w", err)
		}
	}

	for i, row := range rows {
		values := make([]any, len(row.Cells))
		for j, c := range row.Cells {
			if c.Muted {
				values[j] = ""
				continue
			}
			values[j] = c.Text()
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("reports: row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("reports: row %d: %w", i+2, err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("reports: write workbook: %w", err)
	}
	return buf, nil
}

// sheetName trims s to the 31 characters a worksheet name allows.
func sheetName(s string) string {
	r := []rune(s)
	if len(r) > 31 {
		r = r[:31]
	}
	return string(r)
}
