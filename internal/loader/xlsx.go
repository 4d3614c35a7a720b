package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lingtangg/weather-summary/internal/weather"
)

// LoadXLSX reads date,min,max rows from a workbook sheet. An empty sheet name
// selects the first sheet. The date column must hold text, not date cells.
func LoadXLSX(path, sheet string) (weather.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read sheet %q: %w", path, sheet, err)
	}

	ds := weather.Dataset{}
	if len(rows) == 0 {
		return ds, nil
	}
	for i, fields := range rows[1:] {
		rec, skip, err := parseRow(i+2, fields)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if !skip {
			ds = append(ds, rec)
		}
	}
	return ds, nil
}
