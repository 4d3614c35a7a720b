package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lingtangg/weather-summary/internal/weather"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "weather.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"date", "min", "max"},
		{"2021-07-05", 49, 77},
		{},
		{"2021-07-06", 53, 82},
	})

	ds, err := LoadXLSX(path, "")
	require.NoError(t, err)
	assert.Equal(t, weather.Dataset{
		{Date: "2021-07-05", MinF: 49, MaxF: 77},
		{Date: "2021-07-06", MinF: 53, MaxF: 82},
	}, ds)
}

func TestLoadXLSX_BadRow(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"date", "min", "max"},
		{"2021-07-05", "warm", 77},
	})

	_, err := LoadXLSX(path, "")
	assert.ErrorIs(t, err, weather.ErrValueConversion)
}

func TestLoadXLSX_MissingFile(t *testing.T) {
	_, err := LoadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"), "")
	assert.ErrorIs(t, err, ErrMissingFile)
}
