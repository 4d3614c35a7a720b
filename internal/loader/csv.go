package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/lingtangg/weather-summary/internal/weather"
)

// ReadCSV parses date,min,max rows. The first row is a header and is discarded;
// rows with only blank fields are skipped.
func ReadCSV(r io.Reader) (weather.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return weather.Dataset{}, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	ds := weather.Dataset{}
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		rec, skip, err := parseRow(line, fields)
		if err != nil {
			return nil, err
		}
		if !skip {
			ds = append(ds, rec)
		}
	}
	return ds, nil
}

// LoadCSV reads a CSV file from disk.
func LoadCSV(path string) (weather.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer file.Close()

	ds, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrMissingFile, err)
	}
	return fmt.Errorf("failed to open %s: %w", path, err)
}
