package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lingtangg/weather-summary/internal/common"
	"github.com/lingtangg/weather-summary/internal/weather"
)

var validate = validator.New()

// parseRow converts one data row into a record. skip is true for blank rows.
// line is 1-based and only used in error messages.
func parseRow(line int, fields []string) (rec weather.Record, skip bool, err error) {
	if common.IsBlank(fields) {
		return weather.Record{}, true, nil
	}
	if len(fields) != 3 {
		return weather.Record{}, false, fmt.Errorf("line %d: %w: want 3 fields, got %d", line, ErrMalformedRow, len(fields))
	}

	minF, err := parseWholeFahrenheit(fields[1])
	if err != nil {
		return weather.Record{}, false, fmt.Errorf("line %d: min: %w", line, err)
	}
	maxF, err := parseWholeFahrenheit(fields[2])
	if err != nil {
		return weather.Record{}, false, fmt.Errorf("line %d: max: %w", line, err)
	}

	rec = weather.Record{
		Date: fields[0],
		MinF: minF,
		MaxF: maxF,
	}
	if err := validate.Struct(rec); err != nil {
		return weather.Record{}, false, fmt.Errorf("line %d: %w: %v", line, weather.ErrInvalidDate, err)
	}
	return rec, false, nil
}

// parseWholeFahrenheit accepts integers only; "49.5" is rejected rather than truncated.
func parseWholeFahrenheit(s string) (int, error) {
	if _, err := weather.ParseFahrenheit(s); err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", weather.ErrValueConversion, s)
	}
	return n, nil
}
