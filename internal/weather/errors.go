package weather

import "errors"

var (
	// ErrEmptyInput is returned when a statistic that needs values gets none.
	ErrEmptyInput = errors.New("empty input")

	// ErrValueConversion is returned for temperatures that are not finite numbers.
	ErrValueConversion = errors.New("invalid temperature value")

	// ErrInvalidDate is returned for dates that are not YYYY-MM-DD calendar dates.
	ErrInvalidDate = errors.New("invalid date")
)
