package loader

import "errors"

var (
	// ErrMissingFile is returned when a local source does not exist.
	ErrMissingFile = errors.New("source file not found")

	// ErrMalformedRow is returned for non-blank rows that are not date,min,max.
	ErrMalformedRow = errors.New("malformed row")
)
