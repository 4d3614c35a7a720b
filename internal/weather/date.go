package weather

import (
	"fmt"
	"time"
)

const isoDate = "2006-01-02"

// ConvertDate turns an ISO date ("2021-07-05", anything after the first ten
// characters is ignored) into "Monday 05 July 2021".
func ConvertDate(iso string) (string, error) {
	if len(iso) < len(isoDate) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, iso)
	}
	t, err := time.Parse(isoDate, iso[:len(isoDate)])
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDate, iso, err)
	}
	if t.Year() < 1 {
		return "", fmt.Errorf("%w: %q: year out of range", ErrInvalidDate, iso)
	}
	return fmt.Sprintf("%s %02d %s %d", t.Weekday(), t.Day(), t.Month(), t.Year()), nil
}
