package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DegreeSymbol is appended to every displayed temperature.
const DegreeSymbol = "°C"

// Value is a number rounded for display. Whole values are shown without a
// decimal point ("20"), the rest as they are ("20.5").
type Value struct {
	Float float64
	Whole bool
}

// String renders v in collapsed form.
func (v Value) String() string {
	if v.Whole {
		return strconv.FormatFloat(v.Float, 'f', 0, 64)
	}
	return strconv.FormatFloat(v.Float, 'f', -1, 64)
}

// Fixed renders v with exactly one decimal place.
func (v Value) Fixed() string {
	return strconv.FormatFloat(v.Float, 'f', 1, 64)
}

// FormatTemperature appends the degree Celsius suffix to s.
func FormatTemperature(s string) string {
	return s + DegreeSymbol
}

// ParseFahrenheit parses a textual temperature.
func ParseFahrenheit(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrValueConversion, s)
	}
	return f, nil
}

// ConvertFToC converts Fahrenheit to Celsius rounded to one decimal place.
func ConvertFToC(f float64) (Value, error) {
	if !finite(f) {
		return Value{}, fmt.Errorf("%w: %v", ErrValueConversion, f)
	}
	return collapse(round1((f - 32) * 5 / 9)), nil
}

// round1 rounds to one decimal place the way %.1f formatting does.
func round1(f float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 1, 64), 64)
	return r
}

func collapse(rounded float64) Value {
	if rounded == 0 {
		rounded = 0 // drop the sign of -0
	}
	return Value{Float: rounded, Whole: rounded == math.Trunc(rounded)}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
