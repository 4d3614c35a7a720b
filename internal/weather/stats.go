package weather

import "fmt"

// CalculateMean returns the arithmetic mean of values. When the mean rounds
// to a whole number at one decimal place it is returned as that whole number;
// otherwise the unrounded mean is kept.
func CalculateMean(values []float64) (Value, error) {
	if len(values) == 0 {
		return Value{}, ErrEmptyInput
	}

	var sum float64
	for _, v := range values {
		if !finite(v) {
			return Value{}, fmt.Errorf("%w: %v", ErrValueConversion, v)
		}
		sum += v
	}
	mean := sum / float64(len(values))

	if r := collapse(round1(mean)); r.Whole {
		return r, nil
	}
	return Value{Float: mean}, nil
}

// FindMin returns the smallest value and its position. Ties go to the last
// occurrence. ok is false when values is empty.
func FindMin(values []float64) (e Extreme, ok bool) {
	return findExtreme(values, func(v, cur float64) bool { return v <= cur })
}

// FindMax returns the largest value and its position. Ties go to the last
// occurrence. ok is false when values is empty.
func FindMax(values []float64) (e Extreme, ok bool) {
	return findExtreme(values, func(v, cur float64) bool { return v >= cur })
}

func findExtreme(values []float64, replaces func(v, cur float64) bool) (Extreme, bool) {
	if len(values) == 0 {
		return Extreme{}, false
	}

	best, pos := values[0], 0
	for i := 1; i < len(values); i++ {
		if replaces(values[i], best) {
			best, pos = values[i], i
		}
	}
	return Extreme{Value: round1(best), Position: pos}, true
}

// firstIndex returns the index of the first element equal to v, or -1.
func firstIndex(values []float64, v float64) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}
