package weather

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertFToC(t *testing.T) {
	tests := []struct {
		f         float64
		want      Value
		wantStr   string
		wantFixed string
	}{
		{32, Value{0, true}, "0", "0.0"},
		{212, Value{100, true}, "100", "100.0"},
		{50, Value{10, true}, "10", "10.0"},
		{51, Value{10.6, false}, "10.6", "10.6"},
		{77, Value{25, true}, "25", "25.0"},
		{49, Value{9.4, false}, "9.4", "9.4"},
		{-40, Value{-40, true}, "-40", "-40.0"},
		{31.9, Value{-0.1, false}, "-0.1", "-0.1"},
		{31.95, Value{0, true}, "0", "0.0"},
	}

	for _, tt := range tests {
		got, err := ConvertFToC(tt.f)
		require.NoError(t, err, "ConvertFToC(%v)", tt.f)
		assert.Equal(t, tt.want, got, "ConvertFToC(%v)", tt.f)
		assert.Equal(t, tt.wantStr, got.String(), "ConvertFToC(%v).String()", tt.f)
		assert.Equal(t, tt.wantFixed, got.Fixed(), "ConvertFToC(%v).Fixed()", tt.f)
	}
}

func TestConvertFToC_NonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ConvertFToC(f)
		assert.ErrorIs(t, err, ErrValueConversion, "ConvertFToC(%v)", f)
	}
}

func TestParseFahrenheit(t *testing.T) {
	f, err := ParseFahrenheit(" 51 ")
	require.NoError(t, err)
	assert.Equal(t, 51.0, f)

	for _, s := range []string{"", "warm", "NaN", "inf", "5 1"} {
		_, err := ParseFahrenheit(s)
		assert.ErrorIs(t, err, ErrValueConversion, "ParseFahrenheit(%q)", s)
	}
}

func TestFormatTemperature(t *testing.T) {
	assert.Equal(t, "10.6°C", FormatTemperature("10.6"))
	assert.Equal(t, "°C", FormatTemperature(""))
}

func TestFormatTemperature_RepeatedRounding(t *testing.T) {
	v, err := ConvertFToC(51)
	require.NoError(t, err)

	once := v.Fixed()
	again, err := ParseFahrenheit(once)
	require.NoError(t, err)
	twice := Value{Float: round1(again)}.Fixed()

	assert.Equal(t, once, twice)
	assert.Equal(t, FormatTemperature(once), FormatTemperature(twice))
}
