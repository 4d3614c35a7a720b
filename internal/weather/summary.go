package weather

import (
	"fmt"
	"strings"
)

const (
	overviewFormat = "%d Day Overview\n" +
		"  The lowest temperature will be %s, and will occur on %s.\n" +
		"  The highest temperature will be %s, and will occur on %s.\n" +
		"  The average low this week is %s.\n" +
		"  The average high this week is %s.\n"

	dailyFormat = "---- %s ----\n" +
		"  Minimum Temperature: %s\n" +
		"  Maximum Temperature: %s\n\n"
)

// columnSummary is the overview of one temperature column.
type columnSummary struct {
	extreme string // one decimal, with suffix
	date    string // humanized date of the first record holding the extreme
	average string // collapsed, with suffix
}

// GenerateSummary builds the multi-day overview for ds.
func GenerateSummary(ds Dataset) (string, error) {
	low, err := summarizeColumn(ds, ds.MinColumn(), FindMin)
	if err != nil {
		return "", fmt.Errorf("summarize minimum temperatures: %w", err)
	}
	high, err := summarizeColumn(ds, ds.MaxColumn(), FindMax)
	if err != nil {
		return "", fmt.Errorf("summarize maximum temperatures: %w", err)
	}

	return fmt.Sprintf(overviewFormat,
		len(ds),
		low.extreme, low.date,
		high.extreme, high.date,
		low.average,
		high.average,
	), nil
}

func summarizeColumn(ds Dataset, col []float64, find func([]float64) (Extreme, bool)) (columnSummary, error) {
	ext, ok := find(col)
	if !ok {
		return columnSummary{}, ErrEmptyInput
	}

	// The date comes from the first matching record, not ext.Position.
	idx := firstIndex(col, ext.Value)
	if idx < 0 {
		return columnSummary{}, fmt.Errorf("%w: extreme %v not found in column", ErrValueConversion, ext.Value)
	}
	date, err := ConvertDate(ds[idx].Date)
	if err != nil {
		return columnSummary{}, err
	}

	extC, err := ConvertFToC(ext.Value)
	if err != nil {
		return columnSummary{}, err
	}

	mean, err := CalculateMean(col)
	if err != nil {
		return columnSummary{}, err
	}
	meanC, err := ConvertFToC(mean.Float)
	if err != nil {
		return columnSummary{}, err
	}

	return columnSummary{
		extreme: FormatTemperature(extC.Fixed()),
		date:    date,
		average: FormatTemperature(meanC.String()),
	}, nil
}

// GenerateDailySummary builds one block per record, in dataset order.
func GenerateDailySummary(ds Dataset) (string, error) {
	var sb strings.Builder
	for i, r := range ds {
		date, err := ConvertDate(r.Date)
		if err != nil {
			return "", fmt.Errorf("day %d: %w", i+1, err)
		}
		minC, err := ConvertFToC(float64(r.MinF))
		if err != nil {
			return "", fmt.Errorf("day %d: %w", i+1, err)
		}
		maxC, err := ConvertFToC(float64(r.MaxF))
		if err != nil {
			return "", fmt.Errorf("day %d: %w", i+1, err)
		}
		fmt.Fprintf(&sb, dailyFormat,
			date,
			FormatTemperature(minC.Fixed()),
			FormatTemperature(maxC.Fixed()),
		)
	}
	return sb.String(), nil
}

// Report is the overview, a blank line, then the daily breakdown.
func Report(ds Dataset) (string, error) {
	overview, err := GenerateSummary(ds)
	if err != nil {
		return "", err
	}
	daily, err := GenerateDailySummary(ds)
	if err != nil {
		return "", err
	}
	return overview + "\n" + daily, nil
}
