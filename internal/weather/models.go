package weather

import (
	"time"
)

// Record is a single day of readings. Temperatures are whole degrees Fahrenheit.
type Record struct {
	Date string `json:"date" validate:"required,min=10"`
	MinF int    `json:"minTempF"`
	MaxF int    `json:"maxTempF"`
}

// Dataset is an ordered sequence of records. Order defines "day N".
type Dataset []Record

// MinColumn returns the minimum temperatures in dataset order.
func (d Dataset) MinColumn() []float64 {
	col := make([]float64, len(d))
	for i, r := range d {
		col[i] = float64(r.MinF)
	}
	return col
}

// MaxColumn returns the maximum temperatures in dataset order.
func (d Dataset) MaxColumn() []float64 {
	col := make([]float64, len(d))
	for i, r := range d {
		col[i] = float64(r.MaxF)
	}
	return col
}

// Extreme is the result of FindMin/FindMax. Position indexes the slice the
// statistic was computed over, not necessarily the dataset.
type Extreme struct {
	Value    float64
	Position int
}

// StoredDataset is a loaded dataset together with where it came from.
type StoredDataset struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loadedAt"` // always UTC
	Records  Dataset   `json:"-"`
}

// Days returns the number of records in the dataset.
func (s StoredDataset) Days() int {
	return len(s.Records)
}

// Source is a named dataset location: a file path or an http(s) URL.
type Source struct {
	Name     string `yaml:"name" validate:"required"`
	Location string `yaml:"source" validate:"required"`
}
