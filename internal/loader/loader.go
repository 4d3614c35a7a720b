package loader

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/lingtangg/weather-summary/internal/common"
	"github.com/lingtangg/weather-summary/internal/weather"
)

// Loader picks a reader from the shape of the source string:
// http(s) URLs are fetched, *.xlsx files are read as workbooks, anything else as CSV.
type Loader struct {
	remote *Remote
}

var _ weather.Loader = (*Loader)(nil)

// New creates a Loader. client is used for remote sources.
func New(client *http.Client) *Loader {
	return &Loader{remote: NewRemote(client)}
}

// NewWithRemote creates a Loader with a preconfigured remote fetcher.
func NewWithRemote(remote *Remote) *Loader {
	return &Loader{remote: remote}
}

// Load reads the whole source into a dataset.
func (l *Loader) Load(ctx context.Context, source string) (weather.Dataset, error) {
	switch {
	case common.HasAnyPrefix(source, "http://", "https://"):
		return l.remote.Fetch(ctx, source)
	case strings.EqualFold(filepath.Ext(source), ".xlsx"):
		return LoadXLSX(source, "")
	default:
		return LoadCSV(source)
	}
}
