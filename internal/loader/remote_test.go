package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRemote(client *http.Client) *Remote {
	return NewRemoteWithConfig(HTTPClientConfig{
		Client: client,
		Backoff: BackoffConfig{
			MaxRetries:      2,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
		},
	})
}

func TestRemoteFetch_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	ds, err := fastRemote(srv.Client()).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, ds, 3)
	assert.EqualValues(t, 2, calls.Load())
}

func TestRemoteFetch_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := fastRemote(srv.Client()).Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, errUnexpected)
	assert.EqualValues(t, 1, calls.Load())
}

func TestRemoteFetch_NoClient(t *testing.T) {
	_, err := fastRemote(nil).Fetch(context.Background(), "http://example.invalid/data.csv")
	assert.ErrorIs(t, err, errNoHTTPClient)
}

func TestLoader_DispatchesOnSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	l := NewWithRemote(fastRemote(srv.Client()))

	ds, err := l.Load(context.Background(), srv.URL+"/weather.csv")
	require.NoError(t, err)
	assert.Len(t, ds, 3)

	_, err = l.Load(context.Background(), "does-not-exist.xlsx")
	assert.ErrorIs(t, err, ErrMissingFile)

	_, err = l.Load(context.Background(), "does-not-exist.csv")
	assert.ErrorIs(t, err, ErrMissingFile)
}
