package scheduler

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingtangg/weather-summary/internal/weather"
)

type recordingReloader struct {
	mu     sync.Mutex
	loaded []string
	fail   map[string]bool
}

func (r *recordingReloader) LoadAndStore(ctx context.Context, name, source string) (weather.StoredDataset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = append(r.loaded, name)
	if r.fail[name] {
		return weather.StoredDataset{}, errors.New("unreadable")
	}
	return weather.StoredDataset{Name: name, Source: source}, nil
}

func (r *recordingReloader) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]string(nil), r.loaded...)
	sort.Strings(out)
	return out
}

func TestReloadAll_ContinuesPastFailures(t *testing.T) {
	rel := &recordingReloader{fail: map[string]bool{"broken": true}}
	s := New([]weather.Source{
		{Name: "perth", Location: "perth.csv"},
		{Name: "broken", Location: "broken.csv"},
		{Name: "sydney", Location: "sydney.csv"},
	}, time.Hour, rel)

	assert.Equal(t, 2, s.ReloadAll())
	assert.Equal(t, []string{"broken", "perth", "sydney"}, rel.names())
}

func TestStart_NoSources(t *testing.T) {
	rel := &recordingReloader{}
	s := New(nil, time.Hour, rel)
	require.NoError(t, s.Start())
	s.Stop()
	assert.Empty(t, rel.names())
}

func TestStart_RunsImmediately(t *testing.T) {
	rel := &recordingReloader{}
	s := New([]weather.Source{{Name: "perth", Location: "perth.csv"}}, time.Hour, rel)
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return len(rel.names()) == 1
	}, 2*time.Second, 10*time.Millisecond)
}
