package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/lingtangg/weather-summary/internal/weather"
)

var (
	// ErrNotFound is returned when no dataset matches the given id or name.
	ErrNotFound = errors.New("dataset not found")
)

// MemoryStore is a concurrency-safe in-memory implementation of a dataset store.
type MemoryStore struct {
	mu sync.RWMutex

	// key: dataset id
	data map[string]weather.StoredDataset
	// key: dataset name, value: dataset id
	names map[string]string

	maxDatasets int // oldest datasets are evicted beyond this
}

// NewMemoryStore creates a new MemoryStore.
// If maxDatasets is <= 0, it is treated as unlimited.
func NewMemoryStore(maxDatasets int) *MemoryStore {
	return &MemoryStore{
		data:        make(map[string]weather.StoredDataset),
		names:       make(map[string]string),
		maxDatasets: maxDatasets,
	}
}

// Save stores ds, replacing any dataset with the same name, and enforces retention.
func (s *MemoryStore) Save(ds weather.StoredDataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if oldID, ok := s.names[ds.Name]; ok {
		delete(s.data, oldID)
	}
	s.data[ds.ID] = ds
	s.names[ds.Name] = ds.ID

	// Enforce retention by count.
	if s.maxDatasets > 0 && len(s.data) > s.maxDatasets {
		all := s.sortedLocked()
		for _, old := range all[:len(all)-s.maxDatasets] {
			s.deleteLocked(old.ID)
		}
	}
}

// Get returns the dataset with the given id.
func (s *MemoryStore) Get(id string) (weather.StoredDataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ds, ok := s.data[id]
	if !ok {
		return weather.StoredDataset{}, ErrNotFound
	}
	return ds, nil
}

// FindByName returns the dataset currently stored under name.
func (s *MemoryStore) FindByName(name string) (weather.StoredDataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.names[name]
	if !ok {
		return weather.StoredDataset{}, ErrNotFound
	}
	return s.data[id], nil
}

// List returns all datasets, oldest first.
func (s *MemoryStore) List() []weather.StoredDataset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedLocked()
}

// Delete removes the dataset with the given id.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return ErrNotFound
	}
	s.deleteLocked(id)
	return nil
}

func (s *MemoryStore) deleteLocked(id string) {
	ds := s.data[id]
	delete(s.data, id)
	if s.names[ds.Name] == id {
		delete(s.names, ds.Name)
	}
}

func (s *MemoryStore) sortedLocked() []weather.StoredDataset {
	result := make([]weather.StoredDataset, 0, len(s.data))
	for _, ds := range s.data {
		result = append(result, ds)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].LoadedAt.Equal(result[j].LoadedAt) {
			return result[i].Name < result[j].Name
		}
		return result[i].LoadedAt.Before(result[j].LoadedAt)
	})
	return result
}
