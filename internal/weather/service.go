package weather

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
)

// RecordReader parses an uploaded tabular body into a dataset.
type RecordReader func(r io.Reader) (Dataset, error)

// Service orchestrates loading datasets, persisting them and rendering reports.
type Service struct {
	store  Store
	loader Loader
	read   RecordReader
}

// NewService creates a new Service.
func NewService(store Store, loader Loader, read RecordReader) *Service {
	return &Service{
		store:  store,
		loader: loader,
		read:   read,
	}
}

// LoadAndStore loads source through the loader and stores the result under name.
// A dataset already stored under name is replaced.
func (s *Service) LoadAndStore(ctx context.Context, name, source string) (StoredDataset, error) {
	log.Printf("DEBUG: LoadAndStore called for %s from %s", name, source)
	if s.loader == nil {
		return StoredDataset{}, fmt.Errorf("no loader configured")
	}

	records, err := s.loader.Load(ctx, source)
	if err != nil {
		return StoredDataset{}, fmt.Errorf("load %s: %w", source, err)
	}
	return s.save(name, source, records), nil
}

// Ingest parses an uploaded body and stores it under name.
func (s *Service) Ingest(name string, r io.Reader) (StoredDataset, error) {
	if s.read == nil {
		return StoredDataset{}, fmt.Errorf("no record reader configured")
	}
	records, err := s.read(r)
	if err != nil {
		return StoredDataset{}, err
	}
	return s.save(name, "upload", records), nil
}

func (s *Service) save(name, source string, records Dataset) StoredDataset {
	ds := StoredDataset{
		ID:       uuid.NewString(),
		Name:     name,
		Source:   source,
		LoadedAt: time.Now().UTC(),
		Records:  records,
	}
	if ds.Name == "" {
		ds.Name = ds.ID
	}
	s.store.Save(ds)
	log.Printf("INFO: stored dataset %s (%s) with %d days", ds.Name, ds.ID, ds.Days())
	return ds
}

// Get delegates to the underlying store.
func (s *Service) Get(id string) (StoredDataset, error) {
	return s.store.Get(id)
}

// List delegates to the underlying store.
func (s *Service) List() []StoredDataset {
	return s.store.List()
}

// Delete delegates to the underlying store.
func (s *Service) Delete(id string) error {
	return s.store.Delete(id)
}

// Overview renders the multi-day overview of a stored dataset.
func (s *Service) Overview(id string) (string, error) {
	return s.render(id, GenerateSummary)
}

// Daily renders the per-day breakdown of a stored dataset.
func (s *Service) Daily(id string) (string, error) {
	return s.render(id, GenerateDailySummary)
}

// Report renders the overview followed by the daily breakdown.
func (s *Service) Report(id string) (string, error) {
	return s.render(id, Report)
}

func (s *Service) render(id string, gen func(Dataset) (string, error)) (string, error) {
	ds, err := s.store.Get(id)
	if err != nil {
		return "", err
	}
	out, err := gen(ds.Records)
	if err != nil {
		log.Printf("ERROR: report for %s failed: %v", ds.Name, err)
		return "", err
	}
	return out, nil
}
