package weather

import (
	"context"
)

// Loader abstracts a tabular record source (CSV file, workbook, remote CSV).
type Loader interface {
	Load(ctx context.Context, source string) (Dataset, error)
}

// Store is the contract the in-memory store (and any future persistent store) must satisfy.
type Store interface {
	Save(ds StoredDataset)
	Get(id string) (StoredDataset, error)
	FindByName(name string) (StoredDataset, error)
	List() []StoredDataset
	Delete(id string) error
}
