package ports

import "go.trai.ch/ship/internal/core/domain"

// RecordStore persists release records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get reads the record at path.
	// Returns nil, nil if not found.
	Get(path string) (*domain.ReleaseRecord, error)

	// Put writes the record to path, replacing any previous record.
	Put(path string, record *domain.ReleaseRecord) error

	// Delete removes the record at path. A missing record is not an error.
	Delete(path string) error
}
