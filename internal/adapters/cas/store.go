// Package cas implements storage for release records.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RecordStore = (*Store)(nil)

// Store implements ports.RecordStore using one JSON file per record.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new record store.
func NewStore() *Store {
	return &Store{}
}

// Get reads the record stored at path.
func (s *Store) Get(path string) (*domain.ReleaseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is derived from the release layout
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(domain.Fail(domain.ErrRecordReadFailed, err), "path", path)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var record domain.ReleaseRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrRecordUnmarshalFailed, err), "path", path)
	}
	return &record, nil
}

// Put writes the record to path, creating parent directories as needed.
func (s *Store) Put(path string, record *domain.ReleaseRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return domain.Fail(domain.ErrRecordMarshalFailed, err)
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(domain.Fail(domain.ErrRecordWriteFailed, err), "path", path)
	}

	tmp := path + ".tmp"
	//nolint:gosec // Path is derived from the release layout
	if err := os.WriteFile(tmp, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(domain.Fail(domain.ErrRecordWriteFailed, err), "path", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(domain.Fail(domain.ErrRecordWriteFailed, err), "path", path)
	}
	return nil
}

// Delete removes the record at path.
func (s *Store) Delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(filepath.Clean(path)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(domain.Fail(domain.ErrRecordWriteFailed, err), "path", path)
	}
	return nil
}
