package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rackmap/rackmap/pkg/metrics"
	"github.com/rackmap/rackmap/pkg/types"
)

// FileStore implements Store on a single human-readable JSON file.
//
// Every Load reads and parses the whole file; every Save rewrites it through
// a temporary file followed by a rename, so a crash mid-write never leaves a
// corrupt document behind. Nothing is cached between calls.
type FileStore struct {
	path string
	mu   sync.Mutex // serializes physical writes
}

// NewFileStore creates a file-backed store at the given path. The file is
// not required to exist yet; Load reports ErrUnreadable until it does.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the full dataset from disk.
func (s *FileStore) Load() (*types.Dataset, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("load").Inc()
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnreadable, s.path, err)
	}

	var dataset types.Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("load").Inc()
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnreadable, s.path, err)
	}

	return &dataset, nil
}

// Save writes the full dataset to disk, replacing the previous document.
func (s *FileStore) Save(dataset *types.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("save").Inc()
		return fmt.Errorf("%w: create %s: %v", ErrWriteFailed, tmp, err)
	}

	// Indented output so the document stays hand-editable.
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dataset); err != nil {
		f.Close()
		os.Remove(tmp)
		metrics.StorageErrorsTotal.WithLabelValues("save").Inc()
		return fmt.Errorf("%w: encode: %v", ErrWriteFailed, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		metrics.StorageErrorsTotal.WithLabelValues("save").Inc()
		return fmt.Errorf("%w: close %s: %v", ErrWriteFailed, tmp, err)
	}

	// Atomic replace
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		metrics.StorageErrorsTotal.WithLabelValues("save").Inc()
		return fmt.Errorf("%w: rename %s: %v", ErrWriteFailed, tmp, err)
	}

	return nil
}

// Close is a no-op; the file is opened per operation.
func (s *FileStore) Close() error {
	return nil
}
