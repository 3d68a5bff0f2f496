package storage

import (
	"errors"
	"fmt"

	"github.com/rackmap/rackmap/pkg/types"
)

var (
	// ErrUnreadable indicates the persisted dataset is missing, unparsable
	// or otherwise unreadable. Callers must treat it as "service
	// unavailable", never as an empty dataset.
	ErrUnreadable = errors.New("dataset unreadable")

	// ErrWriteFailed indicates the dataset could not be written back.
	// The in-memory mutation is lost; the caller must not confirm it.
	ErrWriteFailed = errors.New("dataset write failed")
)

// Store is the persistence boundary for the facility dataset.
//
// The dataset is read and written only as a whole document. There is no
// partial read, merge, or version check: two writers racing through a
// load-modify-save cycle resolve last-writer-wins. Implementations serialize
// the physical write so the stored document is never torn, but they do not
// coordinate application-level updates.
type Store interface {
	// Load reads and parses the full dataset. Errors wrap ErrUnreadable.
	Load() (*types.Dataset, error)

	// Save serializes the full dataset and atomically replaces the stored
	// document. Errors wrap ErrWriteFailed.
	Save(dataset *types.Dataset) error

	// Close releases any resources held by the store.
	Close() error
}

// Backend names for Open.
const (
	BackendFile = "file"
	BackendBolt = "bolt"
)

// Open creates a Store for the given backend name and data path.
// An empty backend defaults to the file backend.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendFile:
		return NewFileStore(path), nil
	case BackendBolt:
		return NewBoltStore(path)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
