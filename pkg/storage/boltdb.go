package storage

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/rackmap/rackmap/pkg/metrics"
	"github.com/rackmap/rackmap/pkg/types"
)

var (
	bucketDataset = []byte("dataset")
	keyCurrent    = []byte("current")
)

// BoltStore implements Store using BoltDB. The dataset is still persisted as
// a single JSON document, stored under one key, so the Store contract is
// identical to FileStore; BoltDB contributes fsync'd atomic commits and a
// serialized writer.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) a BoltDB-backed store at the given path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDataset)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Load reads the full dataset from the database.
func (s *BoltStore) Load() (*types.Dataset, error) {
	var dataset types.Dataset
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketDataset).Get(keyCurrent)
		if data == nil {
			return fmt.Errorf("no dataset stored")
		}
		return json.Unmarshal(data, &dataset)
	})
	if err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("load").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return &dataset, nil
}

// Save writes the full dataset in a single transaction.
func (s *BoltStore) Save(dataset *types.Dataset) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(dataset)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketDataset).Put(keyCurrent, data)
	})
	if err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("save").Inc()
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}
