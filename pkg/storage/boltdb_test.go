package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rackmap/rackmap/pkg/types"
)

func newTestBoltStore(t *testing.T) *BoltStore {
	t.Helper()
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "rackmap.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBoltStoreLoadEmpty(t *testing.T) {
	store := newTestBoltStore(t)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestBoltStoreRoundTrip(t *testing.T) {
	store := newTestBoltStore(t)

	require.NoError(t, store.Save(testDataset()))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Acme Parts", loaded.Company)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "R-A01", loaded.Items[0].RackID)
}

func TestBoltStoreSaveOverwrites(t *testing.T) {
	store := newTestBoltStore(t)

	require.NoError(t, store.Save(testDataset()))

	ds := testDataset()
	ds.Racks[0].X = 99
	require.NoError(t, store.Save(ds))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Racks, 1)
	assert.Equal(t, float64(99), loaded.Racks[0].X)
}

func TestBoltStoreDatasetWhole(t *testing.T) {
	// The bolt backend must keep whole-document semantics: a save replaces
	// everything, including entities absent from the new document.
	store := newTestBoltStore(t)

	require.NoError(t, store.Save(testDataset()))
	require.NoError(t, store.Save(&types.Dataset{Company: "Acme Parts"}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Racks)
	assert.Empty(t, loaded.Items)
}
