/*
Package storage provides whole-document persistence for the facility dataset.

The dataset (company info, items, racks) is the unit of persistence: every
Load reads and parses the entire document, every Save rewrites it completely.
There is no partial read, no merge, no caching between requests, and no
optimistic concurrency token.

# Architecture

	┌───────────────────── STORAGE ─────────────────────┐
	│                                                     │
	│  ┌──────────────────────────────────────┐          │
	│  │            Store interface            │          │
	│  │  Load() / Save(dataset) / Close()     │          │
	│  └─────────┬───────────────┬────────────┘          │
	│            │               │                        │
	│  ┌─────────▼─────┐  ┌──────▼──────────┐            │
	│  │   FileStore    │  │    BoltStore    │            │
	│  │  - plain JSON  │  │  - bbolt file   │            │
	│  │  - indented    │  │  - one bucket,  │            │
	│  │  - tmp+rename  │  │    one key      │            │
	│  └───────────────┘  └─────────────────┘            │
	└────────────────────────────────────────────────────┘

FileStore is the default backend: a single hand-editable JSON file replaced
atomically through a temporary file and rename. BoltStore keeps the exact
same document under one bucket key and adds fsync'd transactional commits for
deployments that want them.

# Error Model

Failures map onto two sentinels, checked with errors.Is:

  - ErrUnreadable: missing file, unreadable file, malformed content. Every
    consumer treats this as "service unavailable", never as an empty dataset.
  - ErrWriteFailed: the write-back could not complete. The in-memory change
    is not durable and must not be confirmed to the caller.

The underlying cause is embedded in the error text for operator logs but the
sentinel is what callers branch on.

# Concurrency

Both backends serialize the physical write (a mutex in FileStore, the single
writer in BoltDB), so the stored document is never torn. Application-level
races are not coordinated: two requests racing through load-modify-save
resolve last-writer-wins, which is the documented behavior for this system's
single-admin usage pattern.

# Usage

	store, err := storage.Open(storage.BackendFile, "data/dataset.json")
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	ds, err := store.Load()
	if errors.Is(err, storage.ErrUnreadable) {
		// surface as service unavailable
	}

	ds.Racks = append(ds.Racks, rack)
	if err := store.Save(ds); err != nil {
		// surface as write failure, change is not durable
	}

# See Also

  - pkg/types for the dataset definition
  - pkg/locator for the load-modify-save call sites
*/
package storage
