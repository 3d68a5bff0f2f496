/*
Package types defines the core data structures shared across all Rackmap
packages.

The types in this package are pure data definitions with JSON tags matching
the persisted document format. They contain no business logic beyond small
lookup helpers; behavior lives in the packages that consume them.

# Entity Relationships

	┌──────────────────────────────────────────────┐
	│                  Dataset                      │
	│  company, warehouse                           │
	│                                               │
	│  ┌─────────────┐         ┌─────────────┐     │
	│  │    Items     │ rackId  │    Racks     │    │
	│  │  id          │────────▶│  id          │    │
	│  │  name        │  (soft) │  code        │    │
	│  │  code        │         │  x, y        │    │
	│  └─────────────┘         └─────────────┘     │
	└──────────────────────────────────────────────┘

The item→rack reference is soft: an Item.RackID pointing at a missing rack is
tolerated and degrades to placeholder values during search, it never fails a
request.

# Design Principles

  - Types are serialization-friendly (JSON tags on everything persisted)
  - The Dataset is the unit of persistence; entities are never stored alone
  - No behavior in types (separation of data and logic)
  - Rack.Code is the natural key for admin upserts, Rack.ID for item joins

# See Also

  - pkg/storage for dataset persistence
  - pkg/locator for search, map and upsert logic
*/
package types
