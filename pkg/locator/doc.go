/*
Package locator implements Rackmap's core operations: item search, facility
map info, and the admin rack upsert.

Every operation loads the dataset fresh from storage; the upsert saves it
back whole. Nothing is cached between calls, so the store is the single
source of truth and concurrent requests see whatever the last completed save
left behind.

# Operations

Search:

  - Normalizes the query (trim, lower-case); a blank query short-circuits to
    an empty result set with EmptyQueryMessage, never touching storage errors
  - Matches by substring containment against lower-cased item name or code
  - Joins each match to its rack by ID; a dangling or empty reference
    degrades to rack code "-" with nil coordinates
  - Preserves dataset order in the result list

Map info:

  - Returns company, warehouse, the configured map asset name and the full
    rack list, unfiltered

Rack upsert:

  - Validates before any storage access: normalized code non-empty,
    coordinates finite
  - Keyed on the normalized (upper-cased) code: a new code appends a rack
    with ID "R-"+code, an existing code updates x/y in place
  - ID and code are immutable once created; no delete operation exists

# Error Model

  - ErrInvalidInput: validation failure, reported before load or save
  - ErrUnavailable: wraps storage.ErrUnreadable; surfaced as a server error
  - storage.ErrWriteFailed passes through from the upsert's save; the caller
    is told the change did not persist

# See Also

  - pkg/storage for the persistence contract and the last-writer-wins note
  - pkg/api for the HTTP bindings
*/
package locator
