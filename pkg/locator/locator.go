package locator

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rackmap/rackmap/pkg/log"
	"github.com/rackmap/rackmap/pkg/metrics"
	"github.com/rackmap/rackmap/pkg/storage"
	"github.com/rackmap/rackmap/pkg/types"
)

var (
	// ErrInvalidInput indicates client-supplied data failed validation.
	// Always detected before any storage access.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable indicates the dataset could not be loaded. Surfaced as
	// a server-side failure, not a client error.
	ErrUnavailable = errors.New("dataset unavailable")
)

// EmptyQueryMessage accompanies the empty result set returned for blank
// queries. A blank query is a documented empty-input policy, not an error.
const EmptyQueryMessage = "empty query"

// UnknownRackCode is the placeholder rack code attached to search results
// whose item has no rack or references a rack that does not exist.
const UnknownRackCode = "-"

// Result is one search hit joined to its owning rack. RackX and RackY are
// nil when the rack is unknown.
type Result struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Code     string   `json:"code"`
	RackID   string   `json:"rackId"`
	RackCode string   `json:"rackCode"`
	RackX    *float64 `json:"rackX"`
	RackY    *float64 `json:"rackY"`
}

// SearchResult is the full outcome of a search.
type SearchResult struct {
	Query   string
	Total   int
	Results []Result
	Message string // set only for the empty-query case
}

// MapInfo describes the facility map: owner info, the map asset file name
// and every rack marker, unfiltered.
type MapInfo struct {
	Company   string
	Warehouse string
	MapFile   string
	Racks     []*types.Rack
}

// Locator implements item search, map info and the admin rack upsert on top
// of a storage.Store. Every operation loads the dataset fresh; mutations
// save it back whole.
type Locator struct {
	store   storage.Store
	mapFile string
	logger  zerolog.Logger
}

// New creates a Locator backed by the given store. mapFile is the map asset
// name reported by MapInfo.
func New(store storage.Store, mapFile string) *Locator {
	return &Locator{
		store:   store,
		mapFile: mapFile,
		logger:  log.WithComponent("locator"),
	}
}

// Search filters items by case-insensitive substring match on name or code
// and joins each match to its rack. Result order follows dataset order.
func (l *Locator) Search(query string) (*SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return &SearchResult{
			Query:   q,
			Results: []Result{},
			Message: EmptyQueryMessage,
		}, nil
	}

	dataset, err := l.store.Load()
	if err != nil {
		l.logger.Error().Err(err).Msg("dataset load failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	results := []Result{}
	for _, item := range dataset.Items {
		if !strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.Code), q) {
			continue
		}

		res := Result{
			ID:       item.ID,
			Name:     item.Name,
			Code:     item.Code,
			RackID:   item.RackID,
			RackCode: UnknownRackCode,
		}

		// Dangling or empty rack references keep the placeholder; a bad
		// reference never fails the whole search.
		if rack := dataset.RackByID(item.RackID); rack != nil {
			x, y := rack.X, rack.Y
			res.RackCode = rack.Code
			res.RackX = &x
			res.RackY = &y
		}

		results = append(results, res)
	}

	metrics.SearchesTotal.Inc()
	metrics.SearchResults.Observe(float64(len(results)))
	l.logger.Debug().Str("query", q).Int("total", len(results)).Msg("search completed")

	return &SearchResult{
		Query:   q,
		Total:   len(results),
		Results: results,
	}, nil
}

// MapInfo returns facility metadata and the full, unfiltered rack list.
func (l *Locator) MapInfo() (*MapInfo, error) {
	dataset, err := l.store.Load()
	if err != nil {
		l.logger.Error().Err(err).Msg("dataset load failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &MapInfo{
		Company:   dataset.Company,
		Warehouse: dataset.Warehouse,
		MapFile:   l.mapFile,
		Racks:     dataset.Racks,
	}, nil
}

// Company returns the facility owner name for the health endpoint. An
// unreadable dataset yields the empty string; health never fails.
func (l *Locator) Company() string {
	dataset, err := l.store.Load()
	if err != nil {
		return ""
	}
	return dataset.Company
}

// UpsertRack places or moves a rack marker, keyed on the normalized
// (trimmed, upper-cased) code. A new code appends a rack with ID "R-"+code;
// an existing code updates coordinates in place, ID and code stay immutable.
// Returns the resulting rack and whether it was created.
func (l *Locator) UpsertRack(code string, x, y float64) (*types.Rack, bool, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, false, fmt.Errorf("%w: rack code is required", ErrInvalidInput)
	}
	if !isFinite(x) || !isFinite(y) {
		return nil, false, fmt.Errorf("%w: coordinates must be finite numbers", ErrInvalidInput)
	}

	dataset, err := l.store.Load()
	if err != nil {
		l.logger.Error().Err(err).Msg("dataset load failed")
		return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var rack *types.Rack
	for _, r := range dataset.Racks {
		if strings.ToUpper(r.Code) == code {
			rack = r
			break
		}
	}

	created := rack == nil
	if created {
		rack = &types.Rack{
			ID:   "R-" + code,
			Code: code,
			X:    x,
			Y:    y,
		}
		dataset.Racks = append(dataset.Racks, rack)
	} else {
		rack.X = x
		rack.Y = y
	}

	if err := l.store.Save(dataset); err != nil {
		l.logger.Error().Err(err).Str("rack_code", code).Msg("dataset save failed")
		return nil, false, fmt.Errorf("persist rack %s: %w", code, err)
	}

	metrics.RacksTotal.Set(float64(len(dataset.Racks)))
	if created {
		metrics.RackUpsertsTotal.WithLabelValues("created").Inc()
		l.logger.Info().Str("rack_code", code).Float64("x", x).Float64("y", y).Msg("rack created")
	} else {
		metrics.RackUpsertsTotal.WithLabelValues("updated").Inc()
		l.logger.Info().Str("rack_code", code).Float64("x", x).Float64("y", y).Msg("rack moved")
	}

	return rack, created, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
