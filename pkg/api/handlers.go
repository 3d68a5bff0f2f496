package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rackmap/rackmap/pkg/locator"
	"github.com/rackmap/rackmap/pkg/metrics"
	"github.com/rackmap/rackmap/pkg/types"
)

// HealthResponse is the /api/health payload.
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Company string `json:"company"`
	Service string `json:"service"`
	Time    string `json:"time"`
}

// SearchResponse is the /api/search payload.
type SearchResponse struct {
	OK      bool             `json:"ok"`
	Query   string           `json:"query"`
	Total   int              `json:"total"`
	Results []locator.Result `json:"results"`
	Message string           `json:"message,omitempty"`
}

// MapResponse is the /api/map payload.
type MapResponse struct {
	OK        bool          `json:"ok"`
	Company   string        `json:"company"`
	Warehouse string        `json:"warehouse"`
	MapFile   string        `json:"mapFile"`
	Racks     []*types.Rack `json:"racks"`
}

// RackResponse is the /api/admin/rack payload.
type RackResponse struct {
	OK      bool        `json:"ok"`
	Message string      `json:"message"`
	Rack    *types.Rack `json:"rack"`
}

// rackRequest is the admin upsert body. Coordinates decode through
// json.Number so a non-numeric value is rejected as invalid input rather
// than silently coerced.
type rackRequest struct {
	Code string      `json:"code"`
	X    json.Number `json:"x"`
	Y    json.Number `json:"y"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Health never fails: an unreadable dataset just leaves company empty.
	writeJSON(w, http.StatusOK, HealthResponse{
		OK:      true,
		Company: s.locator.Company(),
		Service: ServiceName,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res, err := s.locator.Search(r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "dataset unavailable")
		return
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		OK:      true,
		Query:   res.Query,
		Total:   res.Total,
		Results: res.Results,
		Message: res.Message,
	})
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	info, err := s.locator.MapInfo()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "dataset unavailable")
		return
	}

	writeJSON(w, http.StatusOK, MapResponse{
		OK:        true,
		Company:   info.Company,
		Warehouse: info.Warehouse,
		MapFile:   info.MapFile,
		Racks:     info.Racks,
	})
}

func (s *Server) handleAdminRack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if !s.limiter.Allow(clientIP(r)) {
		metrics.RateLimitedTotal.Inc()
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	var req rackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	x, errX := req.X.Float64()
	y, errY := req.Y.Float64()
	if errX != nil || errY != nil {
		writeError(w, http.StatusBadRequest, "x and y must be numbers")
		return
	}

	rack, created, err := s.locator.UpsertRack(req.Code, x, y)
	switch {
	case errors.Is(err, locator.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, locator.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "dataset unavailable")
		return
	case err != nil:
		// Save failure: the change is not durable and must not be confirmed.
		writeError(w, http.StatusInternalServerError, "failed to persist rack")
		return
	}

	verb := "updated"
	if created {
		verb = "created"
	}
	writeJSON(w, http.StatusOK, RackResponse{
		OK:      true,
		Message: fmt.Sprintf("rack %s %s", rack.Code, verb),
		Rack:    rack,
	})
}
