package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rackmap/rackmap/pkg/locator"
	"github.com/rackmap/rackmap/pkg/storage"
	"github.com/rackmap/rackmap/pkg/types"
)

func writeDataset(t *testing.T, path string, ds *types.Dataset) {
	t.Helper()
	data, err := json.Marshal(ds)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func newTestServer(t *testing.T, cfg Config) (*Server, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	writeDataset(t, path, &types.Dataset{
		Company:   "Acme Parts",
		Warehouse: "WH-1",
		Items: []*types.Item{
			{ID: "I1", Name: "Bolt M6", Code: "BLT6", RackID: "R-A01"},
			{ID: "I2", Name: "Hex Nut M6", Code: "NUT6", RackID: "R-999"},
		},
		Racks: []*types.Rack{
			{ID: "R-A01", Code: "A01", X: 10, Y: 20},
		},
	})

	loc := locator.New(storage.NewFileStore(path), "map.png")
	return NewServer(loc, cfg), path
}

func doRequest(s *Server, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	w := doRequest(s, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "Acme Parts", resp.Company)
	assert.Equal(t, ServiceName, resp.Service)
	assert.NotEmpty(t, resp.Time)
}

func TestHealthEndpointNeverFails(t *testing.T) {
	// Broken storage must not break health; company is just empty.
	loc := locator.New(storage.NewFileStore(filepath.Join(t.TempDir(), "nope.json")), "map.png")
	s := NewServer(loc, Config{})

	w := doRequest(s, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.Empty(t, resp.Company)
}

func TestHealthEndpointMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	w := doRequest(s, http.MethodPost, "/api/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestSearchEndpoint(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	w := doRequest(s, http.MethodGet, "/api/search?q=m6", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "m6", resp.Query)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Results, 2)

	// Joined rack
	assert.Equal(t, "A01", resp.Results[0].RackCode)
	require.NotNil(t, resp.Results[0].RackX)
	assert.Equal(t, float64(10), *resp.Results[0].RackX)

	// Dangling reference degrades, never fails
	assert.Equal(t, "-", resp.Results[1].RackCode)
	assert.Nil(t, resp.Results[1].RackX)
	assert.Nil(t, resp.Results[1].RackY)
}

func TestSearchEndpointEmptyQuery(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	for _, target := range []string{"/api/search", "/api/search?q=", "/api/search?q=%20%20"} {
		w := doRequest(s, http.MethodGet, target, "")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp SearchResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.OK)
		assert.Empty(t, resp.Results)
		assert.Equal(t, locator.EmptyQueryMessage, resp.Message)
	}
}

func TestSearchEndpointStorageFailure(t *testing.T) {
	loc := locator.New(storage.NewFileStore(filepath.Join(t.TempDir(), "nope.json")), "map.png")
	s := NewServer(loc, Config{})

	w := doRequest(s, http.MethodGet, "/api/search?q=bolt", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp errorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Message)
}

func TestMapEndpoint(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	w := doRequest(s, http.MethodGet, "/api/map", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp MapResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "Acme Parts", resp.Company)
	assert.Equal(t, "WH-1", resp.Warehouse)
	assert.Equal(t, "map.png", resp.MapFile)
	require.Len(t, resp.Racks, 1)
	assert.Equal(t, "A01", resp.Racks[0].Code)
}

func TestAdminRackCreate(t *testing.T) {
	s, path := newTestServer(t, Config{})

	w := doRequest(s, http.MethodPost, "/api/admin/rack", `{"code":"B02","x":5,"y":5}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp RackResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.Contains(t, resp.Message, "created")
	require.NotNil(t, resp.Rack)
	assert.Equal(t, "R-B02", resp.Rack.ID)
	assert.Equal(t, "B02", resp.Rack.Code)

	// Change is durable
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "R-B02")
}

func TestAdminRackUpdate(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	w := doRequest(s, http.MethodPost, "/api/admin/rack", `{"code":"a01","x":99,"y":5}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp RackResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp.Message, "updated")
	assert.Equal(t, "R-A01", resp.Rack.ID)
	assert.Equal(t, float64(99), resp.Rack.X)
	assert.Equal(t, float64(5), resp.Rack.Y)
}

func TestAdminRackInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty code", body: `{"code":"","x":1,"y":1}`},
		{name: "whitespace code", body: `{"code":"   ","x":1,"y":1}`},
		{name: "non-numeric x", body: `{"code":"A01","x":"abc","y":1}`},
		{name: "missing y", body: `{"code":"A01","x":1}`},
		{name: "garbage body", body: `{nope`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, path := newTestServer(t, Config{})
			before, err := os.ReadFile(path)
			require.NoError(t, err)

			w := doRequest(s, http.MethodPost, "/api/admin/rack", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp errorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.False(t, resp.OK)
			assert.NotEmpty(t, resp.Message)

			// Rejected before any storage access: dataset unchanged.
			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestAdminRackStorageFailure(t *testing.T) {
	loc := locator.New(storage.NewFileStore(filepath.Join(t.TempDir(), "nope.json")), "map.png")
	s := NewServer(loc, Config{})

	w := doRequest(s, http.MethodPost, "/api/admin/rack", `{"code":"A01","x":1,"y":1}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAdminRackMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	w := doRequest(s, http.MethodGet, "/api/admin/rack", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestAdminRackRateLimit(t *testing.T) {
	// Burst of one and a near-zero refill: the second request must be shed.
	s, _ := newTestServer(t, Config{AdminRateLimit: 0.001, AdminRateBurst: 1})

	w := doRequest(s, http.MethodPost, "/api/admin/rack", `{"code":"B02","x":1,"y":1}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(s, http.MethodPost, "/api/admin/rack", `{"code":"B03","x":1,"y":1}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestStaticAssets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>rackmap</html>"), 0644))

	path := filepath.Join(t.TempDir(), "dataset.json")
	writeDataset(t, path, &types.Dataset{})
	loc := locator.New(storage.NewFileStore(path), "map.png")
	s := NewServer(loc, Config{AssetsDir: dir})

	w := doRequest(s, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rackmap")

	w = doRequest(s, http.MethodGet, "/missing.css", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	w := doRequest(s, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
