package client

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rackmap/rackmap/pkg/api"
	"github.com/rackmap/rackmap/pkg/locator"
	"github.com/rackmap/rackmap/pkg/storage"
	"github.com/rackmap/rackmap/pkg/types"
)

// startServer runs the real API stack against a temp dataset so the client
// is tested end to end.
func startServer(t *testing.T, ds *types.Dataset) *Client {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dataset.json")
	data, err := json.Marshal(ds)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	loc := locator.New(storage.NewFileStore(path), "map.png")
	srv := api.NewServer(loc, api.Config{})

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return New(ts.URL)
}

func fixture() *types.Dataset {
	return &types.Dataset{
		Company:   "Acme Parts",
		Warehouse: "WH-1",
		Items: []*types.Item{
			{ID: "I1", Name: "Bolt M6", Code: "BLT6", RackID: "R-A01"},
		},
		Racks: []*types.Rack{
			{ID: "R-A01", Code: "A01", X: 10, Y: 20},
		},
	}
}

func TestClientHealth(t *testing.T) {
	c := startServer(t, fixture())

	resp, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, "Acme Parts", resp.Company)
	assert.Equal(t, api.ServiceName, resp.Service)
}

func TestClientSearch(t *testing.T) {
	c := startServer(t, fixture())

	resp, err := c.Search(context.Background(), "bolt m6")
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "A01", resp.Results[0].RackCode)
}

func TestClientMapInfo(t *testing.T) {
	c := startServer(t, fixture())

	resp, err := c.MapInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "WH-1", resp.Warehouse)
	assert.Equal(t, "map.png", resp.MapFile)
	assert.Len(t, resp.Racks, 1)
}

func TestClientUpsertRack(t *testing.T) {
	c := startServer(t, fixture())

	rack, msg, err := c.UpsertRack(context.Background(), "b02", 5, 5)
	require.NoError(t, err)
	assert.Contains(t, msg, "created")
	assert.Equal(t, "R-B02", rack.ID)
	assert.Equal(t, "B02", rack.Code)
}

func TestClientSurfacesServerErrors(t *testing.T) {
	c := startServer(t, fixture())

	_, _, err := c.UpsertRack(context.Background(), "   ", 1, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rack code is required")
}

func TestClientAddrNormalization(t *testing.T) {
	c := New("localhost:8080")
	assert.Equal(t, "http://localhost:8080", c.baseURL)

	c = New("https://rackmap.example.com/")
	assert.Equal(t, "https://rackmap.example.com", c.baseURL)
}
