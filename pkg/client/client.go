package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rackmap/rackmap/pkg/api"
	"github.com/rackmap/rackmap/pkg/types"
)

// Client is a typed HTTP client for the Rackmap API, used by the CLI.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given server address. A bare host:port gets
// an http:// scheme prepended.
func New(addr string) *Client {
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "http://" + addr
	}
	return &Client{
		baseURL: strings.TrimRight(addr, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Health fetches /api/health.
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.get(ctx, "/api/health", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search runs an item search against /api/search.
func (c *Client) Search(ctx context.Context, query string) (*api.SearchResponse, error) {
	var resp api.SearchResponse
	path := "/api/search?q=" + url.QueryEscape(query)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MapInfo fetches /api/map.
func (c *Client) MapInfo(ctx context.Context) (*api.MapResponse, error) {
	var resp api.MapResponse
	if err := c.get(ctx, "/api/map", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpsertRack places or moves a rack marker through /api/admin/rack.
func (c *Client) UpsertRack(ctx context.Context, code string, x, y float64) (*types.Rack, string, error) {
	body, err := json.Marshal(map[string]any{"code": code, "x": x, "y": y})
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/admin/rack", bytes.NewReader(body))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp api.RackResponse
	if err := c.do(req, &resp); err != nil {
		return nil, "", err
	}
	return resp.Rack, resp.Message, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// do executes the request and decodes the JSON envelope. A non-2xx status
// surfaces the server's {ok:false, message} as the error.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var fail struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &fail) == nil && fail.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, fail.Message)
		}
		return fmt.Errorf("server error (%d)", resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
