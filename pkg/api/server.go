package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/rackmap/rackmap/pkg/locator"
	"github.com/rackmap/rackmap/pkg/log"
	"github.com/rackmap/rackmap/pkg/metrics"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "rackmap"

// Config holds API server configuration.
type Config struct {
	// Listen is the HTTP listen address (e.g. ":8080").
	Listen string

	// AssetsDir is served at /; empty disables static serving.
	AssetsDir string

	// AdminRateLimit / AdminRateBurst tune the per-client rate limiter on
	// the admin route. Zero values fall back to defaults.
	AdminRateLimit float64
	AdminRateBurst int
}

// Server exposes the locator over HTTP: the JSON API under /api, Prometheus
// metrics under /metrics, and optionally the static UI at /.
type Server struct {
	locator    *locator.Locator
	cfg        Config
	mux        *http.ServeMux
	httpServer *http.Server
	limiter    *clientLimiter
	logger     zerolog.Logger
}

// NewServer creates a new API server around the given locator.
func NewServer(loc *locator.Locator, cfg Config) *Server {
	if cfg.AdminRateLimit <= 0 {
		cfg.AdminRateLimit = 5
	}
	if cfg.AdminRateBurst <= 0 {
		cfg.AdminRateBurst = 10
	}

	mux := http.NewServeMux()
	s := &Server{
		locator: loc,
		cfg:     cfg,
		mux:     mux,
		limiter: newClientLimiter(cfg.AdminRateLimit, cfg.AdminRateBurst),
		logger:  log.WithComponent("api"),
	}

	mux.HandleFunc("/api/health", s.instrument("/api/health", s.handleHealth))
	mux.HandleFunc("/api/search", s.instrument("/api/search", s.handleSearch))
	mux.HandleFunc("/api/map", s.instrument("/api/map", s.handleMap))
	mux.HandleFunc("/api/admin/rack", s.instrument("/api/admin/rack", s.handleAdminRack))
	mux.Handle("/metrics", metrics.Handler())

	// Static UI and the map image. The map asset is served read-only and
	// never parsed by the service.
	if cfg.AssetsDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.AssetsDir)))
	}

	return s
}

// Handler returns the server's root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start runs the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.Listen,
		Handler:      s.mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info().Str("addr", s.cfg.Listen).Msg("server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
