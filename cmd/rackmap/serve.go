package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rackmap/rackmap/pkg/api"
	"github.com/rackmap/rackmap/pkg/config"
	"github.com/rackmap/rackmap/pkg/locator"
	"github.com/rackmap/rackmap/pkg/log"
	"github.com/rackmap/rackmap/pkg/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Rackmap server",
	Long: `Run the Rackmap HTTP server.

Configuration is resolved from built-in defaults, then an optional YAML
config file, then command-line flags.

Examples:
  # Serve with defaults (dataset at data/dataset.json, listen :8080)
  rackmap serve

  # Serve a specific dataset on another port
  rackmap serve --data /var/lib/rackmap/dataset.json --listen :9000

  # Use the BoltDB backend
  rackmap serve --backend bolt --data /var/lib/rackmap/rackmap.db`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("config", "", "YAML config file")
	serveCmd.Flags().String("listen", "", "HTTP listen address")
	serveCmd.Flags().String("data", "", "Dataset path (JSON file or bbolt database)")
	serveCmd.Flags().String("backend", "", "Storage backend: file or bolt")
	serveCmd.Flags().String("assets", "", "Static assets directory served at /")
	serveCmd.Flags().String("log-level", "", "Log level: debug, info, warn, error")
	serveCmd.Flags().Bool("log-json", false, "Log JSON instead of console output")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log.Init(log.Config{
		Level:      log.Level(cfg.Log.Level),
		JSONOutput: cfg.Log.JSON,
	})
	logger := log.WithComponent("main")

	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	loc := locator.New(store, cfg.MapFile)
	server := api.NewServer(loc, api.Config{
		Listen:         cfg.Listen,
		AssetsDir:      cfg.Assets,
		AdminRateLimit: cfg.Admin.RateLimit,
		AdminRateBurst: cfg.Admin.RateBurst,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info().
		Str("listen", cfg.Listen).
		Str("backend", cfg.Storage.Backend).
		Str("data", cfg.Storage.Path).
		Msg("rackmap started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown: %w", err)
	}

	logger.Info().Msg("shutdown complete")
	return nil
}

// loadConfig merges defaults, the optional config file and flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("listen") {
		cfg.Listen, _ = cmd.Flags().GetString("listen")
	}
	if cmd.Flags().Changed("data") {
		cfg.Storage.Path, _ = cmd.Flags().GetString("data")
	}
	if cmd.Flags().Changed("backend") {
		cfg.Storage.Backend, _ = cmd.Flags().GetString("backend")
	}
	if cmd.Flags().Changed("assets") {
		cfg.Assets, _ = cmd.Flags().GetString("assets")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON, _ = cmd.Flags().GetBool("log-json")
	}

	return cfg, nil
}
