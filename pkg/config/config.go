package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the full service configuration.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`

	// Assets is the directory served at / (UI and the map image).
	// Empty disables static serving.
	Assets string `yaml:"assets"`

	// MapFile is the map asset file name reported by /api/map. The file
	// itself is served as a static asset and never parsed.
	MapFile string `yaml:"mapFile"`

	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Admin   AdminConfig   `yaml:"admin"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	// Backend is "file" or "bolt".
	Backend string `yaml:"backend"`

	// Path is the dataset location (JSON file or bbolt database file).
	Path string `yaml:"path"`
}

// LogConfig controls the global logger.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// AdminConfig tunes the admin endpoint rate limiter.
type AdminConfig struct {
	// RateLimit is the sustained requests/second allowed per client.
	RateLimit float64 `yaml:"rateLimit"`

	// RateBurst is the per-client burst size.
	RateBurst int `yaml:"rateBurst"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Listen:  ":8080",
		Assets:  "web",
		MapFile: "map.png",
		Storage: StorageConfig{
			Backend: "file",
			Path:    "data/dataset.json",
		},
		Log: LogConfig{
			Level: "info",
		},
		Admin: AdminConfig{
			RateLimit: 5,
			RateBurst: 10,
		},
	}
}

// Load reads a YAML config file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
