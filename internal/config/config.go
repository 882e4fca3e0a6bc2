// Package config loads the rivercross YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aretw0/rivercross/internal/logging"
	"github.com/aretw0/rivercross/pkg/search"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds the settings shared by every command.
// Keys use "mapstructure" tags to match the YAML file.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Strategy string `mapstructure:"strategy"`
	MaxDepth int    `mapstructure:"max_depth"`
	Server   Server `mapstructure:"server"`
	Cache    Cache  `mapstructure:"cache"`
}

type Server struct {
	Port string `mapstructure:"port"`
}

type Cache struct {
	Backend string `mapstructure:"backend"`
	Redis   Redis  `mapstructure:"redis"`
}

type Redis struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Strategy: string(search.BFS),
		Server:   Server{Port: "8080"},
		Cache: Cache{
			Backend: CacheMemory,
			Redis: Redis{
				Addr:   "localhost:6379",
				Prefix: "rivercross:solution:",
			},
		},
	}
}

// Load reads path on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Decode overlays YAML data onto cfg. Keys absent from data keep their current values.
func Decode(data []byte, cfg *Config) error {
	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := search.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth))
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown cache backend %q", c.Cache.Backend))
	}
	return errors.Join(errs...)
}
