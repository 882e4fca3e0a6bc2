package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/rivercross"
	"github.com/aretw0/rivercross/internal/config"
	"github.com/aretw0/rivercross/internal/logging"
	"github.com/aretw0/rivercross/pkg/adapters/memory"
	"github.com/aretw0/rivercross/pkg/adapters/redis"
	"github.com/spf13/cobra"
)

// loadConfig reads --config and applies flag overrides shared by every command.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if f := cmd.Flags().Lookup("max-depth"); f != nil && f.Changed {
		cfg.MaxDepth, _ = cmd.Flags().GetInt("max-depth")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	return cfg, logging.New(level), nil
}

// newSolver builds the facade with the cache backend from cfg.
// An unreachable redis server degrades to no cache. The returned cleanup closes it.
func newSolver(ctx context.Context, cfg config.Config, logger *slog.Logger, opts ...rivercross.Option) (*rivercross.Solver, func(), error) {
	cleanup := func() {}
	opts = append([]rivercross.Option{
		rivercross.WithLogger(logger),
		rivercross.WithMaxDepth(cfg.MaxDepth),
	}, opts...)

	switch cfg.Cache.Backend {
	case config.CacheMemory:
		opts = append(opts, rivercross.WithCache(memory.NewCache()))
	case config.CacheRedis:
		r := cfg.Cache.Redis
		cache := redis.New(r.Addr, r.Password, r.DB, redis.WithPrefix(r.Prefix), redis.WithTTL(r.TTL))
		if err := cache.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, caching disabled", "addr", r.Addr, "err", err)
			cache.Close()
			break
		}
		opts = append(opts, rivercross.WithCache(cache))
		cleanup = func() {
			if err := cache.Close(); err != nil {
				logger.Warn("failed to close redis", "err", err)
			}
		}
	case config.CacheNone:
	default:
		return nil, cleanup, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}

	return rivercross.New(opts...), cleanup, nil
}
