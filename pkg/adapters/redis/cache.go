package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/rivercross/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix is prepended to every cache key.
const DefaultPrefix = "rivercross:solution:"

// Cache implements ports.SolutionCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached solutions.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached solutions.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: DefaultPrefix,
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

func (c *Cache) key(k string) string {
	return c.prefix + k
}

// Put stores the solution as JSON.
func (c *Cache) Put(ctx context.Context, key string, sol *domain.Solution) error {
	data, err := json.Marshal(sol)
	if err != nil {
		return fmt.Errorf("failed to marshal solution: %w", err)
	}

	// 0 means no expiration.
	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Get retrieves the solution from Redis.
func (c *Cache) Get(ctx context.Context, key string) (*domain.Solution, error) {
	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrSolutionNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var sol domain.Solution
	if err := json.Unmarshal(val, &sol); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solution: %w", err)
	}

	return &sol, nil
}

// Delete removes the cached solution.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

// Ping checks connectivity with the server.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
