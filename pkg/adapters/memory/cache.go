package memory

import (
	"context"
	"sync"

	"github.com/aretw0/rivercross/pkg/domain"
)

// Cache implements ports.SolutionCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[string]*domain.Solution
	mu   sync.RWMutex
}

// NewCache creates a new in-memory cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*domain.Solution),
	}
}

// Put stores a copy of the solution.
func (c *Cache) Put(ctx context.Context, key string, sol *domain.Solution) error {
	copied := sol.Clone()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = copied
	return nil
}

// Get retrieves the solution from memory.
func (c *Cache) Get(ctx context.Context, key string) (*domain.Solution, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sol, ok := c.data[key]
	if !ok {
		return nil, domain.ErrSolutionNotFound
	}

	// Copy on read so callers can't mutate cached slices through the pointer
	return sol.Clone(), nil
}

// Delete removes the entry.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// Len returns the number of cached solutions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
