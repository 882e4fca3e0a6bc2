package ports

import (
	"context"
	"strings"

	"github.com/aretw0/rivercross/pkg/domain"
)

// SolutionCache defines the interface for storing completed solutions.
// Only finished reports are cached; frontier and explored sets are never persisted.
type SolutionCache interface {
	// Get retrieves the solution stored under key.
	// Returns domain.ErrSolutionNotFound if the key does not exist.
	Get(ctx context.Context, key string) (*domain.Solution, error)

	// Put stores the solution under key, replacing any previous entry.
	Put(ctx context.Context, key string, sol *domain.Solution) error

	// Delete removes the entry for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// CacheKey builds a stable key for a (strategy, start, goal) triple from the persisted
// state encoding.
func CacheKey(strategy string, start, goal domain.State) string {
	enc := func(s domain.State) string {
		return strings.ReplaceAll(domain.Encode(s), "\n", "/")
	}
	return strategy + ":" + enc(start) + ":" + enc(goal)
}
