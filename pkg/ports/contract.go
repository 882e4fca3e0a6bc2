package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSolutionCacheContract runs a suite of tests to verify that a SolutionCache implementation
// adheres to the defined interface contract.
func RunSolutionCacheContract(t *testing.T, cache SolutionCache) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	solution := func() *domain.Solution {
		return &domain.Solution{
			Strategy: "bfs",
			Found:    true,
			Actions:  []string{"move 2 cannibals from left to right", "move 1 cannibal from right to left"},
			States: []domain.State{
				domain.NewState(3, 3, 0, 0, domain.Left),
				domain.NewState(3, 1, 0, 2, domain.Right),
				domain.NewState(3, 2, 0, 1, domain.Left),
			},
			Expanded: 5,
		}
	}

	t.Run("Put and Get", func(t *testing.T) {
		sol := solution()
		require.NoError(t, cache.Put(ctx, key, sol), "Put should not return error")

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, sol.Strategy, loaded.Strategy)
		assert.Equal(t, sol.Found, loaded.Found)
		assert.Equal(t, sol.Actions, loaded.Actions)
		assert.Equal(t, sol.States, loaded.States)
		assert.Equal(t, sol.Expanded, loaded.Expanded)
		assert.Equal(t, sol.Transcript(), loaded.Transcript())
	})

	t.Run("Get Is Isolated", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, solution()))

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err)
		loaded.Actions[0] = "tampered"

		again, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "move 2 cannibals from left to right", again.Actions[0])
	})

	t.Run("Unsolved Entries", func(t *testing.T) {
		k := key + "-none"
		require.NoError(t, cache.Put(ctx, k, &domain.Solution{Strategy: "dfs", Actions: []string{}, Expanded: 34}))
		defer func() { _ = cache.Delete(ctx, k) }()

		loaded, err := cache.Get(ctx, k)
		require.NoError(t, err)
		assert.False(t, loaded.Found)
		assert.Equal(t, 34, loaded.Expanded)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := cache.Get(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrSolutionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, solution()))

		require.NoError(t, cache.Delete(ctx, key), "Delete should not return error")

		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrSolutionNotFound, "Get after Delete should return ErrSolutionNotFound")

		assert.NoError(t, cache.Delete(ctx, key), "Deleting a missing key should not fail")
	})
}
