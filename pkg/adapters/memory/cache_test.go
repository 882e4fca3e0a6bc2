package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/aretw0/rivercross/pkg/adapters/memory"
	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/aretw0/rivercross/pkg/ports"
	"github.com/stretchr/testify/assert"
)

func TestMemoryCache_Contract(t *testing.T) {
	cache := memory.NewCache()
	ports.RunSolutionCacheContract(t, cache)
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := memory.NewCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			_ = cache.Put(ctx, key, &domain.Solution{Found: true, Actions: []string{key}})
			_, _ = cache.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, cache.Len())
}
