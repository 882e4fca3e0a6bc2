package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/aretw0/rivercross/pkg/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnSearchEnd(ctx, &domain.SearchEvent{Strategy: "bfs", Found: true, Steps: 11, Expanded: 28})
	hooks.OnSearchEnd(ctx, &domain.SearchEvent{Strategy: "bfs", Expanded: 34})
	hooks.OnSearchEnd(ctx, &domain.SearchEvent{Strategy: "iddfs", Err: errors.New("depth limit")})
	hooks.OnCacheHit(ctx, &domain.SearchEvent{Strategy: "bfs"})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("bfs", "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("bfs", "exhausted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("iddfs", "error")))
	assert.Equal(t, 62.0, testutil.ToFloat64(m.expanded.WithLabelValues("bfs")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("bfs")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.steps))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestMetrics_SearchHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	start := domain.NewState(3, 3, 0, 0, domain.Left)
	goal := domain.NewState(0, 0, 3, 3, domain.Right)
	res, err := search.IterativeDeepening(start, goal, search.WithHooks(m.SearchHooks()))
	require.NoError(t, err)
	require.True(t, res.Found)

	assert.Equal(t, 11.0, testutil.ToFloat64(m.iterations.WithLabelValues("cutoff")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.iterations.WithLabelValues("found")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.iterations.WithLabelValues("exhausted")))
}
