package observability

import (
	"context"

	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/aretw0/rivercross/pkg/search"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records solver activity as Prometheus series.
type Metrics struct {
	searches   *prometheus.CounterVec
	expanded   *prometheus.CounterVec
	steps      *prometheus.HistogramVec
	cacheHits  *prometheus.CounterVec
	iterations *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rivercross_searches_total",
				Help: "Total number of searches run, by strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		expanded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rivercross_nodes_expanded_total",
				Help: "Total number of successors generated by searches",
			},
			[]string{"strategy"},
		),
		steps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rivercross_solution_steps",
				Help:    "Number of crossings in solutions found",
				Buckets: prometheus.LinearBuckets(1, 4, 10),
			},
			[]string{"strategy"},
		),
		cacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rivercross_cache_hits_total",
				Help: "Total number of solves answered from the solution cache",
			},
			[]string{"strategy"},
		),
		iterations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rivercross_iddfs_iterations_total",
				Help: "Total number of iterative deepening passes, by outcome",
			},
			[]string{"outcome"},
		),
	}

	for _, c := range []prometheus.Collector{m.searches, m.expanded, m.steps, m.cacheHits, m.iterations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSearchEnd: func(ctx context.Context, e *domain.SearchEvent) {
			m.searches.WithLabelValues(e.Strategy, outcome(e)).Inc()
			m.expanded.WithLabelValues(e.Strategy).Add(float64(e.Expanded))
			if e.Found {
				m.steps.WithLabelValues(e.Strategy).Observe(float64(e.Steps))
			}
		},
		OnCacheHit: func(ctx context.Context, e *domain.SearchEvent) {
			m.cacheHits.WithLabelValues(e.Strategy).Inc()
		},
	}
}

// SearchHooks returns driver hooks that count iterative deepening passes.
func (m *Metrics) SearchHooks() search.Hooks {
	return search.Hooks{
		OnIteration: func(limit int, outcome search.Outcome, expanded int) {
			m.iterations.WithLabelValues(outcome.String()).Inc()
		},
	}
}

func outcome(e *domain.SearchEvent) string {
	switch {
	case e.Err != nil:
		return "error"
	case e.Found:
		return "found"
	default:
		return "exhausted"
	}
}
